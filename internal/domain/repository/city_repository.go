package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCityNotFound is returned when a city lookup matches no row.
var ErrCityNotFound = errors.New("city not found")

// CityRepository reads the city reference table.
type CityRepository interface {
	// FindByID retrieves a single city by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error)

	// FindAll lists every known city ordered by name.
	FindAll(ctx context.Context) ([]*entity.City, error)
}
