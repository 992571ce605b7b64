package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category lookup matches no row.
var ErrCategoryNotFound = errors.New("category not found")

// ErrDuplicateCategory is returned when the store already has a category with the same name.
var ErrDuplicateCategory = errors.New("category already exists")

// CategoryRepository persists product categories.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByStore lists all categories of a store ordered by name.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Category, error)

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
