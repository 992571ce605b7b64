package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order lookup matches no row.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders together with their line items.
type OrderRepository interface {
	// Create persists a new order and all of its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order, items included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByStore lists orders of a store, newest first, with offset pagination.
	FindByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// UpdateStatus moves an order to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
