package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address lookup matches no row.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository persists postal addresses.
type AddressRepository interface {
	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves a single address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByStore lists all addresses attached to a store.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Address, error)

	// Update modifies an existing address.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
