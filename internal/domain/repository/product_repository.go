package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product lookup matches no row.
	ErrProductNotFound = errors.New("product not found")

	// ErrVariationNotFound is returned when a variation lookup matches no row.
	ErrVariationNotFound = errors.New("product variation not found")
)

// ProductRepository persists products and their variations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByStore lists products of a store with offset pagination.
	FindByStore(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateVariation persists a new variation for a product.
	CreateVariation(ctx context.Context, variation *entity.ProductVariation) error

	// FindVariationByID retrieves a single variation by its unique ID.
	FindVariationByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariation, error)

	// FindVariationsByProduct lists all variations of a product.
	FindVariationsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductVariation, error)

	// UpdateVariation modifies an existing variation.
	UpdateVariation(ctx context.Context, variation *entity.ProductVariation) error

	// DeleteVariation removes a variation by its ID.
	DeleteVariation(ctx context.Context, id uuid.UUID) error
}
