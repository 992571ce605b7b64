package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStockNotFound is returned when a stock lookup matches no row.
var ErrStockNotFound = errors.New("stock not found")

// ErrInsufficientStock is returned when a decrement would drive quantity below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// StockRepository persists on-hand quantities per variation.
type StockRepository interface {
	// Create persists a new stock row for a variation.
	Create(ctx context.Context, stock *entity.Stock) error

	// FindByVariation retrieves the stock row of a variation.
	FindByVariation(ctx context.Context, variationID uuid.UUID) (*entity.Stock, error)

	// Update overwrites the quantity of an existing stock row.
	Update(ctx context.Context, stock *entity.Stock) error

	// Decrement atomically subtracts quantity from a variation's stock,
	// failing with ErrInsufficientStock when not enough is on hand.
	Decrement(ctx context.Context, variationID uuid.UUID, quantity int) (*entity.Stock, error)
}
