package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	VariationID uuid.UUID
	Quantity    int
}

// CreateOrderInput carries the fields of a new customer order.
type CreateOrderInput struct {
	StoreID       uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Items         []OrderItemInput
}

// OrderUsecase defines the interface for order management use cases.
type OrderUsecase interface {
	// CreateOrder places an order, decrementing stock for every line inside
	// one transaction. Orders that would drive any stock below zero are
	// rejected whole.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves a single order, items included.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders lists the orders of a store, newest first.
	ListOrders(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order along the fulfilment progression.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
