package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order. Statuses progress
// PENDENTE → CONFIRMADO → PREPARANDO → ENVIADO → ENTREGUE; CANCELADO is
// reachable from any non-terminal state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDENTE"
	OrderStatusConfirmed OrderStatus = "CONFIRMADO"
	OrderStatusPreparing OrderStatus = "PREPARANDO"
	OrderStatusShipped   OrderStatus = "ENVIADO"
	OrderStatusDelivered OrderStatus = "ENTREGUE"
	OrderStatusCancelled OrderStatus = "CANCELADO"
)

// orderProgression maps each status to the statuses it may move to.
var orderProgression = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
}

// CanTransitionTo reports whether the status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderProgression[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Order is a customer purchase against a store. Customer contact fields
// are denormalized onto the order; line items snapshot unit prices.
type Order struct {
	ID            uuid.UUID
	StoreID       uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Status        OrderStatus
	TotalCents    int64
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem is one line of an order, referencing a product variation with
// the quantity and the unit price at the time of purchase.
type OrderItem struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	VariationID    uuid.UUID
	Quantity       int
	UnitPriceCents int64
}
