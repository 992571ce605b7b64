package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	NotificationTypeNewOrder           NotificationType = "NEW_ORDER"
	NotificationTypeOrderStatusChanged NotificationType = "ORDER_STATUS_CHANGED"
	NotificationTypeLowStock           NotificationType = "LOW_STOCK"
	NotificationTypeProductAdded       NotificationType = "PRODUCT_ADDED"
	NotificationTypeStoreUpdated       NotificationType = "STORE_UPDATED"
	NotificationTypeSystem             NotificationType = "SYSTEM"
)

// Notification is a durable message addressed to a user. The persisted row
// is the source of truth; live delivery over SSE is best-effort.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
