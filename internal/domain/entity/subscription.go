package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the billing state of a store's platform subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusPaid      SubscriptionStatus = "PAID"
	SubscriptionStatusPending   SubscriptionStatus = "PENDING"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
)

// Subscription ties a store to a billing plan at the payment provider.
// A store has at most one subscription that is not CANCELLED.
type Subscription struct {
	ID                     uuid.UUID
	StoreID                uuid.UUID
	PlanID                 string
	PriceCents             int64
	Status                 SubscriptionStatus
	CurrentPeriodStart     time.Time
	CurrentPeriodEnd       time.Time
	ProviderSubscriptionID string // Identifier at the payment provider.
	ProviderCustomerID     string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// WebhookEvent records a payment-provider event that has already been
// applied, keyed by the provider's event id. Replayed deliveries of the
// same event are no-ops.
type WebhookEvent struct {
	ID              uuid.UUID
	ProviderEventID string
	EventType       string
	ProcessedAt     time.Time
}
