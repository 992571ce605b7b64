package usecase

import (
	"context"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/service"

	"github.com/google/uuid"
)

// BillingUsecase defines the interface for platform subscription billing.
type BillingUsecase interface {
	// CreateCheckoutSession creates a hosted checkout session for a store and
	// returns the provider redirect URL verbatim.
	CreateCheckoutSession(ctx context.Context, storeID uuid.UUID, planID string, userID uuid.UUID) (*service.CheckoutSession, error)

	// HandleWebhook verifies, deduplicates and applies a payment-provider
	// webhook delivery. Replays of an already-processed event are no-ops.
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error

	// GetSubscription retrieves the store's live subscription.
	GetSubscription(ctx context.Context, storeID uuid.UUID) (*entity.Subscription, error)

	// CancelSubscription cancels at the provider and marks the local row.
	CancelSubscription(ctx context.Context, storeID uuid.UUID) error

	// SweepExpired downgrades PAID subscriptions whose period has lapsed and
	// returns how many were touched.
	SweepExpired(ctx context.Context) (int, error)
}
