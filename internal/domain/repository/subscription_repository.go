package repository

import (
	"context"
	"errors"
	"time"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrSubscriptionNotFound is returned when a subscription lookup matches no row.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrDuplicateSubscription is returned when the store already has a live subscription.
	ErrDuplicateSubscription = errors.New("subscription already exists")

	// ErrDuplicateWebhookEvent is returned when the provider event id was already recorded.
	ErrDuplicateWebhookEvent = errors.New("webhook event already processed")
)

// SubscriptionRepository persists store subscriptions and the ledger of
// processed payment-provider webhook events.
type SubscriptionRepository interface {
	// Create persists a new subscription.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// FindByID retrieves a single subscription by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindActiveByStore retrieves the store's newest non-cancelled subscription.
	FindActiveByStore(ctx context.Context, storeID uuid.UUID) (*entity.Subscription, error)

	// FindByProviderSubscriptionID retrieves a subscription by the payment
	// provider's subscription identifier.
	FindByProviderSubscriptionID(ctx context.Context, providerSubID string) (*entity.Subscription, error)

	// FindPaidEndingBefore lists PAID subscriptions whose period ended before the cutoff.
	FindPaidEndingBefore(ctx context.Context, cutoff time.Time) ([]*entity.Subscription, error)

	// Update modifies an existing subscription.
	Update(ctx context.Context, subscription *entity.Subscription) error

	// RecordWebhookEvent inserts the provider event id into the processed
	// ledger, failing with ErrDuplicateWebhookEvent on replay.
	RecordWebhookEvent(ctx context.Context, event *entity.WebhookEvent) error
}
