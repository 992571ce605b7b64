package service

import (
	"context"
	"time"
)

// CheckoutSession is a hosted payment page created at the provider.
type CheckoutSession struct {
	SessionID string
	URL       string // Redirect URL returned verbatim to the caller.
}

// SubscriptionEvent is a provider webhook payload reduced to the fields the
// billing use case acts on.
type SubscriptionEvent struct {
	EventID                string // Provider event id, the idempotency key.
	Type                   string
	ProviderSubscriptionID string
	ProviderCustomerID     string
	StoreID                string // Echoed back from checkout session metadata.
	PlanID                 string
	AmountCents            int64
	PeriodStart            time.Time
	PeriodEnd              time.Time
}

// Webhook event types emitted by the payment provider.
const (
	EventCheckoutCompleted    = "checkout.session.completed"
	EventInvoicePaid          = "invoice.paid"
	EventSubscriptionDeleted  = "customer.subscription.deleted"
	EventInvoicePaymentFailed = "invoice.payment_failed"
)

// PaymentGateway wraps the payment provider's billing API.
type PaymentGateway interface {
	// CreateCheckoutSession creates a hosted checkout session for a store/plan pair.
	CreateCheckoutSession(ctx context.Context, storeID, planID, customerEmail string) (*CheckoutSession, error)

	// CancelSubscription cancels a subscription at the provider.
	CancelSubscription(ctx context.Context, providerSubscriptionID string) error

	// ParseWebhook verifies the event signature and decodes the payload.
	ParseWebhook(payload []byte, signatureHeader string) (*SubscriptionEvent, error)
}
