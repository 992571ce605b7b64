package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// errWebhookReplay aborts the webhook transaction when the provider event id
// was already recorded. The caller treats it as a successful no-op.
var errWebhookReplay = errors.New("webhook event already applied")

type billingService struct {
	subscriptionRepo repository.SubscriptionRepository
	storeRepo        repository.StoreRepository
	userRepo         repository.UserRepository
	paymentGateway   service.PaymentGateway
	txManager        repository.TransactionManager
	notifications    usecase.NotificationUsecase
	logger           *slog.Logger
}

// BillingServiceParams holds dependencies for BillingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	StoreRepo        repository.StoreRepository
	UserRepo         repository.UserRepository
	PaymentGateway   service.PaymentGateway
	TxManager        repository.TransactionManager
	Notifications    usecase.NotificationUsecase
	Logger           *slog.Logger
}

// NewBillingService creates a new billing service instance.
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	return &billingService{
		subscriptionRepo: params.SubscriptionRepo,
		storeRepo:        params.StoreRepo,
		userRepo:         params.UserRepo,
		paymentGateway:   params.PaymentGateway,
		txManager:        params.TxManager,
		notifications:    params.Notifications,
		logger:           params.Logger,
	}
}

// CreateCheckoutSession creates a hosted checkout session at the payment
// provider. Stores already covered by a PAID subscription are rejected.
func (s *billingService) CreateCheckoutSession(ctx context.Context, storeID uuid.UUID, planID string, userID uuid.UUID) (*service.CheckoutSession, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find store by ID")
	}

	existing, err := s.subscriptionRepo.FindActiveByStore(ctx, storeID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find active subscription")
	}
	if existing != nil && existing.Status == entity.SubscriptionStatusPaid {
		return nil, domainerrors.ErrSubscriptionAlreadyExists
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by ID")
	}

	session, err := s.paymentGateway.CreateCheckoutSession(ctx, store.ID.String(), planID, user.Email)
	if err != nil {
		return nil, domainerrors.ErrPaymentProviderFailed.WithDetails(err.Error())
	}

	return session, nil
}

// HandleWebhook verifies, deduplicates and applies a provider webhook
// delivery. The dedup insert and the state change commit together, so a
// crash between them cannot lose or double-apply an event.
func (s *billingService) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := s.paymentGateway.ParseWebhook(payload, signatureHeader)
	if err != nil {
		return domainerrors.ErrWebhookSignature.WithDetails(err.Error())
	}

	var ownerNotice *ownerNotification

	err = s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		subscriptionRepo := txRepos.NewSubscriptionRepository()
		storeRepo := txRepos.NewStoreRepository()

		if err := subscriptionRepo.RecordWebhookEvent(ctx, &entity.WebhookEvent{
			ID:              uuid.New(),
			ProviderEventID: event.EventID,
			EventType:       event.Type,
		}); err != nil {
			if errors.Is(err, repository.ErrDuplicateWebhookEvent) {
				return errWebhookReplay
			}

			return errors.Wrap(err, "record webhook event")
		}

		switch event.Type {
		case service.EventCheckoutCompleted:
			notice, err := s.applyCheckoutCompleted(ctx, subscriptionRepo, storeRepo, event)
			ownerNotice = notice

			return err
		case service.EventInvoicePaid:
			notice, err := s.applyRenewal(ctx, subscriptionRepo, storeRepo, event)
			ownerNotice = notice

			return err
		case service.EventInvoicePaymentFailed:
			notice, err := s.applyLapse(ctx, subscriptionRepo, storeRepo, event, entity.SubscriptionStatusPending,
				"Payment failed", "Your subscription payment failed; the storefront stays up until the period ends")
			ownerNotice = notice

			return err
		case service.EventSubscriptionDeleted:
			notice, err := s.applyLapse(ctx, subscriptionRepo, storeRepo, event, entity.SubscriptionStatusCancelled,
				"Subscription cancelled", "Your subscription was cancelled at the payment provider")
			ownerNotice = notice

			return err
		}

		// Unknown event types are recorded and otherwise ignored.
		s.logger.Info("ignoring unhandled webhook event type",
			slog.String("event_id", event.EventID),
			slog.String("event_type", event.Type),
		)

		return nil
	})
	if err != nil {
		if errors.Is(err, errWebhookReplay) {
			s.logger.Info("webhook event replayed, skipping",
				slog.String("event_id", event.EventID),
			)

			return nil
		}

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}

		return domainerrors.ErrTransactionFailed.WithDetails(err.Error())
	}

	if ownerNotice != nil {
		if _, err := s.notifications.Notify(ctx, ownerNotice.userID, entity.NotificationTypeSystem,
			ownerNotice.title, ownerNotice.message); err != nil {
			s.logger.Warn("failed to notify billing event",
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// GetSubscription retrieves the store's live subscription.
func (s *billingService) GetSubscription(ctx context.Context, storeID uuid.UUID) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindActiveByStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find active subscription")
	}

	return subscription, nil
}

// CancelSubscription cancels at the provider first, then marks the local row
// CANCELLED and drops the store's paid flag.
func (s *billingService) CancelSubscription(ctx context.Context, storeID uuid.UUID) error {
	subscription, err := s.subscriptionRepo.FindActiveByStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "find active subscription")
	}

	if subscription.ProviderSubscriptionID != "" {
		if err := s.paymentGateway.CancelSubscription(ctx, subscription.ProviderSubscriptionID); err != nil {
			return domainerrors.ErrPaymentProviderFailed.WithDetails(err.Error())
		}
	}

	err = s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		subscription.Status = entity.SubscriptionStatusCancelled
		if err := txRepos.NewSubscriptionRepository().Update(ctx, subscription); err != nil {
			return errors.Wrap(err, "update subscription")
		}

		return s.setStorePaid(ctx, txRepos.NewStoreRepository(), subscription.StoreID, false)
	})
	if err != nil {
		return domainerrors.ErrTransactionFailed.WithDetails(err.Error())
	}

	return nil
}

// SweepExpired downgrades PAID subscriptions whose billing period has lapsed.
// Each subscription is swept in its own transaction so one failure does not
// block the rest.
func (s *billingService) SweepExpired(ctx context.Context) (int, error) {
	expired, err := s.subscriptionRepo.FindPaidEndingBefore(ctx, time.Now())
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "find expired subscriptions")
	}

	swept := 0
	for _, subscription := range expired {
		subscription := subscription
		err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
			subscription.Status = entity.SubscriptionStatusPending
			if err := txRepos.NewSubscriptionRepository().Update(ctx, subscription); err != nil {
				return errors.Wrap(err, "update subscription")
			}

			return s.setStorePaid(ctx, txRepos.NewStoreRepository(), subscription.StoreID, false)
		})
		if err != nil {
			s.logger.Warn("failed to sweep expired subscription",
				slog.String("subscription_id", subscription.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		swept++
	}

	return swept, nil
}

// ownerNotification defers a billing notification until after the
// transaction commits.
type ownerNotification struct {
	userID  uuid.UUID
	title   string
	message string
}

// applyCheckoutCompleted activates a store after a completed checkout,
// creating the subscription or reusing a pending one.
func (s *billingService) applyCheckoutCompleted(ctx context.Context, subscriptionRepo repository.SubscriptionRepository, storeRepo repository.StoreRepository, event *service.SubscriptionEvent) (*ownerNotification, error) {
	storeID, err := uuid.Parse(event.StoreID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid store id in event metadata: %q", event.StoreID)
	}

	store, err := storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WithDetails(event.StoreID)
		}

		return nil, errors.Wrap(err, "find store by ID")
	}

	subscription, err := subscriptionRepo.FindActiveByStore(ctx, storeID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrSubscriptionNotFound):
		subscription = &entity.Subscription{
			ID:      uuid.New(),
			StoreID: storeID,
		}
	default:
		return nil, errors.Wrap(err, "find active subscription")
	}

	created := subscription.CreatedAt.IsZero()
	subscription.PlanID = event.PlanID
	subscription.PriceCents = event.AmountCents
	subscription.Status = entity.SubscriptionStatusPaid
	subscription.CurrentPeriodStart = event.PeriodStart
	subscription.CurrentPeriodEnd = event.PeriodEnd
	subscription.ProviderSubscriptionID = event.ProviderSubscriptionID
	subscription.ProviderCustomerID = event.ProviderCustomerID

	if created {
		err = subscriptionRepo.Create(ctx, subscription)
	} else {
		err = subscriptionRepo.Update(ctx, subscription)
	}
	if err != nil {
		return nil, errors.Wrap(err, "persist subscription")
	}

	store.IsPaid = true
	store.Status = entity.StoreStatusActive
	if err := storeRepo.Update(ctx, store); err != nil {
		return nil, errors.Wrap(err, "activate store")
	}

	return &ownerNotification{
		userID:  store.OwnerID,
		title:   "Subscription active",
		message: fmt.Sprintf("Your store %q is live", store.Name),
	}, nil
}

// applyRenewal extends the billing period of a subscription after a paid invoice.
func (s *billingService) applyRenewal(ctx context.Context, subscriptionRepo repository.SubscriptionRepository, storeRepo repository.StoreRepository, event *service.SubscriptionEvent) (*ownerNotification, error) {
	subscription, err := subscriptionRepo.FindByProviderSubscriptionID(ctx, event.ProviderSubscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound.WithDetails(event.ProviderSubscriptionID)
		}

		return nil, errors.Wrap(err, "find subscription by provider id")
	}

	subscription.Status = entity.SubscriptionStatusPaid
	if !event.PeriodStart.IsZero() {
		subscription.CurrentPeriodStart = event.PeriodStart
	}
	if !event.PeriodEnd.IsZero() {
		subscription.CurrentPeriodEnd = event.PeriodEnd
	}
	if event.AmountCents > 0 {
		subscription.PriceCents = event.AmountCents
	}

	if err := subscriptionRepo.Update(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "update subscription")
	}

	if err := s.setStorePaid(ctx, storeRepo, subscription.StoreID, true); err != nil {
		return nil, err
	}

	return nil, nil
}

// applyLapse moves a subscription out of PAID and drops the store's paid flag.
func (s *billingService) applyLapse(ctx context.Context, subscriptionRepo repository.SubscriptionRepository, storeRepo repository.StoreRepository, event *service.SubscriptionEvent, status entity.SubscriptionStatus, title, message string) (*ownerNotification, error) {
	subscription, err := subscriptionRepo.FindByProviderSubscriptionID(ctx, event.ProviderSubscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound.WithDetails(event.ProviderSubscriptionID)
		}

		return nil, errors.Wrap(err, "find subscription by provider id")
	}

	subscription.Status = status
	if err := subscriptionRepo.Update(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "update subscription")
	}

	if err := s.setStorePaid(ctx, storeRepo, subscription.StoreID, false); err != nil {
		return nil, err
	}

	store, err := storeRepo.FindByID(ctx, subscription.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "find store by ID")
	}

	return &ownerNotification{
		userID:  store.OwnerID,
		title:   title,
		message: message,
	}, nil
}

func (s *billingService) setStorePaid(ctx context.Context, storeRepo repository.StoreRepository, storeID uuid.UUID, paid bool) error {
	store, err := storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return errors.Wrap(err, "find store by ID")
	}

	store.IsPaid = paid
	if err := storeRepo.Update(ctx, store); err != nil {
		return errors.Wrap(err, "update store paid flag")
	}

	return nil
}
