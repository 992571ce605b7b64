package postgres

import (
	"context"
	"time"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/repository"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Create persists a new subscription.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindActiveByStore retrieves the store's newest non-cancelled subscription.
func (repo *subscriptionRepository) FindActiveByStore(ctx context.Context, storeID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ? AND status <> ?", storeID, string(entity.SubscriptionStatusCancelled)).
		Order("created_at DESC").
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active subscription by store")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindByProviderSubscriptionID retrieves a subscription by the payment
// provider's identifier.
func (repo *subscriptionRepository) FindByProviderSubscriptionID(ctx context.Context, providerSubID string) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("provider_subscription_id = ?", providerSubID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by provider id")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindPaidEndingBefore lists PAID subscriptions whose period ended before the cutoff.
func (repo *subscriptionRepository) FindPaidEndingBefore(ctx context.Context, cutoff time.Time) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND current_period_end < ?", string(entity.SubscriptionStatusPaid), cutoff).
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired paid subscriptions")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// Update modifies an existing subscription.
func (repo *subscriptionRepository) Update(ctx context.Context, subscription *entity.Subscription) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", subscription.ID).
		Updates(map[string]any{
			"plan_id":                  subscription.PlanID,
			"price_cents":              subscription.PriceCents,
			"status":                   string(subscription.Status),
			"current_period_start":     subscription.CurrentPeriodStart,
			"current_period_end":       subscription.CurrentPeriodEnd,
			"provider_subscription_id": subscription.ProviderSubscriptionID,
			"provider_customer_id":     subscription.ProviderCustomerID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// RecordWebhookEvent inserts the provider event id into the processed ledger.
// The unique index on provider_event_id turns a replayed delivery into
// ErrDuplicateWebhookEvent so the caller can skip re-applying it.
func (repo *subscriptionRepository) RecordWebhookEvent(ctx context.Context, event *entity.WebhookEvent) error {
	eventM := &model.WebhookEventModel{
		ID:              event.ID,
		ProviderEventID: event.ProviderEventID,
		EventType:       event.EventType,
		ProcessedAt:     event.ProcessedAt,
	}
	if eventM.ProcessedAt.IsZero() {
		eventM.ProcessedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWebhookEvent
		}

		return errors.Wrap(err, "failed to record webhook event")
	}

	event.ID = eventM.ID
	event.ProcessedAt = eventM.ProcessedAt

	return nil
}

// --- Mapper Functions ---

func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:                     data.ID,
		StoreID:                data.StoreID,
		PlanID:                 data.PlanID,
		PriceCents:             data.PriceCents,
		Status:                 entity.SubscriptionStatus(data.Status),
		CurrentPeriodStart:     data.CurrentPeriodStart,
		CurrentPeriodEnd:       data.CurrentPeriodEnd,
		ProviderSubscriptionID: data.ProviderSubscriptionID,
		ProviderCustomerID:     data.ProviderCustomerID,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:                     data.ID,
		StoreID:                data.StoreID,
		PlanID:                 data.PlanID,
		PriceCents:             data.PriceCents,
		Status:                 string(data.Status),
		CurrentPeriodStart:     data.CurrentPeriodStart,
		CurrentPeriodEnd:       data.CurrentPeriodEnd,
		ProviderSubscriptionID: data.ProviderSubscriptionID,
		ProviderCustomerID:     data.ProviderCustomerID,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
