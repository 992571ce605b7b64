package impl

import (
	"context"
	"testing"
	"time"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	mockRepo "vitrine/internal/mocks/repository"
	mockSvc "vitrine/internal/mocks/service"
	mockUC "vitrine/internal/mocks/usecase"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billingServiceMocks struct {
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	storeRepo        *mockRepo.MockStoreRepository
	userRepo         *mockRepo.MockUserRepository
	paymentGateway   *mockSvc.MockPaymentGateway
	notifications    *mockUC.MockNotificationUsecase
}

// newBillingService wires the transaction stub to the same repository mocks,
// so expectations cover both the direct and the transactional paths.
func newBillingService(t *testing.T) (usecase.BillingUsecase, billingServiceMocks) {
	m := billingServiceMocks{
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		storeRepo:        mockRepo.NewMockStoreRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		paymentGateway:   mockSvc.NewMockPaymentGateway(t),
		notifications:    mockUC.NewMockNotificationUsecase(t),
	}

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			SubscriptionRepo: m.subscriptionRepo,
			StoreRepo:        m.storeRepo,
		},
	}

	svc := NewBillingService(BillingServiceParams{
		SubscriptionRepo: m.subscriptionRepo,
		StoreRepo:        m.storeRepo,
		UserRepo:         m.userRepo,
		PaymentGateway:   m.paymentGateway,
		TxManager:        txManager,
		Notifications:    m.notifications,
		Logger:           newDiscardLogger(),
	})

	return svc, m
}

func TestBillingService_CreateCheckoutSession(t *testing.T) {
	svc, m := newBillingService(t)
	ctx := context.Background()

	store := &entity.Store{ID: uuid.New()}
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com"}

	m.storeRepo.On("FindByID", ctx, store.ID).Return(store, nil)
	m.subscriptionRepo.On("FindActiveByStore", ctx, store.ID).
		Return(nil, repository.ErrSubscriptionNotFound)
	m.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	m.paymentGateway.On("CreateCheckoutSession", ctx, store.ID.String(), "plan_basic", user.Email).
		Return(&service.CheckoutSession{SessionID: "cs_123", URL: "https://pay.example/cs_123"}, nil)

	session, err := svc.CreateCheckoutSession(ctx, store.ID, "plan_basic", user.ID)
	require.NoError(t, err)
	assert.Equal(t, "cs_123", session.SessionID)
}

func TestBillingService_CreateCheckoutSession_AlreadySubscribed(t *testing.T) {
	svc, m := newBillingService(t)
	ctx := context.Background()

	store := &entity.Store{ID: uuid.New()}
	m.storeRepo.On("FindByID", ctx, store.ID).Return(store, nil)
	m.subscriptionRepo.On("FindActiveByStore", ctx, store.ID).
		Return(&entity.Subscription{Status: entity.SubscriptionStatusPaid}, nil)

	session, err := svc.CreateCheckoutSession(ctx, store.ID, "plan_basic", uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrSubscriptionAlreadyExists)
	assert.Nil(t, session)
}

func TestBillingService_HandleWebhook_CheckoutCompleted(t *testing.T) {
	svc, m := newBillingService(t)
	ctx := context.Background()

	ownerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), OwnerID: ownerID, Name: "Loja da Ana"}
	event := &service.SubscriptionEvent{
		EventID:                "evt_1",
		Type:                   service.EventCheckoutCompleted,
		ProviderSubscriptionID: "sub_123",
		ProviderCustomerID:     "cus_123",
		StoreID:                store.ID.String(),
		PlanID:                 "plan_basic",
		AmountCents:            4990,
		PeriodStart:            time.Now(),
		PeriodEnd:              time.Now().AddDate(0, 1, 0),
	}

	m.paymentGateway.On("ParseWebhook", []byte("payload"), "sig").Return(event, nil)
	m.subscriptionRepo.On("RecordWebhookEvent", ctx, mock.AnythingOfType("*entity.WebhookEvent")).
		Return(nil)
	m.storeRepo.On("FindByID", ctx, store.ID).Return(store, nil)
	m.subscriptionRepo.On("FindActiveByStore", ctx, store.ID).
		Return(nil, repository.ErrSubscriptionNotFound)
	m.subscriptionRepo.On("Create", ctx, mock.MatchedBy(func(sub *entity.Subscription) bool {
		return sub.StoreID == store.ID &&
			sub.Status == entity.SubscriptionStatusPaid &&
			sub.ProviderSubscriptionID == "sub_123" &&
			sub.PriceCents == 4990
	})).Return(nil)
	m.storeRepo.On("Update", ctx, store).Return(nil)
	m.notifications.On("Notify", ctx, ownerID, entity.NotificationTypeSystem,
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(&entity.Notification{}, nil)

	require.NoError(t, svc.HandleWebhook(ctx, []byte("payload"), "sig"))
	assert.True(t, store.IsPaid)
	assert.Equal(t, entity.StoreStatusActive, store.Status)
}

func TestBillingService_HandleWebhook_ReplayIsNoop(t *testing.T) {
	svc, m := newBillingService(t)
	ctx := context.Background()

	event := &service.SubscriptionEvent{
		EventID: "evt_1",
		Type:    service.EventCheckoutCompleted,
		StoreID: uuid.New().String(),
	}

	m.paymentGateway.On("ParseWebhook", []byte("payload"), "sig").Return(event, nil)
	// A second delivery of the same event id rolls back and succeeds silently.
	m.subscriptionRepo.On("RecordWebhookEvent", ctx, mock.AnythingOfType("*entity.WebhookEvent")).
		Return(repository.ErrDuplicateWebhookEvent)

	require.NoError(t, svc.HandleWebhook(ctx, []byte("payload"), "sig"))
}

func TestBillingService_HandleWebhook_BadSignature(t *testing.T) {
	svc, m := newBillingService(t)
	ctx := context.Background()

	m.paymentGateway.On("ParseWebhook", []byte("payload"), "bad-sig").
		Return(nil, assert.AnError)

	err := svc.HandleWebhook(ctx, []byte("payload"), "bad-sig")
	require.ErrorIs(t, err, domainerrors.ErrWebhookSignature)
}

func TestBillingService_HandleWebhook_PaymentFailedLapsesStore(t *testing.T) {
	svc, m := newBillingService(t)
	ctx := context.Background()

	ownerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), OwnerID: ownerID, IsPaid: true, Status: entity.StoreStatusActive}
	subscription := &entity.Subscription{
		ID:                     uuid.New(),
		StoreID:                store.ID,
		Status:                 entity.SubscriptionStatusPaid,
		ProviderSubscriptionID: "sub_123",
	}
	event := &service.SubscriptionEvent{
		EventID:                "evt_2",
		Type:                   service.EventInvoicePaymentFailed,
		ProviderSubscriptionID: "sub_123",
	}

	m.paymentGateway.On("ParseWebhook", []byte("payload"), "sig").Return(event, nil)
	m.subscriptionRepo.On("RecordWebhookEvent", ctx, mock.AnythingOfType("*entity.WebhookEvent")).
		Return(nil)
	m.subscriptionRepo.On("FindByProviderSubscriptionID", ctx, "sub_123").
		Return(subscription, nil)
	m.subscriptionRepo.On("Update", ctx, subscription).Return(nil)
	m.storeRepo.On("FindByID", ctx, store.ID).Return(store, nil)
	m.storeRepo.On("Update", ctx, store).Return(nil)
	m.notifications.On("Notify", ctx, ownerID, entity.NotificationTypeSystem,
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(&entity.Notification{}, nil)

	require.NoError(t, svc.HandleWebhook(ctx, []byte("payload"), "sig"))
	assert.Equal(t, entity.SubscriptionStatusPending, subscription.Status)
	assert.False(t, store.IsPaid)
}

func TestBillingService_CancelSubscription(t *testing.T) {
	svc, m := newBillingService(t)
	ctx := context.Background()

	store := &entity.Store{ID: uuid.New(), IsPaid: true}
	subscription := &entity.Subscription{
		ID:                     uuid.New(),
		StoreID:                store.ID,
		Status:                 entity.SubscriptionStatusPaid,
		ProviderSubscriptionID: "sub_123",
	}

	m.subscriptionRepo.On("FindActiveByStore", ctx, store.ID).Return(subscription, nil)
	m.paymentGateway.On("CancelSubscription", ctx, "sub_123").Return(nil)
	m.subscriptionRepo.On("Update", ctx, subscription).Return(nil)
	m.storeRepo.On("FindByID", ctx, store.ID).Return(store, nil)
	m.storeRepo.On("Update", ctx, store).Return(nil)

	require.NoError(t, svc.CancelSubscription(ctx, store.ID))
	assert.Equal(t, entity.SubscriptionStatusCancelled, subscription.Status)
	assert.False(t, store.IsPaid)
}

func TestBillingService_SweepExpired_ContinuesPastFailures(t *testing.T) {
	svc, m := newBillingService(t)
	ctx := context.Background()

	storeA := &entity.Store{ID: uuid.New(), IsPaid: true}
	subA := &entity.Subscription{ID: uuid.New(), StoreID: storeA.ID, Status: entity.SubscriptionStatusPaid}
	subB := &entity.Subscription{ID: uuid.New(), StoreID: uuid.New(), Status: entity.SubscriptionStatusPaid}

	m.subscriptionRepo.On("FindPaidEndingBefore", ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Subscription{subA, subB}, nil)
	m.subscriptionRepo.On("Update", ctx, subA).Return(nil)
	m.storeRepo.On("FindByID", ctx, storeA.ID).Return(storeA, nil)
	m.storeRepo.On("Update", ctx, storeA).Return(nil)
	m.subscriptionRepo.On("Update", ctx, subB).Return(assert.AnError)

	swept, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
	assert.False(t, storeA.IsPaid)
}
