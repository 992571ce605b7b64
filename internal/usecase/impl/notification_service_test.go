package impl

import (
	"context"
	"testing"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	mockRepo "vitrine/internal/mocks/repository"
	mockSvc "vitrine/internal/mocks/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository, *mockSvc.MockLiveNotifier, *mockSvc.MockEventPublisher) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	liveNotifier := mockSvc.NewMockLiveNotifier(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		LiveNotifier:     liveNotifier,
		EventPublisher:   eventPublisher,
		Logger:           newDiscardLogger(),
	})

	return svc, notificationRepo, liveNotifier, eventPublisher
}

func TestNotificationService_Notify(t *testing.T) {
	svc, notificationRepo, liveNotifier, eventPublisher := newNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	liveNotifier.On("Publish", userID, mock.AnythingOfType("*entity.Notification")).Return()
	eventPublisher.On("PublishNotificationEvent", ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)

	notification, err := svc.Notify(ctx, userID, entity.NotificationTypeNewOrder, "New order", "Order received")
	require.NoError(t, err)
	assert.Equal(t, userID, notification.UserID)
	assert.Equal(t, entity.NotificationTypeNewOrder, notification.Type)
	assert.False(t, notification.Read)
}

func TestNotificationService_Notify_EventMirrorFailureIsNotFatal(t *testing.T) {
	svc, notificationRepo, liveNotifier, eventPublisher := newNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	liveNotifier.On("Publish", userID, mock.AnythingOfType("*entity.Notification")).Return()
	eventPublisher.On("PublishNotificationEvent", ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(assert.AnError)

	notification, err := svc.Notify(ctx, userID, entity.NotificationTypeSystem, "title", "message")
	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestNotificationService_MarkRead_SomeoneElsesNotification(t *testing.T) {
	svc, notificationRepo, _, _ := newNotificationService(t)
	ctx := context.Background()

	notification := &entity.Notification{ID: uuid.New(), UserID: uuid.New()}
	notificationRepo.On("FindByID", ctx, notification.ID).Return(notification, nil)

	// Ownership mismatches read as not-found, not forbidden.
	err := svc.MarkRead(ctx, uuid.New(), notification.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkRead(t *testing.T) {
	svc, notificationRepo, _, _ := newNotificationService(t)
	ctx := context.Background()

	userID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), UserID: userID}
	notificationRepo.On("FindByID", ctx, notification.ID).Return(notification, nil)
	notificationRepo.On("MarkRead", ctx, notification.ID).Return(nil)

	require.NoError(t, svc.MarkRead(ctx, userID, notification.ID))
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	svc, notificationRepo, _, _ := newNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.On("MarkAllRead", ctx, userID).Return(nil)

	require.NoError(t, svc.MarkAllRead(ctx, userID))
}
