// Package usecase provides hand-maintained testify mocks for use case
// interfaces consumed by other use cases.
package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockNotificationUsecase mocks usecase.NotificationUsecase.
type MockNotificationUsecase struct{ mock.Mock }

func NewMockNotificationUsecase(t mockConstructorTestingT) *MockNotificationUsecase {
	m := &MockNotificationUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationUsecase) Notify(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, title, message string) (*entity.Notification, error) {
	args := m.Called(ctx, userID, notificationType, title, message)
	notification, _ := args.Get(0).(*entity.Notification)

	return notification, args.Error(1)
}

func (m *MockNotificationUsecase) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	notifications, _ := args.Get(0).([]*entity.Notification)

	return notifications, args.Error(1)
}

func (m *MockNotificationUsecase) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return m.Called(ctx, userID, notificationID).Error(0)
}

func (m *MockNotificationUsecase) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockNotificationUsecase) Subscribe(userID uuid.UUID) (<-chan *entity.Notification, func()) {
	args := m.Called(userID)
	ch, _ := args.Get(0).(<-chan *entity.Notification)
	unsubscribe, _ := args.Get(1).(func())

	return ch, unsubscribe
}
