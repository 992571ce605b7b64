package impl

import (
	"context"
	"log/slog"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	liveNotifier     service.LiveNotifier
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	LiveNotifier     service.LiveNotifier
	EventPublisher   service.EventPublisher
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		liveNotifier:     params.LiveNotifier,
		eventPublisher:   params.EventPublisher,
		logger:           params.Logger,
	}
}

// Notify persists a notification, then pushes it live and mirrors it onto the
// event topic. Only the persist step can fail the call; the pushes are
// best-effort.
func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, title, message string) (*entity.Notification, error) {
	notification := &entity.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "create notification")
	}

	s.liveNotifier.Publish(userID, notification)

	if err := s.eventPublisher.PublishNotificationEvent(ctx, &service.NotificationEvent{
		NotificationID: notification.ID.String(),
		UserID:         userID.String(),
		Type:           string(notificationType),
		Title:          title,
		Message:        message,
	}); err != nil {
		s.logger.Warn("failed to mirror notification event",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err),
		)
	}

	return notification, nil
}

// ListNotifications lists a user's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	limit, offset = normalizePage(limit, offset)

	notifications, err := s.notificationRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find notifications by user")
	}

	return notifications, nil
}

// MarkRead flags one notification as read. Users may only touch their own;
// someone else's notification is reported as not found rather than forbidden.
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "find notification by ID")
	}

	if notification.UserID != userID {
		return domainerrors.ErrNotificationNotFound
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "mark notification read")
	}

	return nil
}

// MarkAllRead flags every unread notification of a user as read.
func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "mark all notifications read")
	}

	return nil
}

// Subscribe opens a live notification stream for a user.
func (s *notificationService) Subscribe(userID uuid.UUID) (<-chan *entity.Notification, func()) {
	return s.liveNotifier.Subscribe(userID)
}
