package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for user notifications.
type NotificationUsecase interface {
	// Notify persists a notification and pushes it to the user's live
	// connections best-effort.
	Notify(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, title, message string) (*entity.Notification, error)

	// ListNotifications lists a user's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags one notification as read. Users may only touch their own.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead flags every unread notification of a user as read.
	// Calling it again is a no-op.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// Subscribe opens a live notification stream for a user. The returned
	// function unsubscribes and must be called when the connection closes.
	Subscribe(userID uuid.UUID) (<-chan *entity.Notification, func())
}
