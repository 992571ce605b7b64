package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification lookup matches no row.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository persists durable user notifications.
type NotificationRepository interface {
	// Create persists a new notification row.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a single notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByUser lists a user's notifications, newest first, with offset pagination.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags a single notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead flags every unread notification of a user as read.
	// Calling it again is a no-op.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
