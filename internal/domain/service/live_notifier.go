package service

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// LiveNotifier pushes a notification to a user's open connections.
// Delivery is at-most-once: with no listener registered the push is
// silently dropped and the persisted row remains the durable record.
type LiveNotifier interface {
	// Publish delivers the notification to the user's live subscribers, if any.
	Publish(userID uuid.UUID, notification *entity.Notification)

	// Subscribe registers a listener for a user and returns the channel and
	// an unsubscribe function. One subscription per open browser tab.
	Subscribe(userID uuid.UUID) (<-chan *entity.Notification, func())
}

// NotificationEvent mirrors a notification onto an external message topic
// for downstream consumers (analytics, audit).
type NotificationEvent struct {
	NotificationID string `json:"notification_id"`
	UserID         string `json:"user_id"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Message        string `json:"message"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing.
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
