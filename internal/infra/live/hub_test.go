package live

import (
	"testing"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	defer unsubscribe()

	notification := &entity.Notification{ID: uuid.New(), UserID: userID}
	hub.Publish(userID, notification)

	select {
	case got := <-ch:
		assert.Equal(t, notification.ID, got.ID)
	default:
		t.Fatal("expected a buffered notification")
	}
}

func TestHub_PublishToOtherUserIsDropped(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	defer unsubscribe()

	hub.Publish(uuid.New(), &entity.Notification{ID: uuid.New()})

	assert.Empty(t, ch)
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	// Publishing after unsubscribe must not panic on a closed channel.
	hub.Publish(userID, &entity.Notification{ID: uuid.New()})

	// Unsubscribing twice is safe.
	unsubscribe()
}

func TestHub_MultipleSubscribersPerUser(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	first, unsubFirst := hub.Subscribe(userID)
	second, unsubSecond := hub.Subscribe(userID)
	defer unsubFirst()
	defer unsubSecond()

	notification := &entity.Notification{ID: uuid.New(), UserID: userID}
	hub.Publish(userID, notification)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
}

func TestHub_FullBufferDoesNotBlockPublisher(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	defer unsubscribe()

	for i := 0; i < subscriberBuffer+10; i++ {
		hub.Publish(userID, &entity.Notification{ID: uuid.New()})
	}

	assert.Len(t, ch, subscriberBuffer)
}
