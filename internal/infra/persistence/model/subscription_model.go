package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table.
type SubscriptionModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID                uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanID                 string    `gorm:"type:varchar(100);not null"`
	PriceCents             int64     `gorm:"not null;default:0"`
	Status                 string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CurrentPeriodStart     time.Time
	CurrentPeriodEnd       time.Time
	ProviderSubscriptionID string `gorm:"type:varchar(100);index"`
	ProviderCustomerID     string `gorm:"type:varchar(100)"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// WebhookEventModel mirrors the 'webhook_events' ledger. The unique index
// on the provider event id is what makes webhook processing idempotent.
type WebhookEventModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProviderEventID string    `gorm:"type:varchar(100);unique;not null"`
	EventType       string    `gorm:"type:varchar(60);not null"`
	ProcessedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}
