package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName  string    `gorm:"type:varchar(100);not null"`
	CustomerPhone string    `gorm:"type:varchar(20);not null"`
	CustomerEmail string    `gorm:"type:varchar(255)"`
	Status        string    `gorm:"type:varchar(20);not null;default:'PENDENTE'"`
	TotalCents    int64     `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. UnitPriceCents snapshots
// the variation price at purchase time.
type OrderItemModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	VariationID    uuid.UUID `gorm:"type:uuid;not null"`
	Quantity       int       `gorm:"not null"`
	UnitPriceCents int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
