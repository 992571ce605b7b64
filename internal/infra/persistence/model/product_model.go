package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(150);not null"`
	Description string     `gorm:"type:text"`
	ImageURL    string     `gorm:"type:text"`
	Active      bool       `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Variations []ProductVariationModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariationModel mirrors the 'product_variations' table.
type ProductVariationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Size          string    `gorm:"type:varchar(30)"`
	Color         string    `gorm:"type:varchar(30)"`
	WeightGrams   int       `gorm:"not null;default:0"`
	WidthCm       float64   `gorm:"type:decimal(8,2);not null;default:0"`
	HeightCm      float64   `gorm:"type:decimal(8,2);not null;default:0"`
	LengthCm      float64   `gorm:"type:decimal(8,2);not null;default:0"`
	PriceCents    int64     `gorm:"not null"`
	DiscountCents int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Stock *StockModel `gorm:"foreignKey:VariationID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductVariationModel) TableName() string {
	return "product_variations"
}

// StockModel mirrors the 'stocks' table. One row per variation; the check
// constraint backs the use-case level quantity >= 0 rule.
type StockModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VariationID uuid.UUID `gorm:"type:uuid;unique;not null"`
	Quantity    int       `gorm:"not null;default:0;check:quantity >= 0"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockModel) TableName() string {
	return "stocks"
}
