package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. Name is unique per store.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_store_name"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_store_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// AttributeModel mirrors the 'attributes' table. Name is unique per store.
type AttributeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attributes_store_name"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_attributes_store_name"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Values []AttributeValueModel `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AttributeModel) TableName() string {
	return "attributes"
}

// AttributeValueModel mirrors the 'attribute_values' table. Value is unique
// per attribute.
type AttributeValueModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AttributeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attribute_values_attr_value"`
	Value       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_attribute_values_attr_value"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttributeValueModel) TableName() string {
	return "attribute_values"
}

// VariantAttributeModel mirrors the 'variant_attributes' join table.
type VariantAttributeModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VariationID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AttributeValueID uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName explicitly sets the table name for GORM.
func (VariantAttributeModel) TableName() string {
	return "variant_attributes"
}
