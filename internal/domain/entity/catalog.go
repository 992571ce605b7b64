package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a flat tag products are filed under, scoped to a store.
type Category struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attribute is a named axis of variation, e.g. "Color" or "Size".
type Attribute struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AttributeValue is one allowed value of an attribute, e.g. "Blue".
type AttributeValue struct {
	ID          uuid.UUID
	AttributeID uuid.UUID
	Value       string
	CreatedAt   time.Time
}

// VariantAttribute links a product variation to one attribute value.
type VariantAttribute struct {
	ID               uuid.UUID
	VariationID      uuid.UUID
	AttributeValueID uuid.UUID
}
