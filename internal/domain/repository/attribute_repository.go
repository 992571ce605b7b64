package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAttributeNotFound is returned when an attribute lookup matches no row.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrAttributeValueNotFound is returned when an attribute value lookup matches no row.
	ErrAttributeValueNotFound = errors.New("attribute value not found")

	// ErrVariantAttributeNotFound is returned when a variant-attribute link lookup matches no row.
	ErrVariantAttributeNotFound = errors.New("variant attribute not found")

	// ErrDuplicateAttribute is returned when the store already has an attribute with the same name.
	ErrDuplicateAttribute = errors.New("attribute already exists")

	// ErrDuplicateAttributeValue is returned when the attribute already has the same value.
	ErrDuplicateAttributeValue = errors.New("attribute value already exists")
)

// AttributeRepository persists attributes, their allowed values and the
// links attaching values to product variations.
type AttributeRepository interface {
	// Create persists a new attribute.
	Create(ctx context.Context, attribute *entity.Attribute) error

	// FindByID retrieves a single attribute by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Attribute, error)

	// FindByStore lists all attributes of a store.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Attribute, error)

	// Delete removes an attribute by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateValue persists a new allowed value for an attribute.
	CreateValue(ctx context.Context, value *entity.AttributeValue) error

	// FindValueByID retrieves a single attribute value by its unique ID.
	FindValueByID(ctx context.Context, id uuid.UUID) (*entity.AttributeValue, error)

	// FindValuesByAttribute lists all values of an attribute.
	FindValuesByAttribute(ctx context.Context, attributeID uuid.UUID) ([]*entity.AttributeValue, error)

	// DeleteValue removes an attribute value by its ID.
	DeleteValue(ctx context.Context, id uuid.UUID) error

	// AttachValueToVariation links an attribute value to a product variation.
	AttachValueToVariation(ctx context.Context, link *entity.VariantAttribute) error

	// FindVariantAttributes lists the attribute values attached to a variation.
	FindVariantAttributes(ctx context.Context, variationID uuid.UUID) ([]*entity.VariantAttribute, error)

	// DetachValueFromVariation removes a variant-attribute link by its ID.
	DetachValueFromVariation(ctx context.Context, id uuid.UUID) error
}
