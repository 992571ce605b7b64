package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput carries the fields of a product.
type ProductInput struct {
	CategoryID  *uuid.UUID
	Name        string
	Description string
	Active      bool
}

// VariationInput carries the fields of a product variation.
type VariationInput struct {
	Size          string
	Color         string
	WeightGrams   int
	WidthCm       float64
	HeightCm      float64
	LengthCm      float64
	PriceCents    int64
	DiscountCents int64
}

// VariationView joins a variation with its stock and attached attribute values.
type VariationView struct {
	Variation  *entity.ProductVariation
	Stock      *entity.Stock
	Attributes []*entity.VariantAttribute
}

// ProductView joins a product with its variations.
type ProductView struct {
	Product    *entity.Product
	Variations []VariationView
}

// StorefrontView is the public read model of a store: the store plus its
// active products. Served from cache when possible.
type StorefrontView struct {
	Store    *entity.Store `json:"store"`
	Products []ProductView `json:"products"`
}

// CatalogUsecase defines the interface for catalog management use cases.
type CatalogUsecase interface {
	// CreateCategory adds a category to a store. Name is unique per store.
	CreateCategory(ctx context.Context, storeID uuid.UUID, name string) (*entity.Category, error)

	// ListCategories lists the categories of a store.
	ListCategories(ctx context.Context, storeID uuid.UUID) ([]*entity.Category, error)

	// UpdateCategory renames a category.
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, name string) (*entity.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error

	// CreateAttribute adds a variation axis to a store. Name is unique per store.
	CreateAttribute(ctx context.Context, storeID uuid.UUID, name string) (*entity.Attribute, error)

	// ListAttributes lists the attributes of a store.
	ListAttributes(ctx context.Context, storeID uuid.UUID) ([]*entity.Attribute, error)

	// DeleteAttribute removes an attribute and its values.
	DeleteAttribute(ctx context.Context, attributeID uuid.UUID) error

	// CreateAttributeValue adds an allowed value to an existing attribute.
	CreateAttributeValue(ctx context.Context, attributeID uuid.UUID, value string) (*entity.AttributeValue, error)

	// ListAttributeValues lists the values of an attribute.
	ListAttributeValues(ctx context.Context, attributeID uuid.UUID) ([]*entity.AttributeValue, error)

	// DeleteAttributeValue removes an attribute value.
	DeleteAttributeValue(ctx context.Context, valueID uuid.UUID) error

	// CreateProduct adds a product to a store.
	CreateProduct(ctx context.Context, storeID uuid.UUID, input ProductInput) (*entity.Product, error)

	// GetProduct retrieves a product with its variations and stock.
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductView, error)

	// ListProducts lists the products of a store with offset pagination.
	ListProducts(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.Product, error)

	// UpdateProduct modifies a product.
	UpdateProduct(ctx context.Context, productID uuid.UUID, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product and its variations.
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// UploadProductImage stores a product image and records its URL.
	UploadProductImage(ctx context.Context, productID uuid.UUID, upload ImageUpload) (string, error)

	// CreateVariation adds a purchasable variation to a product.
	CreateVariation(ctx context.Context, productID uuid.UUID, input VariationInput) (*entity.ProductVariation, error)

	// UpdateVariation modifies a variation.
	UpdateVariation(ctx context.Context, variationID uuid.UUID, input VariationInput) (*entity.ProductVariation, error)

	// DeleteVariation removes a variation.
	DeleteVariation(ctx context.Context, variationID uuid.UUID) error

	// AttachAttributeValue links an attribute value to a variation.
	AttachAttributeValue(ctx context.Context, variationID, valueID uuid.UUID) (*entity.VariantAttribute, error)

	// DetachAttributeValue removes a variant-attribute link.
	DetachAttributeValue(ctx context.Context, linkID uuid.UUID) error

	// SetStock creates or overwrites the stock quantity of a variation.
	// Negative quantities are rejected before any write.
	SetStock(ctx context.Context, variationID uuid.UUID, quantity int) (*entity.Stock, error)

	// GetStock retrieves the stock row of a variation.
	GetStock(ctx context.Context, variationID uuid.UUID) (*entity.Stock, error)

	// GetStorefront assembles the public view of a store by slug, cached.
	GetStorefront(ctx context.Context, slug string) (*StorefrontView, error)
}
