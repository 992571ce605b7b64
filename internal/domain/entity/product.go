package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry belonging to a store. Purchasable prices and
// stock live on its variations.
type Product struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Description string
	ImageURL    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductVariation is a purchasable SKU of a product, carrying its own
// price, physical characteristics and (at most one) stock row.
type ProductVariation struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	Size          string
	Color         string
	WeightGrams   int
	WidthCm       float64
	HeightCm      float64
	LengthCm      float64
	PriceCents    int64
	DiscountCents int64 // Promotional price; zero means no discount.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectivePriceCents is the price charged for the variation: the
// promotional price when one is set, otherwise the list price.
func (v *ProductVariation) EffectivePriceCents() int64 {
	if v.DiscountCents > 0 {
		return v.DiscountCents
	}

	return v.PriceCents
}

// Stock is the on-hand quantity for a single variation. Quantity never
// goes below zero; the use-case layer rejects writes that would.
type Stock struct {
	ID          uuid.UUID
	VariationID uuid.UUID
	Quantity    int
	UpdatedAt   time.Time
}
