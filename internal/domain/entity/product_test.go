package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductVariation_EffectivePriceCents(t *testing.T) {
	full := &ProductVariation{PriceCents: 2000}
	assert.Equal(t, int64(2000), full.EffectivePriceCents())

	discounted := &ProductVariation{PriceCents: 2000, DiscountCents: 1500}
	assert.Equal(t, int64(1500), discounted.EffectivePriceCents())
}
