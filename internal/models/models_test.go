package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectivePriceAppliesDiscount(t *testing.T) {
	p := Product{
		Price:              decimal.RequireFromString("129.99"),
		DiscountPercentage: 19,
	}

	// 129.99 * 0.81 = 105.2919; rounding happens only at display time.
	assert.True(t, p.EffectivePrice().Equal(decimal.RequireFromString("105.2919")))
	assert.Equal(t, "105.29", p.DisplayPrice())
}

func TestEffectivePriceWithoutDiscountIsRawPrice(t *testing.T) {
	p := Product{Price: decimal.RequireFromString("159.99")}

	assert.True(t, p.EffectivePrice().Equal(p.Price))
	assert.Equal(t, "159.99", p.DisplayPrice())
}

func TestRatingValueTreatsMissingAsZero(t *testing.T) {
	unrated := Product{}
	assert.True(t, unrated.RatingValue().IsZero())

	rated := Product{ProductRating: decimal.NullDecimal{
		Decimal: decimal.RequireFromString("4.6"),
		Valid:   true,
	}}
	assert.True(t, rated.RatingValue().Equal(decimal.RequireFromString("4.6")))
}

func TestProductTypeValid(t *testing.T) {
	for _, valid := range []ProductType{TypeShoes, TypeHandbag, TypeMakeup, TypeAccessory, TypeClothing} {
		assert.True(t, valid.Valid())
	}
	assert.False(t, ProductType("Furniture").Valid())
}

func TestProductJSONUsesDecimalStrings(t *testing.T) {
	p := Product{
		ProductID:     1,
		ProductName:   "Sneaker",
		ProductType:   TypeShoes,
		Price:         decimal.RequireFromString("129.99"),
		ProductRating: decimal.NullDecimal{Decimal: decimal.RequireFromString("4.8"), Valid: true},
	}

	raw, err := json.Marshal(&p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "129.99", decoded["price"])
	assert.Equal(t, "4.8", decoded["product_rating"])

	// Missing rating serializes as null.
	p.ProductRating = decimal.NullDecimal{}
	raw, err = json.Marshal(&p)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded["product_rating"])
}
