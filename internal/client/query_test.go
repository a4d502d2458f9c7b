package client

import (
	"testing"

	"catalog-service/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priced(id int, price string) models.Product {
	return models.Product{
		ProductID: id,
		Price:     decimal.RequireFromString(price),
	}
}

func TestSortPriceLowAndHigh(t *testing.T) {
	products := []models.Product{priced(1, "50"), priced(2, "10"), priced(3, "30")}

	SortProducts(products, SortPriceLow)
	var prices []string
	for _, p := range products {
		prices = append(prices, p.Price.String())
	}
	assert.Equal(t, []string{"10", "30", "50"}, prices)

	SortProducts(products, SortPriceHigh)
	prices = prices[:0]
	for _, p := range products {
		prices = append(prices, p.Price.String())
	}
	assert.Equal(t, []string{"50", "30", "10"}, prices)
}

func TestSortPriceIgnoresDiscount(t *testing.T) {
	// The comparator uses the raw price even though displays show the
	// discounted one.
	cheapAfterDiscount := priced(1, "100")
	cheapAfterDiscount.DiscountPercentage = 90 // effective 10

	plain := priced(2, "50")

	products := []models.Product{cheapAfterDiscount, plain}
	SortProducts(products, SortPriceLow)

	assert.Equal(t, 2, products[0].ProductID)
	assert.Equal(t, 1, products[1].ProductID)
}

func TestSortNewestIsDescendingByID(t *testing.T) {
	products := []models.Product{priced(2, "1"), priced(9, "1"), priced(5, "1")}

	SortProducts(products, SortNewest)

	assert.Equal(t, 9, products[0].ProductID)
	assert.Equal(t, 5, products[1].ProductID)
	assert.Equal(t, 2, products[2].ProductID)
}

func TestSortRatingTreatsMissingAsZero(t *testing.T) {
	rated := priced(1, "1")
	rated.ProductRating = decimal.NullDecimal{Decimal: decimal.RequireFromString("4.5"), Valid: true}

	unrated := priced(2, "1")

	lowRated := priced(3, "1")
	lowRated.ProductRating = decimal.NullDecimal{Decimal: decimal.RequireFromString("2.0"), Valid: true}

	products := []models.Product{unrated, rated, lowRated}
	SortProducts(products, SortRating)

	assert.Equal(t, 1, products[0].ProductID)
	assert.Equal(t, 3, products[1].ProductID)
	assert.Equal(t, 2, products[2].ProductID)
}

func TestSortFeaturedIsStable(t *testing.T) {
	regularA := priced(1, "1")
	featuredB := priced(2, "1")
	featuredB.IsFeatured = true
	regularC := priced(3, "1")
	featuredD := priced(4, "1")
	featuredD.IsFeatured = true

	products := []models.Product{regularA, featuredB, regularC, featuredD}
	SortProducts(products, SortFeatured)

	// Featured first, both groups keeping their server order.
	ids := []int{products[0].ProductID, products[1].ProductID, products[2].ProductID, products[3].ProductID}
	assert.Equal(t, []int{2, 4, 1, 3}, ids)
}

func TestPaginate(t *testing.T) {
	products := make([]models.Product, 25)
	for i := range products {
		products[i] = priced(i+1, "1")
	}

	page1 := Paginate(products, 1, 12)
	require.Len(t, page1, 12)
	assert.Equal(t, 1, page1[0].ProductID)
	assert.Equal(t, 12, page1[11].ProductID)

	page3 := Paginate(products, 3, 12)
	require.Len(t, page3, 1)
	assert.Equal(t, 25, page3[0].ProductID)

	assert.Empty(t, Paginate(products, 4, 12))
}

func TestPaginateClampsPageBelowOne(t *testing.T) {
	products := []models.Product{priced(1, "1"), priced(2, "1")}

	page := Paginate(products, 0, 12)
	assert.Len(t, page, 2)
}
