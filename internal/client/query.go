package client

import (
	"sort"

	"catalog-service/internal/models"
)

// DefaultPageSize is the catalog listing page size.
const DefaultPageSize = 12

// SortKey selects the client-side sort order for a listing.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
)

// SortProducts orders products in place by the given key. All keys
// tie-break stably by the original server order. Price sorts compare
// the raw price, not the discounted one; a missing rating counts as 0.
func SortProducts(products []models.Product, sortBy SortKey) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ProductID > products[j].ProductID
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].RatingValue().LessThan(products[i].RatingValue())
		})
	default:
		// featured: featured items first, everything else after.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsFeatured && !products[j].IsFeatured
		})
	}
}

// Paginate slices one 1-based page out of the listing. A page past
// the end is empty.
func Paginate(products []models.Product, page, pageSize int) []models.Product {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
