package client

import (
	"sync"

	"catalog-service/internal/models"
)

// FilterState holds the active filter predicates, free-text search
// query, sort key and current page for one catalog view. Changing any
// filter or the search query resets the page to 1.
type FilterState struct {
	mu     sync.Mutex
	filter QueryFilter
	sortBy SortKey
	page   int
}

// NewFilterState returns a state with no filters, an empty search
// query and the default featured sort.
func NewFilterState() *FilterState {
	return &FilterState{sortBy: SortFeatured, page: 1}
}

// SetType sets the product type predicate.
func (f *FilterState) SetType(t models.ProductType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter.Type = t
	f.page = 1
}

// SetBrand sets the brand predicate.
func (f *FilterState) SetBrand(brand string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter.Brand = brand
	f.page = 1
}

// SelectTypes records a checkbox-style multi selection, but the
// filter model is single-valued: only the first selected value is
// kept, the rest are silently dropped. An empty selection clears the
// predicate.
func (f *FilterState) SelectTypes(types []models.ProductType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(types) > 0 {
		f.filter.Type = types[0]
	} else {
		f.filter.Type = ""
	}
	f.page = 1
}

// SelectBrands records a checkbox-style multi selection; as with
// SelectTypes only the first value survives.
func (f *FilterState) SelectBrands(brands []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(brands) > 0 {
		f.filter.Brand = brands[0]
	} else {
		f.filter.Brand = ""
	}
	f.page = 1
}

// SetPriceRange sets the inclusive price bounds; nil leaves a bound
// open.
func (f *FilterState) SetPriceRange(min, max *float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter.MinPrice = min
	f.filter.MaxPrice = max
	f.page = 1
}

// SetFeatured sets the featured predicate; nil clears it.
func (f *FilterState) SetFeatured(featured *bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter.Featured = featured
	f.page = 1
}

// SetSearchQuery sets the free-text search query.
func (f *FilterState) SetSearchQuery(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter.Search = query
	f.page = 1
}

// SetSortBy selects the sort key. Sorting does not reset the page.
func (f *FilterState) SetSortBy(sortBy SortKey) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sortBy = sortBy
}

// SetPage moves to a 1-based page.
func (f *FilterState) SetPage(page int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if page < 1 {
		page = 1
	}
	f.page = page
}

// ClearFilters resets every predicate and the search query.
func (f *FilterState) ClearFilters() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = QueryFilter{}
	f.page = 1
}

// Snapshot returns the current filter, sort key and page.
func (f *FilterState) Snapshot() (QueryFilter, SortKey, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter, f.sortBy, f.page
}
