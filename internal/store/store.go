package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"catalog-service/internal/models"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
)

// Store is the in-memory repository holding the canonical product,
// category, image, attribute and user records for the process
// lifetime. Everything is volatile; seed data is reloaded on every
// start. Gin serves requests concurrently, so access is guarded by a
// single RWMutex.
type Store struct {
	mu sync.RWMutex

	products   map[int]models.Product
	categories map[int]models.Category
	images     map[int]models.ProductImage
	attributes map[int]models.ProductAttribute
	users      map[string]models.User

	productIDCounter   int
	categoryIDCounter  int
	imageIDCounter     int
	attributeIDCounter int
}

// NewStore creates an empty repository with all id counters at 1.
func NewStore() *Store {
	return &Store{
		products:           make(map[int]models.Product),
		categories:         make(map[int]models.Category),
		images:             make(map[int]models.ProductImage),
		attributes:         make(map[int]models.ProductAttribute),
		users:              make(map[string]models.User),
		productIDCounter:   1,
		categoryIDCounter:  1,
		imageIDCounter:     1,
		attributeIDCounter: 1,
	}
}

// ProductFilter narrows a product listing. Only set fields apply.
type ProductFilter struct {
	Type     *models.ProductType
	Brand    *string
	MinPrice *float64
	MaxPrice *float64
	Featured *bool
}

// GetProducts returns all active products matching the filter, in
// insertion order. No sorting, pagination or text search happens
// here; cost is linear in the total record count.
func (s *Store) GetProducts(ctx context.Context, filter *ProductFilter) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.products))
	for id := 1; id < s.productIDCounter; id++ {
		p, ok := s.products[id]
		if !ok || !p.IsActive {
			continue
		}
		if filter != nil && !matchesFilter(&p, filter) {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func matchesFilter(p *models.Product, filter *ProductFilter) bool {
	if filter.Type != nil && p.ProductType != *filter.Type {
		return false
	}
	if filter.Brand != nil {
		if p.Brand == nil || !strings.Contains(strings.ToLower(*p.Brand), strings.ToLower(*filter.Brand)) {
			return false
		}
	}
	// Price bounds compare against the raw, non-discounted price.
	if filter.MinPrice != nil && p.Price.InexactFloat64() < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price.InexactFloat64() > *filter.MaxPrice {
		return false
	}
	if filter.Featured != nil && p.IsFeatured != *filter.Featured {
		return false
	}
	return true
}

// GetProduct retrieves a product by id regardless of its active flag.
func (s *Store) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// CreateProduct inserts a product, assigning the next id and both
// timestamps. Ids are monotonically increasing and never reused.
func (s *Store) CreateProduct(ctx context.Context, insert *models.InsertProduct) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p := models.Product{
		ProductID:          s.productIDCounter,
		ProductName:        insert.ProductName,
		ProductType:        insert.ProductType,
		CategoryID:         insert.CategoryID,
		Price:              insert.Price,
		DiscountPercentage: insert.DiscountPercentage,
		ProductRating:      insert.ProductRating,
		StockQuantity:      insert.StockQuantity,
		ProductDescription: insert.ProductDescription,
		MainImageURL:       insert.MainImageURL,
		Brand:              insert.Brand,
		CreatedAt:          now,
		UpdatedAt:          now,
		IsFeatured:         insert.IsFeatured != nil && *insert.IsFeatured,
		IsActive:           insert.IsActive == nil || *insert.IsActive,
	}
	s.productIDCounter++
	s.products[p.ProductID] = p
	return &p, nil
}

// UpdateProduct applies a partial update and refreshes updated_at.
func (s *Store) UpdateProduct(ctx context.Context, id int, update *models.UpdateProduct) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	if update.ProductName != nil {
		p.ProductName = *update.ProductName
	}
	if update.ProductType != nil {
		p.ProductType = *update.ProductType
	}
	if update.CategoryID != nil {
		p.CategoryID = update.CategoryID
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.DiscountPercentage != nil {
		p.DiscountPercentage = *update.DiscountPercentage
	}
	if update.ProductRating != nil {
		p.ProductRating = *update.ProductRating
	}
	if update.StockQuantity != nil {
		p.StockQuantity = *update.StockQuantity
	}
	if update.ProductDescription != nil {
		p.ProductDescription = update.ProductDescription
	}
	if update.MainImageURL != nil {
		p.MainImageURL = update.MainImageURL
	}
	if update.Brand != nil {
		p.Brand = update.Brand
	}
	if update.IsFeatured != nil {
		p.IsFeatured = *update.IsFeatured
	}
	if update.IsActive != nil {
		p.IsActive = *update.IsActive
	}
	p.UpdatedAt = time.Now()

	s.products[id] = p
	return &p, nil
}

// DeleteProduct removes a product entirely. The freed id is never
// assigned again.
func (s *Store) DeleteProduct(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	return true
}
