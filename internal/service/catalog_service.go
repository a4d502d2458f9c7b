package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

// CatalogService handles catalog business logic on top of the
// in-memory repository.
type CatalogService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{
		store:  st,
		logger: util.GetLogger(),
	}
}

// ListProducts returns active products matching the filter. When a
// search term is present it is applied as a second, independent pass
// over the already-filtered list, matching case-insensitively against
// name, brand and description.
func (s *CatalogService) ListProducts(ctx context.Context, filter *store.ProductFilter, search string) ([]models.Product, error) {
	start := time.Now()
	defer func() {
		util.CatalogQueryLatency.Observe(time.Since(start).Seconds())
	}()

	products, err := s.store.GetProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if search != "" {
		term := strings.ToLower(search)
		matched := make([]models.Product, 0, len(products))
		for _, p := range products {
			if matchesSearch(&p, term, false) {
				matched = append(matched, p)
			}
		}
		products = matched
	}

	util.CatalogQueriesTotal.Inc()
	return products, nil
}

// Search matches the term case-insensitively against name, brand,
// description and additionally the product type, over the full active
// listing with no other filters applied.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.Product, error) {
	products, err := s.store.GetProducts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	term := strings.ToLower(query)
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesSearch(&p, term, true) {
			matched = append(matched, p)
		}
	}

	util.SearchQueriesTotal.Inc()
	return matched, nil
}

// matchesSearch reports whether a product matches an already
// lowercased search term.
func matchesSearch(p *models.Product, term string, includeType bool) bool {
	if strings.Contains(strings.ToLower(p.ProductName), term) {
		return true
	}
	if p.Brand != nil && strings.Contains(strings.ToLower(*p.Brand), term) {
		return true
	}
	if p.ProductDescription != nil && strings.Contains(strings.ToLower(*p.ProductDescription), term) {
		return true
	}
	if includeType && strings.Contains(strings.ToLower(string(p.ProductType)), term) {
		return true
	}
	return false
}

// GetProduct retrieves a single product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		util.ProductLookupsFailed.WithLabelValues("not_found").Inc()
		return nil, err
	}
	return p, nil
}

// CreateProduct inserts a new product.
func (s *CatalogService) CreateProduct(ctx context.Context, insert *models.InsertProduct) (*models.Product, error) {
	p, err := s.store.CreateProduct(ctx, insert)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	util.ProductsCreatedTotal.Inc()
	s.logger.Info("Product created",
		zap.Int("product_id", p.ProductID),
		zap.String("product_name", p.ProductName))
	return p, nil
}

// UpdateProduct applies a partial update to an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int, update *models.UpdateProduct) (*models.Product, error) {
	p, err := s.store.UpdateProduct(ctx, id, update)
	if err != nil {
		return nil, err
	}

	util.ProductsUpdatedTotal.Inc()
	s.logger.Info("Product updated", zap.Int("product_id", id))
	return p, nil
}

// DeleteProduct removes a product. It reports whether anything was
// deleted.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int) bool {
	deleted := s.store.DeleteProduct(ctx, id)
	if deleted {
		util.ProductsDeletedTotal.Inc()
		s.logger.Info("Product deleted", zap.Int("product_id", id))
	}
	return deleted
}

// GetCategories returns every category.
func (s *CatalogService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.GetCategories(ctx)
}

// GetProductImages returns the images attached to a product.
func (s *CatalogService) GetProductImages(ctx context.Context, productID int) ([]models.ProductImage, error) {
	return s.store.GetProductImages(ctx, productID)
}

// GetProductAttributes returns the attributes attached to a product.
func (s *CatalogService) GetProductAttributes(ctx context.Context, productID int) ([]models.ProductAttribute, error) {
	return s.store.GetProductAttributes(ctx, productID)
}
