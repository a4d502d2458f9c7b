package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

// QueryFilter carries the optional predicates of one catalog request.
// All non-empty fields are sent as query parameters.
type QueryFilter struct {
	Type     models.ProductType
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Featured *bool
	Search   string
}

// Values encodes the set fields as URL query parameters.
func (f *QueryFilter) Values() url.Values {
	params := url.Values{}
	if f == nil {
		return params
	}
	if f.Type != "" {
		params.Set("type", string(f.Type))
	}
	if f.Brand != "" {
		params.Set("brand", f.Brand)
	}
	if f.MinPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Featured != nil {
		params.Set("featured", strconv.FormatBool(*f.Featured))
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	return params
}

// CatalogClient talks to the catalog HTTP API and post-processes the
// returned listing. The server does not sort or paginate, so both
// happen here.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
	pageSize   int
	logger     *zap.Logger
}

// NewCatalogClient creates a client for the catalog API.
func NewCatalogClient(baseURL string, timeout time.Duration, pageSize int) *CatalogClient {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &CatalogClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		pageSize:   pageSize,
		logger:     util.GetLogger(),
	}
}

// FetchProducts issues a single listing request. Any failure (request
// error, non-200 status, bad body) degrades to an empty list without
// retrying.
func (c *CatalogClient) FetchProducts(ctx context.Context, filter *QueryFilter) []models.Product {
	endpoint := c.baseURL + "/api/products"
	if params := filter.Values(); len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Warn("Failed to build products request", zap.Error(err))
		return []models.Product{}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Products request failed", zap.Error(err))
		return []models.Product{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Products request returned non-OK status",
			zap.Int("status", resp.StatusCode))
		return []models.Product{}
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		c.logger.Warn("Failed to decode products response", zap.Error(err))
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}
	return products
}

// FetchProduct retrieves a single product by id.
func (c *CatalogClient) FetchProduct(ctx context.Context, id int) (*models.Product, error) {
	endpoint := fmt.Sprintf("%s/api/products/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product request returned status %d", resp.StatusCode)
	}

	var product models.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// QueryResult is one rendered page of the catalog.
type QueryResult struct {
	Products   []models.Product
	Page       int
	TotalPages int
	TotalCount int
}

// Query runs the full pipeline: one filtered request, then
// client-side sort and pagination over the response.
func (c *CatalogClient) Query(ctx context.Context, filter *QueryFilter, sortBy SortKey, page int) *QueryResult {
	products := c.FetchProducts(ctx, filter)

	SortProducts(products, sortBy)

	totalCount := len(products)
	totalPages := (totalCount + c.pageSize - 1) / c.pageSize

	return &QueryResult{
		Products:   Paginate(products, page, c.pageSize),
		Page:       page,
		TotalPages: totalPages,
		TotalCount: totalCount,
	}
}
