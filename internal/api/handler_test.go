package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-service/internal/cart"
	"catalog-service/internal/models"
	"catalog-service/internal/service"
	"catalog-service/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := store.NewSeededStore()
	handler := NewHandler(
		service.NewCatalogService(repo),
		service.NewCartService(repo, cart.NewManager()),
	)

	router := gin.New()
	handler.SetupRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) []models.Product {
	t.Helper()

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func TestListProductsReturnsSeededCatalog(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/products", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeProducts(t, w), 8)
}

func TestListProductsTypeFilter(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/products?type=Shoes", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	products := decodeProducts(t, w)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, models.TypeShoes, p.ProductType)
	}
}

func TestListProductsPriceBoundsAndFeatured(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/products?minPrice=100&maxPrice=200&featured=true", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	products := decodeProducts(t, w)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.True(t, p.IsFeatured)
	}
}

func TestListProductsIgnoresMalformedNumericParams(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/products?minPrice=cheap", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeProducts(t, w), 8)
}

func TestListProductsSearchParam(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/products?search=gucci", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	products := decodeProducts(t, w)
	require.Len(t, products, 1)
	assert.Equal(t, "Classic Leather Handbag", products[0].ProductName)
}

func TestGetProduct(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/products/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "Premium White Sneakers", product.ProductName)
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/products/999", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")

	// A non-numeric id behaves like an unknown one.
	w = doRequest(t, router, http.MethodGet, "/api/products/abc", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProduct(t *testing.T) {
	router := newTestRouter()

	body := `{
		"product_name": "Suede Loafers",
		"product_type": "Shoes",
		"price": "74.50",
		"stock_quantity": 5,
		"brand": "Clarks"
	}`
	w := doRequest(t, router, http.MethodPost, "/api/products", body, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, 9, product.ProductID)
	assert.True(t, product.IsActive)
}

func TestCreateProductValidation(t *testing.T) {
	router := newTestRouter()

	// Missing name and an unknown type.
	body := `{"product_type": "Furniture", "price": "10.00"}`
	w := doRequest(t, router, http.MethodPost, "/api/products", body, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid product data")
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPatch, "/api/products/1", `{"discount_percentage": 50}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, 50, product.DiscountPercentage)

	w = doRequest(t, router, http.MethodDelete, "/api/products/1", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/api/products/1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCategories(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Len(t, categories, 4)
}

func TestGetProductImagesEmptyForUnknownProduct(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/products/999/images", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/search?q=shoes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Matches the Shoes type, not just names.
	products := decodeProducts(t, w)
	require.Len(t, products, 2)
}

func TestSearchRequiresQuery(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/search", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Search query is required")
}

func TestCartRoundTrip(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/cart/items",
		`{"product_id": 1, "quantity": 2}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	session := w.Header().Get("X-Session-ID")
	require.NotEmpty(t, session)

	headers := map[string]string{"X-Session-ID": session}

	// Repeat add merges into one line.
	w = doRequest(t, router, http.MethodPost, "/api/cart/items",
		`{"product_id": 1, "quantity": 3}`, headers)
	require.Equal(t, http.StatusOK, w.Code)

	var view service.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)

	// Exact quantity update.
	w = doRequest(t, router, http.MethodPatch, "/api/cart/items/1", `{"quantity": 1}`, headers)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)

	// Zero quantity evicts the line.
	w = doRequest(t, router, http.MethodPatch, "/api/cart/items/1", `{"quantity": 0}`, headers)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Empty(t, view.Items)

	w = doRequest(t, router, http.MethodDelete, "/api/cart", "", headers)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/cart/items",
		`{"product_id": 1, "quantity": 1}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := w.Header().Get("X-Session-ID")

	w = doRequest(t, router, http.MethodGet, "/api/cart", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	second := w.Header().Get("X-Session-ID")
	require.NotEqual(t, first, second)

	var view service.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Empty(t, view.Items)
}

func TestAddCartItemRejectsInvalidPayload(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/cart/items",
		`{"product_id": 1, "quantity": 0}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
