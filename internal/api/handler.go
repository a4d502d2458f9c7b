package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/service"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sessionHeader = "X-Session-ID"

// Handler contains HTTP handlers
type Handler struct {
	catalogService *service.CatalogService
	cartService    *service.CartService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalogService *service.CatalogService, cartService *service.CartService) *Handler {
	return &Handler{
		catalogService: catalogService,
		cartService:    cartService,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/products", h.listProducts)
		apiGroup.GET("/products/:id", h.getProduct)
		apiGroup.POST("/products", h.createProduct)
		apiGroup.PATCH("/products/:id", h.updateProduct)
		apiGroup.DELETE("/products/:id", h.deleteProduct)
		apiGroup.GET("/products/:id/images", h.getProductImages)
		apiGroup.GET("/products/:id/attributes", h.getProductAttributes)

		apiGroup.GET("/categories", h.getCategories)
		apiGroup.GET("/search", h.search)

		apiGroup.GET("/cart", h.getCart)
		apiGroup.POST("/cart/items", h.addCartItem)
		apiGroup.PATCH("/cart/items/:productId", h.updateCartItem)
		apiGroup.DELETE("/cart/items/:productId", h.removeCartItem)
		apiGroup.DELETE("/cart", h.clearCart)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// listProducts coerces the textual query parameters into a typed
// filter and returns the filtered listing. Malformed numeric or
// boolean values leave the corresponding field unset.
func (h *Handler) listProducts(c *gin.Context) {
	filter := &store.ProductFilter{}

	if raw := c.Query("type"); raw != "" {
		t := models.ProductType(raw)
		filter.Type = &t
	}
	if raw := c.Query("brand"); raw != "" {
		filter.Brand = &raw
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}
	if raw, ok := c.GetQuery("featured"); ok {
		v := raw == "true"
		filter.Featured = &v
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), filter, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// getProduct handles get product by ID. An unparseable id behaves
// like an unknown one.
func (h *Handler) getProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// createProduct handles product creation
func (h *Handler) createProduct(c *gin.Context) {
	var insert models.InsertProduct
	if err := c.ShouldBindJSON(&insert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid product data",
			"errors":  err.Error(),
		})
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &insert)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// updateProduct handles partial product updates
func (h *Handler) updateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var update models.UpdateProduct
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid product data",
			"errors":  err.Error(),
		})
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, &update)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// deleteProduct handles product deletion
func (h *Handler) deleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if !h.catalogService.DeleteProduct(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// getProductImages returns the images for a product
func (h *Handler) getProductImages(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	images, err := h.catalogService.GetProductImages(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product images"})
		return
	}

	c.JSON(http.StatusOK, images)
}

// getProductAttributes returns the attributes for a product
func (h *Handler) getProductAttributes(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	attributes, err := h.catalogService.GetProductAttributes(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product attributes"})
		return
	}

	c.JSON(http.StatusOK, attributes)
}

// getCategories returns every category
func (h *Handler) getCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// search handles free-text search over the full active listing
func (h *Handler) search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Search query is required"})
		return
	}

	products, err := h.catalogService.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// session resolves the cart session id, minting and echoing a new one
// when the client sent none.
func (h *Handler) session(c *gin.Context) string {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID = h.cartService.NewSession()
	}
	c.Header(sessionHeader, sessionID)
	return sessionID
}

// getCart renders the session cart joined against the catalog
func (h *Handler) getCart(c *gin.Context) {
	view, err := h.cartService.View(c.Request.Context(), h.session(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// addCartItem adds a line item to the session cart
func (h *Handler) addCartItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid cart item",
			"errors":  err.Error(),
		})
		return
	}
	if item.ProductID <= 0 || item.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item"})
		return
	}

	sessionID := h.session(c)
	h.cartService.AddItem(sessionID, item)

	view, err := h.cartService.View(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// updateCartItem sets a line quantity exactly; zero or below removes
// the line.
func (h *Handler) updateCartItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid quantity",
			"errors":  err.Error(),
		})
		return
	}

	sessionID := h.session(c)
	h.cartService.UpdateQuantity(sessionID, productID, *body.Quantity)

	view, viewErr := h.cartService.View(c.Request.Context(), sessionID)
	if viewErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// removeCartItem deletes a line from the session cart
func (h *Handler) removeCartItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	sessionID := h.session(c)
	h.cartService.RemoveItem(sessionID, productID)

	view, viewErr := h.cartService.View(c.Request.Context(), sessionID)
	if viewErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// clearCart empties the session cart
func (h *Handler) clearCart(c *gin.Context) {
	h.cartService.Clear(h.session(c))
	c.Status(http.StatusNoContent)
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
