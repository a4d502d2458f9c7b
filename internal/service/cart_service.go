package service

import (
	"context"

	"catalog-service/internal/cart"
	"catalog-service/internal/models"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartService resolves session carts and joins their line items
// against the repository's current product list at read time.
type CartService struct {
	store   *store.Store
	manager *cart.Manager
	logger  *zap.Logger
}

// NewCartService creates a new cart service.
func NewCartService(st *store.Store, manager *cart.Manager) *CartService {
	return &CartService{
		store:   st,
		manager: manager,
		logger:  util.GetLogger(),
	}
}

// CartLine is one cart row joined with its product. Prices come from
// the product's effective (discounted) price, rounded only here.
type CartLine struct {
	Product   models.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	Size      *string        `json:"selected_size,omitempty"`
	Color     *string        `json:"selected_color,omitempty"`
	UnitPrice string         `json:"unit_price"`
	LinePrice string         `json:"line_price"`
}

// CartView is the rendered state of a session cart.
type CartView struct {
	Items      []CartLine `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice string     `json:"total_price"`
}

// NewSession mints a fresh cart session id.
func (s *CartService) NewSession() string {
	util.CartSessionsCreated.Inc()
	return s.manager.NewSessionID()
}

// Cart returns the raw cart for a session.
func (s *CartService) Cart(sessionID string) *cart.Cart {
	return s.manager.Get(sessionID)
}

// AddItem adds a line item to the session cart.
func (s *CartService) AddItem(sessionID string, item models.CartItem) {
	s.manager.Get(sessionID).AddItem(item)
	util.CartMutationsTotal.WithLabelValues("add").Inc()
}

// RemoveItem removes a line item from the session cart.
func (s *CartService) RemoveItem(sessionID string, productID int) {
	s.manager.Get(sessionID).RemoveItem(productID)
	util.CartMutationsTotal.WithLabelValues("remove").Inc()
}

// UpdateQuantity sets a line's quantity exactly; zero or below evicts.
func (s *CartService) UpdateQuantity(sessionID string, productID, quantity int) {
	s.manager.Get(sessionID).UpdateQuantity(productID, quantity)
	util.CartMutationsTotal.WithLabelValues("update").Inc()
}

// Clear empties the session cart.
func (s *CartService) Clear(sessionID string) {
	s.manager.Get(sessionID).Clear()
	util.CartMutationsTotal.WithLabelValues("clear").Inc()
}

// View joins the session cart read-through against the repository.
// The cart holds only product ids; a line whose product has been
// deleted since it was added is dropped from the rendering and the
// totals.
func (s *CartService) View(ctx context.Context, sessionID string) (*CartView, error) {
	items := s.manager.Get(sessionID).Items()

	view := &CartView{Items: make([]CartLine, 0, len(items))}
	total := decimal.Zero

	for _, item := range items {
		product, err := s.store.GetProduct(ctx, item.ProductID)
		if err != nil {
			s.logger.Debug("Dropping cart line for missing product",
				zap.Int("product_id", item.ProductID))
			continue
		}

		unit := product.EffectivePrice()
		line := unit.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)

		view.Items = append(view.Items, CartLine{
			Product:   *product,
			Quantity:  item.Quantity,
			Size:      item.SelectedSize,
			Color:     item.SelectedColor,
			UnitPrice: unit.StringFixed(2),
			LinePrice: line.StringFixed(2),
		})
		view.TotalItems += item.Quantity
	}

	view.TotalPrice = total.StringFixed(2)
	return view, nil
}
