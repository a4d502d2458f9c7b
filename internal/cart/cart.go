package cart

import (
	"sync"

	"catalog-service/internal/models"
)

// Cart holds the line items and open/closed UI flag for one client
// session. All operations are synchronous, in-process mutations with
// no persistence and no network calls.
type Cart struct {
	mu     sync.Mutex
	items  []models.CartItem
	isOpen bool
}

// New returns an empty, closed cart.
func New() *Cart {
	return &Cart{items: []models.CartItem{}}
}

// AddItem appends a line item. If a line with the same product id
// already exists, its quantity is increased by item.Quantity and the
// incoming size/color selection is discarded; the existing line keeps
// its original selection. No stock check is performed.
func (c *Cart) AddItem(item models.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// RemoveItem deletes the line for the given product id. Removing an
// absent product is a no-op.
func (c *Cart) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID int) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// UpdateQuantity sets the quantity for a product exactly (not
// additive). A quantity of zero or below evicts the line entirely.
// Unknown product ids are ignored.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			if quantity <= 0 {
				c.removeLocked(productID)
			} else {
				c.items[i].Quantity = quantity
			}
			return
		}
	}
}

// Clear empties all line items, e.g. after an order is placed.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = []models.CartItem{}
}

// Toggle flips the cart visibility flag. Pure UI state.
func (c *Cart) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.isOpen = !c.isOpen
}

// SetOpen sets the cart visibility flag. Pure UI state.
func (c *Cart) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.isOpen = open
}

// IsOpen reports the cart visibility flag.
func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.isOpen
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of line items (not the summed quantity).
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}
