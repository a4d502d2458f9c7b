package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType is the closed set of product kinds the storefront sells.
type ProductType string

const (
	TypeShoes     ProductType = "Shoes"
	TypeHandbag   ProductType = "Handbag"
	TypeMakeup    ProductType = "Makeup"
	TypeAccessory ProductType = "Accessory"
	TypeClothing  ProductType = "Clothing"
)

// Valid reports whether t is one of the known product types.
func (t ProductType) Valid() bool {
	switch t {
	case TypeShoes, TypeHandbag, TypeMakeup, TypeAccessory, TypeClothing:
		return true
	}
	return false
}

// Product represents a product in the catalog
type Product struct {
	ProductID          int                 `json:"product_id"`
	ProductName        string              `json:"product_name"`
	ProductType        ProductType         `json:"product_type"`
	CategoryID         *int                `json:"category_id"`
	Price              decimal.Decimal     `json:"price"`
	DiscountPercentage int                 `json:"discount_percentage"`
	ProductRating      decimal.NullDecimal `json:"product_rating"`
	StockQuantity      int                 `json:"stock_quantity"`
	ProductDescription *string             `json:"product_description"`
	MainImageURL       *string             `json:"main_image_url"`
	Brand              *string             `json:"brand"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	IsFeatured         bool                `json:"is_featured"`
	IsActive           bool                `json:"is_active"`
}

// EffectivePrice returns the price after applying the discount
// percentage. It is derived on every call and never stored.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPercentage > 0 {
		multiplier := decimal.NewFromInt(100 - int64(p.DiscountPercentage)).
			Div(decimal.NewFromInt(100))
		return p.Price.Mul(multiplier)
	}
	return p.Price
}

// DisplayPrice formats the effective price rounded to two decimals.
// Rounding happens only here, at display time.
func (p *Product) DisplayPrice() string {
	return p.EffectivePrice().StringFixed(2)
}

// RatingValue returns the parsed rating, treating a missing rating as 0.
func (p *Product) RatingValue() decimal.Decimal {
	if p.ProductRating.Valid {
		return p.ProductRating.Decimal
	}
	return decimal.Zero
}

// Category represents a product category. Categories may form a tree
// through ParentCategoryID; they are static seed data.
type Category struct {
	CategoryID       int    `json:"category_id"`
	CategoryName     string `json:"category_name"`
	ParentCategoryID *int   `json:"parent_category_id"`
}

// ProductImage is an additional image attached to a product.
type ProductImage struct {
	ImageID   int    `json:"image_id"`
	ProductID int    `json:"product_id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
}

// ProductAttribute is a name/value pair attached to a product.
type ProductAttribute struct {
	AttributeID    int    `json:"attribute_id"`
	ProductID      int    `json:"product_id"`
	AttributeName  string `json:"attribute_name"`
	AttributeValue string `json:"attribute_value"`
}

// User is a storefront account. Login itself is out of scope; the
// record exists so the repository owns the full canonical data set.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// CartItem is one line in a cart, keyed uniquely by product id.
// Quantity is always > 0; an update to zero or below evicts the line.
type CartItem struct {
	ProductID     int     `json:"product_id"`
	Quantity      int     `json:"quantity"`
	SelectedSize  *string `json:"selected_size,omitempty"`
	SelectedColor *string `json:"selected_color,omitempty"`
}
