package models

import "github.com/shopspring/decimal"

// InsertProduct is the payload for creating a product. The repository
// assigns the id and timestamps.
type InsertProduct struct {
	ProductName        string              `json:"product_name" binding:"required"`
	ProductType        ProductType         `json:"product_type" binding:"required,oneof=Shoes Handbag Makeup Accessory Clothing"`
	CategoryID         *int                `json:"category_id"`
	Price              decimal.Decimal     `json:"price" binding:"required"`
	DiscountPercentage int                 `json:"discount_percentage" binding:"gte=0,lte=100"`
	ProductRating      decimal.NullDecimal `json:"product_rating"`
	StockQuantity      int                 `json:"stock_quantity" binding:"gte=0"`
	ProductDescription *string             `json:"product_description"`
	MainImageURL       *string             `json:"main_image_url"`
	Brand              *string             `json:"brand"`
	IsFeatured         *bool               `json:"is_featured"`
	IsActive           *bool               `json:"is_active"`
}

// UpdateProduct is a partial product update; nil fields are left
// untouched. Applying one refreshes the updated_at timestamp.
type UpdateProduct struct {
	ProductName        *string              `json:"product_name"`
	ProductType        *ProductType         `json:"product_type" binding:"omitempty,oneof=Shoes Handbag Makeup Accessory Clothing"`
	CategoryID         *int                 `json:"category_id"`
	Price              *decimal.Decimal     `json:"price"`
	DiscountPercentage *int                 `json:"discount_percentage" binding:"omitempty,gte=0,lte=100"`
	ProductRating      *decimal.NullDecimal `json:"product_rating"`
	StockQuantity      *int                 `json:"stock_quantity" binding:"omitempty,gte=0"`
	ProductDescription *string              `json:"product_description"`
	MainImageURL       *string              `json:"main_image_url"`
	Brand              *string              `json:"brand"`
	IsFeatured         *bool                `json:"is_featured"`
	IsActive           *bool                `json:"is_active"`
}

// InsertCategory is the payload for creating a category.
type InsertCategory struct {
	CategoryName     string `json:"category_name" binding:"required"`
	ParentCategoryID *int   `json:"parent_category_id"`
}

// InsertProductImage is the payload for attaching an image.
type InsertProductImage struct {
	ProductID int    `json:"product_id" binding:"required"`
	ImageURL  string `json:"image_url" binding:"required"`
	IsPrimary bool   `json:"is_primary"`
}

// InsertProductAttribute is the payload for attaching an attribute.
type InsertProductAttribute struct {
	ProductID      int    `json:"product_id" binding:"required"`
	AttributeName  string `json:"attribute_name" binding:"required"`
	AttributeValue string `json:"attribute_value" binding:"required"`
}

// InsertUser is the payload for creating a user account.
type InsertUser struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
