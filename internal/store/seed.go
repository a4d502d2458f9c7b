package store

import (
	"context"

	"catalog-service/internal/models"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func rating(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: mustDecimal(s), Valid: true}
}

// NewSeededStore creates a repository loaded with the fixed sample
// catalog. This is the only data that exists absent explicit inserts.
func NewSeededStore() *Store {
	s := NewStore()
	s.Seed(context.Background())
	return s
}

// Seed loads the literal sample categories and products.
func (s *Store) Seed(ctx context.Context) {
	categories := []models.InsertCategory{
		{CategoryName: "Footwear"},
		{CategoryName: "Bags & Accessories"},
		{CategoryName: "Beauty & Cosmetics"},
		{CategoryName: "Fashion"},
	}
	for i := range categories {
		_, _ = s.CreateCategory(ctx, &categories[i])
	}

	products := []models.InsertProduct{
		{
			ProductName:        "Premium White Sneakers",
			ProductType:        models.TypeShoes,
			CategoryID:         intPtr(1),
			Price:              mustDecimal("129.99"),
			DiscountPercentage: 19,
			ProductRating:      rating("4.8"),
			StockQuantity:      25,
			ProductDescription: strPtr("Premium white sneakers with modern design and superior comfort. Crafted with high-quality materials and featuring advanced cushioning technology."),
			MainImageURL:       strPtr("https://images.unsplash.com/photo-1549298916-b41d501d3772?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
			Brand:              strPtr("Nike"),
			IsFeatured:         boolPtr(true),
			IsActive:           boolPtr(true),
		},
		{
			ProductName:        "Classic Leather Handbag",
			ProductType:        models.TypeHandbag,
			CategoryID:         intPtr(2),
			Price:              mustDecimal("89.99"),
			DiscountPercentage: 25,
			ProductRating:      rating("4.6"),
			StockQuantity:      15,
			ProductDescription: strPtr("Elegant leather handbag perfect for any occasion. Spacious interior with multiple compartments."),
			MainImageURL:       strPtr("https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
			Brand:              strPtr("Gucci"),
			IsFeatured:         boolPtr(true),
			IsActive:           boolPtr(true),
		},
		{
			ProductName:        "Luxury Makeup Set",
			ProductType:        models.TypeMakeup,
			CategoryID:         intPtr(3),
			Price:              mustDecimal("79.99"),
			DiscountPercentage: 15,
			ProductRating:      rating("4.9"),
			StockQuantity:      30,
			ProductDescription: strPtr("Complete makeup set with premium quality cosmetics. Includes foundation, eyeshadow palette, lipstick, and brushes."),
			MainImageURL:       strPtr("https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
			Brand:              strPtr("Chanel"),
			IsFeatured:         boolPtr(true),
			IsActive:           boolPtr(true),
		},
		{
			ProductName:        "Gold Chain Necklace",
			ProductType:        models.TypeAccessory,
			CategoryID:         intPtr(2),
			Price:              mustDecimal("199.99"),
			DiscountPercentage: 10,
			ProductRating:      rating("4.7"),
			StockQuantity:      12,
			ProductDescription: strPtr("Beautiful gold chain necklace with elegant design. Perfect for special occasions."),
			MainImageURL:       strPtr("https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
			Brand:              strPtr("Tiffany"),
			IsFeatured:         boolPtr(false),
			IsActive:           boolPtr(true),
		},
		{
			ProductName:        "Casual Cotton T-Shirt",
			ProductType:        models.TypeClothing,
			CategoryID:         intPtr(4),
			Price:              mustDecimal("29.99"),
			DiscountPercentage: 20,
			ProductRating:      rating("4.4"),
			StockQuantity:      50,
			ProductDescription: strPtr("Comfortable cotton t-shirt for everyday wear. Soft fabric with excellent fit."),
			MainImageURL:       strPtr("https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
			Brand:              strPtr("Nike"),
			IsFeatured:         boolPtr(false),
			IsActive:           boolPtr(true),
		},
		{
			ProductName:        "Running Shoes",
			ProductType:        models.TypeShoes,
			CategoryID:         intPtr(1),
			Price:              mustDecimal("159.99"),
			DiscountPercentage: 0,
			ProductRating:      rating("4.8"),
			StockQuantity:      20,
			ProductDescription: strPtr("High-performance running shoes for athletes. Advanced cushioning and breathable design."),
			MainImageURL:       strPtr("https://images.unsplash.com/photo-1542291026-7eec264c27ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
			Brand:              strPtr("Adidas"),
			IsFeatured:         boolPtr(true),
			IsActive:           boolPtr(true),
		},
		{
			ProductName:        "Designer Sunglasses",
			ProductType:        models.TypeAccessory,
			CategoryID:         intPtr(2),
			Price:              mustDecimal("249.99"),
			DiscountPercentage: 15,
			ProductRating:      rating("4.6"),
			StockQuantity:      8,
			ProductDescription: strPtr("Stylish designer sunglasses with UV protection. Premium frames with polarized lenses."),
			MainImageURL:       strPtr("https://images.unsplash.com/photo-1572635196237-14b3f281503f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
			Brand:              strPtr("Ray-Ban"),
			IsFeatured:         boolPtr(false),
			IsActive:           boolPtr(true),
		},
		{
			ProductName:        "Vintage Denim Jacket",
			ProductType:        models.TypeClothing,
			CategoryID:         intPtr(4),
			Price:              mustDecimal("89.99"),
			DiscountPercentage: 30,
			ProductRating:      rating("4.5"),
			StockQuantity:      18,
			ProductDescription: strPtr("Classic vintage-style denim jacket. Durable construction with timeless design."),
			MainImageURL:       strPtr("https://images.unsplash.com/photo-1551537482-f2075a1d41f2?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
			Brand:              strPtr("Levi's"),
			IsFeatured:         boolPtr(true),
			IsActive:           boolPtr(true),
		},
	}
	for i := range products {
		_, _ = s.CreateProduct(ctx, &products[i])
	}
}
