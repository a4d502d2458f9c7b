package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"catalog-service/config"
	"catalog-service/internal/client"
	"catalog-service/internal/models"
	"catalog-service/internal/util"
)

// browse is a terminal consumer of the catalog API: it runs the same
// query pipeline the storefront does (one filtered request, then
// client-side sort and pagination) and prints the resulting page.
func main() {
	var (
		productType = flag.String("type", "", "filter by product type")
		brand       = flag.String("brand", "", "filter by brand substring")
		minPrice    = flag.Float64("min-price", 0, "minimum raw price (inclusive)")
		maxPrice    = flag.Float64("max-price", 0, "maximum raw price (inclusive)")
		featured    = flag.Bool("featured", false, "only featured products")
		search      = flag.String("search", "", "free-text search")
		sortBy      = flag.String("sort", string(client.SortFeatured), "sort key: featured, price-low, price-high, newest, rating")
		page        = flag.Int("page", 1, "1-based page")
	)
	flag.Parse()

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	state := client.NewFilterState()
	if *productType != "" {
		state.SetType(models.ProductType(*productType))
	}
	if *brand != "" {
		state.SetBrand(*brand)
	}
	var min, max *float64
	if *minPrice > 0 {
		min = minPrice
	}
	if *maxPrice > 0 {
		max = maxPrice
	}
	if min != nil || max != nil {
		state.SetPriceRange(min, max)
	}
	if *featured {
		yes := true
		state.SetFeatured(&yes)
	}
	if *search != "" {
		state.SetSearchQuery(*search)
	}
	state.SetSortBy(client.SortKey(*sortBy))
	state.SetPage(*page)

	c := client.NewCatalogClient(
		cfg.Client.BaseURL,
		time.Duration(cfg.Client.TimeoutSeconds)*time.Second,
		cfg.Catalog.PageSize,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	filter, sortKey, current := state.Snapshot()
	result := c.Query(ctx, &filter, sortKey, current)

	fmt.Printf("Page %d of %d (%d products)\n", result.Page, result.TotalPages, result.TotalCount)
	for _, p := range result.Products {
		name := p.ProductName
		brandLabel := ""
		if p.Brand != nil {
			brandLabel = " [" + *p.Brand + "]"
		}
		fmt.Printf("  #%d %s%s — $%s", p.ProductID, name, brandLabel, p.DisplayPrice())
		if p.DiscountPercentage > 0 {
			fmt.Printf(" (%d%% off $%s)", p.DiscountPercentage, p.Price.StringFixed(2))
		}
		fmt.Println()
	}
}
