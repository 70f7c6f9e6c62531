package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"autocart-backend/internal/domains/catalog/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Memory serves the static product set. There is no real catalog backend in
// this system; products are reference data seeded at startup.
type Memory struct {
	products []model.Product
}

func NewMemory(products []model.Product) *Memory {
	if products == nil {
		products = SeedProducts()
	}
	return &Memory{products: products}
}

var _ RepositoryInterface = (*Memory)(nil)

func (m *Memory) List(ctx context.Context, req model.ListRequest) ([]model.Product, int, error) {
	req.Normalize()

	matched := make([]model.Product, 0, len(m.products))
	query := strings.ToLower(strings.TrimSpace(req.Query))
	for _, p := range m.products {
		if req.CategoryID != "" && p.CategoryID != req.CategoryID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, req.SortBy)

	total := len(matched)
	start := (req.Page - 1) * req.Limit
	if start >= total {
		return []model.Product{}, total, nil
	}
	end := start + req.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (m *Memory) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func sortProducts(products []model.Product, sortBy string) {
	switch sortBy {
	case model.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case model.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case model.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating.GreaterThan(products[j].Rating)
		})
	case model.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

// SeedProducts is the demo storefront inventory.
func SeedProducts() []model.Product {
	genuineParts := &model.VendorInfo{
		ID:     uuid.MustParse("b1a7f0d2-0001-4000-8000-000000000001"),
		Name:   "Genuine Parts Co",
		Rating: 4.7,
	}
	speedZone := &model.VendorInfo{
		ID:     uuid.MustParse("b1a7f0d2-0001-4000-8000-000000000002"),
		Name:   "SpeedZone Performance",
		Rating: 4.4,
	}

	price := func(v string) decimal.Decimal { return decimal.RequireFromString(v) }
	pricePtr := func(v string) *decimal.Decimal {
		d := decimal.RequireFromString(v)
		return &d
	}
	created := func(day int) time.Time {
		return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
	}

	return []model.Product{
		{
			ID:            uuid.MustParse("a0e1b2c3-0001-4000-8000-000000000001"),
			Name:          "Ceramic Brake Pad Set",
			Description:   "Low-dust ceramic pads, front axle set with hardware kit.",
			Price:         price("49.99"),
			OriginalPrice: pricePtr("64.99"),
			Thumbnail:     "https://images.autocart.dev/products/brake-pads.jpg",
			CategoryID:    "brakes",
			Vendor:        genuineParts,
			Rating:        price("4.6"),
			ReviewCount:   318,
			Stock:         42,
			CreatedAt:     created(2),
		},
		{
			ID:          uuid.MustParse("a0e1b2c3-0001-4000-8000-000000000002"),
			Name:        "Synthetic Engine Oil 5W-30 (5L)",
			Description: "Full synthetic, API SP rated.",
			Price:       price("38.50"),
			Thumbnail:   "https://images.autocart.dev/products/oil-5w30.jpg",
			CategoryID:  "fluids",
			Vendor:      genuineParts,
			Rating:      price("4.8"),
			ReviewCount: 1024,
			Stock:       120,
			CreatedAt:   created(5),
		},
		{
			ID:            uuid.MustParse("a0e1b2c3-0001-4000-8000-000000000003"),
			Name:          "LED Headlight Bulb Pair H7",
			Description:   "6000K cool white, CANBUS ready.",
			Price:         price("29.95"),
			OriginalPrice: pricePtr("39.95"),
			Thumbnail:     "https://images.autocart.dev/products/led-h7.jpg",
			CategoryID:    "lighting",
			Vendor:        speedZone,
			Rating:        price("4.3"),
			ReviewCount:   86,
			Stock:         64,
			CreatedAt:     created(9),
		},
		{
			ID:          uuid.MustParse("a0e1b2c3-0001-4000-8000-000000000004"),
			Name:        "Cabin Air Filter",
			Description: "Activated carbon filter element.",
			Price:       price("12.99"),
			Thumbnail:   "https://images.autocart.dev/products/cabin-filter.jpg",
			CategoryID:  "filters",
			Vendor:      genuineParts,
			Rating:      price("4.5"),
			ReviewCount: 203,
			Stock:       88,
			CreatedAt:   created(11),
		},
		{
			ID:            uuid.MustParse("a0e1b2c3-0001-4000-8000-000000000005"),
			Name:          "Performance Air Intake Kit",
			Description:   "Cold air intake with reusable cone filter.",
			Price:         price("149.00"),
			OriginalPrice: pricePtr("189.00"),
			Thumbnail:     "https://images.autocart.dev/products/intake-kit.jpg",
			CategoryID:    "performance",
			Vendor:        speedZone,
			Rating:        price("4.2"),
			ReviewCount:   54,
			Stock:         12,
			CreatedAt:     created(15),
		},
		{
			ID:          uuid.MustParse("a0e1b2c3-0001-4000-8000-000000000006"),
			Name:        "All-Weather Floor Mat Set",
			Description: "Deep-dish rubber mats, trimmable, 4 pieces.",
			Price:       price("44.90"),
			Thumbnail:   "https://images.autocart.dev/products/floor-mats.jpg",
			CategoryID:  "interior",
			Vendor:      genuineParts,
			Rating:      price("4.7"),
			ReviewCount: 412,
			Stock:       57,
			CreatedAt:   created(18),
		},
		{
			ID:          uuid.MustParse("a0e1b2c3-0001-4000-8000-000000000007"),
			Name:        "Wiper Blade Pair 24/18",
			Description: "Beam-style blades with spoiler.",
			Price:       price("21.40"),
			Thumbnail:   "https://images.autocart.dev/products/wipers.jpg",
			CategoryID:  "exterior",
			Vendor:      genuineParts,
			Rating:      price("4.4"),
			ReviewCount: 167,
			Stock:       0, // out of stock
			CreatedAt:   created(21),
		},
		{
			ID:            uuid.MustParse("a0e1b2c3-0001-4000-8000-000000000008"),
			Name:          "Alloy Wheel 17\" Gunmetal",
			Description:   "Flow-formed, 17x7.5 ET45.",
			Price:         price("139.00"),
			OriginalPrice: pricePtr("165.00"),
			Thumbnail:     "https://images.autocart.dev/products/alloy-17.jpg",
			CategoryID:    "wheels",
			Vendor:        speedZone,
			Rating:        price("4.1"),
			ReviewCount:   29,
			Stock:         16,
			CreatedAt:     created(25),
		},
	}
}
