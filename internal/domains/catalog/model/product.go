package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is read-only reference data: browsing state lives in the catalog,
// the cart and wishlist only snapshot it at the time of add.
type Product struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Thumbnail     string           `json:"thumbnail"`
	CategoryID    string           `json:"category_id"`
	Vendor        *VendorInfo      `json:"vendor,omitempty"`
	Rating        decimal.Decimal  `json:"rating"`
	ReviewCount   int              `json:"review_count"`
	Stock         int              `json:"stock"`
	CreatedAt     time.Time        `json:"created_at"`
}

// VendorInfo is the denormalized vendor reference carried on a product
type VendorInfo struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Rating float64   `json:"rating"`
}

// InStock reports whether the product can currently be purchased
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// DiscountPercent derives the displayed markdown from the original price.
// Returns 0 when there is no original price or it is not higher than price.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || !p.OriginalPrice.GreaterThan(p.Price) {
		return 0
	}
	diff := p.OriginalPrice.Sub(p.Price)
	pct := diff.Div(*p.OriginalPrice).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}
