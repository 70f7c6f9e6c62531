package model

import (
	"time"

	catalog "autocart-backend/internal/domains/catalog/model"
	coupon "autocart-backend/internal/domains/coupon/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one cart entry. Identity for merging is the product ID, not the
// line-item ID: adding the same product twice accumulates quantity on the
// existing entry.
type LineItem struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Product   catalog.Product `json:"product"` // snapshot at time of add
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"added_at"`
}

// Totals are the derived pricing fields of a cart snapshot
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"item_count"`
}

// ZeroTotals is the hard-reset state of an empty cart
func ZeroTotals() Totals {
	return Totals{
		Subtotal:    decimal.Zero,
		Discount:    decimal.Zero,
		DeliveryFee: decimal.Zero,
		Tax:         decimal.Zero,
		Total:       decimal.Zero,
	}
}

// CartState is the full persisted cart snapshot. The derived Totals are
// stored, not computed on read, and must be overwritten together with Items
// on every mutation so the snapshot is always internally consistent.
type CartState struct {
	Items         []LineItem     `json:"items"`
	AppliedCoupon *coupon.Coupon `json:"applied_coupon,omitempty"`
	Totals        Totals         `json:"totals"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// EmptyCartState is the default state for an absent or corrupt cart namespace
func EmptyCartState() *CartState {
	return &CartState{
		Items:  []LineItem{},
		Totals: ZeroTotals(),
	}
}

// FindByProduct returns the index of the line item holding productID, or -1
func (s *CartState) FindByProduct(productID uuid.UUID) int {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// FindByID returns the index of the line item with the given entry ID, or -1
func (s *CartState) FindByID(itemID uuid.UUID) int {
	for i := range s.Items {
		if s.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func (s *CartState) IsEmpty() bool {
	return len(s.Items) == 0
}
