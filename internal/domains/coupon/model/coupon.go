package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountKind discriminates how a coupon's value is interpreted
type DiscountKind string

const (
	DiscountKindPercentage DiscountKind = "percentage"
	DiscountKindFixed      DiscountKind = "fixed"
)

// Coupon is static reference data: a user-entered code mapped to a discount
// rule. Coupons have no lifecycle in this system beyond lookup.
type Coupon struct {
	ID   uuid.UUID    `json:"id"`
	Code string       `json:"code"` // matched case-insensitively
	Kind DiscountKind `json:"type"`

	// Value is a percentage for percentage coupons, an absolute amount for
	// fixed coupons.
	Value decimal.Decimal `json:"value"`

	// MinOrderValue is the eligibility floor on the cart subtotal.
	MinOrderValue *decimal.Decimal `json:"min_order_value,omitempty"`

	// MaxDiscount caps the computed discount. Percentage kind only.
	MaxDiscount *decimal.Decimal `json:"max_discount,omitempty"`

	ValidUntil time.Time `json:"valid_until"`
}

// IsExpired reports whether the coupon's validity window has closed.
// A zero ValidUntil means no expiry.
func (c *Coupon) IsExpired(now time.Time) bool {
	return !c.ValidUntil.IsZero() && now.After(c.ValidUntil)
}

// EligibleFor reports whether subtotal clears the coupon's minimum order value.
func (c *Coupon) EligibleFor(subtotal decimal.Decimal) bool {
	return c.MinOrderValue == nil || subtotal.GreaterThanOrEqual(*c.MinOrderValue)
}
