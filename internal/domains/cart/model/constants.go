package model

import "github.com/shopspring/decimal"

// Pricing business rules. Decimal vars rather than consts because decimal
// values cannot be constant expressions.
var (
	// TaxRate applies to the post-discount amount.
	TaxRate = decimal.NewFromFloat(0.08)

	// FreeDeliveryThreshold waives the delivery fee when the post-discount
	// amount reaches it. Boundary is inclusive.
	FreeDeliveryThreshold = decimal.NewFromInt(50)

	// StandardDeliveryFee is charged below the threshold.
	StandardDeliveryFee = decimal.NewFromFloat(5.99)
)

const (
	// MaxQuantityPerItem bounds a single line item's quantity.
	MaxQuantityPerItem = 100

	// CartTTLDays is how long an untouched cart survives in the store.
	CartTTLDays = 30
)
