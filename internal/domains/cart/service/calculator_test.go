package service

import (
	"testing"
	"time"

	cartModel "autocart-backend/internal/domains/cart/model"
	catalogModel "autocart-backend/internal/domains/catalog/model"
	couponModel "autocart-backend/internal/domains/coupon/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineItem(t *testing.T, price string, quantity int) cartModel.LineItem {
	t.Helper()
	productID := uuid.New()
	return cartModel.LineItem{
		ID:        uuid.New(),
		ProductID: productID,
		Product: catalogModel.Product{
			ID:    productID,
			Name:  "test product",
			Price: decimal.RequireFromString(price),
			Stock: 10,
		},
		Quantity: quantity,
		AddedAt:  time.Now().UTC(),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s: want %s, got %s", field, want, got)
}

func TestCalculator_EmptyCartIsAllZero(t *testing.T) {
	t.Parallel()

	totals := NewCalculator().Totals(nil, nil)

	assertDecimal(t, "0", totals.Subtotal, "subtotal")
	assertDecimal(t, "0", totals.Discount, "discount")
	assertDecimal(t, "0", totals.DeliveryFee, "delivery_fee")
	assertDecimal(t, "0", totals.Tax, "tax")
	assertDecimal(t, "0", totals.Total, "total")
	assert.Zero(t, totals.ItemCount)
}

func TestCalculator_SubtotalAdditivity(t *testing.T) {
	t.Parallel()

	items := []cartModel.LineItem{
		lineItem(t, "12.50", 2),
		lineItem(t, "3.99", 5),
		lineItem(t, "100", 1),
	}

	totals := NewCalculator().Totals(items, nil)

	// 25 + 19.95 + 100
	assertDecimal(t, "144.95", totals.Subtotal, "subtotal")
	assertDecimal(t, "0", totals.Discount, "discount")
	assert.Equal(t, 8, totals.ItemCount)
}

func TestCalculator_FreeDeliveryThresholdIsInclusive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		price   string
		wantFee string
	}{
		{"just below threshold", "49.99", "5.99"},
		{"exactly at threshold", "50.00", "0"},
		{"above threshold", "50.01", "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			totals := NewCalculator().Totals([]cartModel.LineItem{lineItem(t, tt.price, 1)}, nil)
			assertDecimal(t, tt.wantFee, totals.DeliveryFee, "delivery_fee")
		})
	}
}

func TestCalculator_PercentageDiscountCap(t *testing.T) {
	t.Parallel()

	cap := dec("30")
	applied := &couponModel.Coupon{
		Code:        "WELCOME",
		Kind:        couponModel.DiscountKindPercentage,
		Value:       dec("15"),
		MaxDiscount: &cap,
	}

	// Raw discount 300 x 15% = 45, capped at 30.
	totals := NewCalculator().Totals([]cartModel.LineItem{lineItem(t, "300", 1)}, applied)

	assertDecimal(t, "300", totals.Subtotal, "subtotal")
	assertDecimal(t, "30", totals.Discount, "discount")
	// afterDiscount 270: free delivery, tax 21.60
	assertDecimal(t, "0", totals.DeliveryFee, "delivery_fee")
	assertDecimal(t, "21.60", totals.Tax, "tax")
	assertDecimal(t, "291.60", totals.Total, "total")
}

func TestCalculator_PercentageDiscountUncapped(t *testing.T) {
	t.Parallel()

	applied := &couponModel.Coupon{
		Code:  "SAVE10",
		Kind:  couponModel.DiscountKindPercentage,
		Value: dec("10"),
	}

	totals := NewCalculator().Totals([]cartModel.LineItem{lineItem(t, "80", 1)}, applied)

	assertDecimal(t, "8", totals.Discount, "discount")
}

func TestCalculator_FixedDiscountIndependentOfSubtotal(t *testing.T) {
	t.Parallel()

	applied := &couponModel.Coupon{
		Code:  "FLAT20",
		Kind:  couponModel.DiscountKindFixed,
		Value: dec("20"),
	}

	totals := NewCalculator().Totals([]cartModel.LineItem{lineItem(t, "150", 1)}, applied)

	assertDecimal(t, "20", totals.Discount, "discount")
	// afterDiscount 130: free delivery, tax 10.40, total 140.40
	assertDecimal(t, "0", totals.DeliveryFee, "delivery_fee")
	assertDecimal(t, "140.40", totals.Total, "total")
}

func TestCalculator_FixedDiscountClampedToSubtotal(t *testing.T) {
	t.Parallel()

	applied := &couponModel.Coupon{
		Code:  "BIGFLAT",
		Kind:  couponModel.DiscountKindFixed,
		Value: dec("100"),
	}

	totals := NewCalculator().Totals([]cartModel.LineItem{lineItem(t, "30", 1)}, applied)

	// Discount never exceeds the subtotal, so the total bottoms out at the
	// delivery fee instead of going negative.
	assertDecimal(t, "30", totals.Discount, "discount")
	assertDecimal(t, "5.99", totals.DeliveryFee, "delivery_fee")
	assertDecimal(t, "0", totals.Tax, "tax")
	assertDecimal(t, "5.99", totals.Total, "total")
	require.True(t, totals.Total.GreaterThanOrEqual(decimal.Zero))
}

func TestCalculator_TaxAppliesAfterDiscount(t *testing.T) {
	t.Parallel()

	applied := &couponModel.Coupon{
		Code:  "SAVE10",
		Kind:  couponModel.DiscountKindPercentage,
		Value: dec("10"),
	}

	totals := NewCalculator().Totals([]cartModel.LineItem{lineItem(t, "60", 1)}, applied)

	// afterDiscount 54: tax 4.32, not 4.80
	assertDecimal(t, "4.32", totals.Tax, "tax")
	assertDecimal(t, "58.32", totals.Total, "total")
}

func TestCalculator_DeliveryFeeUsesPostDiscountAmount(t *testing.T) {
	t.Parallel()

	applied := &couponModel.Coupon{
		Code:  "FLAT20",
		Kind:  couponModel.DiscountKindFixed,
		Value: dec("20"),
	}

	// Subtotal 60 clears the threshold, but 60-20=40 does not.
	totals := NewCalculator().Totals([]cartModel.LineItem{lineItem(t, "60", 1)}, applied)

	assertDecimal(t, "5.99", totals.DeliveryFee, "delivery_fee")
}

func TestCalculator_Deterministic(t *testing.T) {
	t.Parallel()

	items := []cartModel.LineItem{
		lineItem(t, "19.99", 3),
		lineItem(t, "4.25", 7),
	}
	applied := &couponModel.Coupon{
		Code:  "SAVE10",
		Kind:  couponModel.DiscountKindPercentage,
		Value: dec("10"),
	}

	calc := NewCalculator()
	first := calc.Totals(items, applied)

	// Repeated recomputation from the same inputs never drifts.
	for i := 0; i < 50; i++ {
		again := calc.Totals(items, applied)
		assert.True(t, first.Total.Equal(again.Total))
		assert.True(t, first.Tax.Equal(again.Tax))
	}
}
