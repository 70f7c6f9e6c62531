package service

import (
	"autocart-backend/internal/domains/cart/model"
	coupon "autocart-backend/internal/domains/coupon/model"

	"github.com/shopspring/decimal"
)

// Calculator derives a cart's pricing fields from its line items and the
// applied coupon. It is pure and stateless: no I/O, no clock, safe to call
// from any goroutine without synchronization.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Totals recomputes the full derived snapshot.
//
// Rules:
//  1. subtotal = sum(item price x quantity)
//  2. percentage coupon: discount = subtotal x value/100, capped at
//     MaxDiscount when set
//  3. fixed coupon: discount = value, never more than subtotal
//  4. delivery is free once the post-discount amount reaches the threshold
//     (inclusive); below it the standard fee is charged
//  5. tax applies to the post-discount amount
//  6. total = afterDiscount + deliveryFee + tax
//
// An empty item list short-circuits to all-zero totals; an empty cart owes
// neither delivery nor tax. No rounding happens here; amounts stay exact and
// are rounded only at the presentation boundary.
func (c *Calculator) Totals(items []model.LineItem, applied *coupon.Coupon) model.Totals {
	if len(items) == 0 {
		return model.ZeroTotals()
	}

	subtotal := decimal.Zero
	itemCount := 0
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal = subtotal.Add(item.Product.Price.Mul(qty))
		itemCount += item.Quantity
	}

	discount := c.discount(applied, subtotal)
	afterDiscount := subtotal.Sub(discount)

	deliveryFee := model.StandardDeliveryFee
	if afterDiscount.GreaterThanOrEqual(model.FreeDeliveryThreshold) {
		deliveryFee = decimal.Zero
	}

	tax := afterDiscount.Mul(model.TaxRate)

	return model.Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       afterDiscount.Add(deliveryFee).Add(tax),
		ItemCount:   itemCount,
	}
}

func (c *Calculator) discount(applied *coupon.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	if applied == nil {
		return decimal.Zero
	}

	var discount decimal.Decimal

	switch applied.Kind {
	case coupon.DiscountKindPercentage:
		discount = subtotal.Mul(applied.Value).Div(decimal.NewFromInt(100))
		if applied.MaxDiscount != nil && discount.GreaterThan(*applied.MaxDiscount) {
			discount = *applied.MaxDiscount
		}

	case coupon.DiscountKindFixed:
		discount = applied.Value
		// A fixed discount larger than the order discounts the whole order,
		// never drives the total negative.
		if discount.GreaterThan(subtotal) {
			discount = subtotal
		}

	default:
		return decimal.Zero
	}

	return discount
}
