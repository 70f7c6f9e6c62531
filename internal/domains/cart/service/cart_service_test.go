package service

import (
	"context"
	"testing"
	"time"

	cartModel "autocart-backend/internal/domains/cart/model"
	cartRepo "autocart-backend/internal/domains/cart/repository"
	catalogModel "autocart-backend/internal/domains/catalog/model"
	catalogRepo "autocart-backend/internal/domains/catalog/repository"
	catalogService "autocart-backend/internal/domains/catalog/service"
	couponModel "autocart-backend/internal/domains/coupon/model"
	couponRepo "autocart-backend/internal/domains/coupon/repository"
	"autocart-backend/pkg/cache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	productA = catalogModel.Product{
		ID:         uuid.MustParse("a0e1b2c3-9999-4000-8000-00000000000a"),
		Name:       "Product A",
		Price:      decimal.RequireFromString("40"),
		CategoryID: "test",
		Rating:     decimal.RequireFromString("4.5"),
		Stock:      10,
	}
	productB = catalogModel.Product{
		ID:         uuid.MustParse("a0e1b2c3-9999-4000-8000-00000000000b"),
		Name:       "Product B",
		Price:      decimal.RequireFromString("20"),
		CategoryID: "test",
		Rating:     decimal.RequireFromString("4.0"),
		Stock:      5,
	}
	productGone = catalogModel.Product{
		ID:         uuid.MustParse("a0e1b2c3-9999-4000-8000-00000000000c"),
		Name:       "Product Gone",
		Price:      decimal.RequireFromString("15"),
		CategoryID: "test",
		Rating:     decimal.RequireFromString("3.9"),
		Stock:      0,
	}
)

func testCoupons() []couponModel.Coupon {
	minFifty := decimal.RequireFromString("50")
	minHundred := decimal.RequireFromString("100")
	future := time.Now().Add(365 * 24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	return []couponModel.Coupon{
		{
			ID:            uuid.New(),
			Code:          "SAVE10",
			Kind:          couponModel.DiscountKindPercentage,
			Value:         decimal.RequireFromString("10"),
			MinOrderValue: &minFifty,
			ValidUntil:    future,
		},
		{
			ID:            uuid.New(),
			Code:          "FLAT20",
			Kind:          couponModel.DiscountKindFixed,
			Value:         decimal.RequireFromString("20"),
			MinOrderValue: &minHundred,
			ValidUntil:    future,
		},
		{
			ID:         uuid.New(),
			Code:       "OLDCODE",
			Kind:       couponModel.DiscountKindPercentage,
			Value:      decimal.RequireFromString("5"),
			ValidUntil: past,
		},
	}
}

// newTestCartService wires the cart container against an in-memory store so
// tests cover the real repository codec as well.
func newTestCartService(t *testing.T) (ServiceInterface, *cache.Memory) {
	t.Helper()

	store := cache.NewMemory()
	catalog := catalogService.NewCatalogService(
		catalogRepo.NewMemory([]catalogModel.Product{productA, productB, productGone}),
	)
	svc := NewCartService(
		cartRepo.NewCartRepository(store),
		catalog,
		couponRepo.NewCatalog(testCoupons()),
		nil,
	)
	return svc, store
}

func TestCartService_AddItemMergesByProduct(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user:1", productA.ID, 2)
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, "user:1", productA.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1, "same product must merge into one line item")
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount)
	assertDecimal(t, "200", cart.Subtotal, "subtotal")
}

func TestCartService_AddItemDefaultsQuantityToOne(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)

	cart, err := svc.AddItem(context.Background(), "user:1", productB.ID, 0)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartService_AddItemUnknownProduct(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)

	_, err := svc.AddItem(context.Background(), "user:1", uuid.New(), 1)
	assert.ErrorIs(t, err, cartModel.ErrProductNotFound)
}

func TestCartService_AddItemOutOfStock(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)

	_, err := svc.AddItem(context.Background(), "user:1", productGone.ID, 1)
	assert.ErrorIs(t, err, cartModel.ErrOutOfStock)
}

func TestCartService_UpdateQuantityFloorRemovesItem(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)
	ctx := context.Background()

	for _, qty := range []int{0, -1} {
		cart, err := svc.AddItem(ctx, "user:1", productA.ID, 2)
		require.NoError(t, err)
		itemID := cart.Items[0].ID

		cart, err = svc.UpdateQuantity(ctx, "user:1", itemID, qty)
		require.NoError(t, err)

		assert.Empty(t, cart.Items, "quantity %d must remove the line item", qty)
		assert.Zero(t, cart.ItemCount)
		assertDecimal(t, "0", cart.Subtotal, "subtotal")

		_, err = svc.Clear(ctx, "user:1")
		require.NoError(t, err)
	}
}

func TestCartService_UpdateQuantitySetsValue(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "user:1", productA.ID, 2)
	require.NoError(t, err)

	cart, err = svc.UpdateQuantity(ctx, "user:1", cart.Items[0].ID, 7)
	require.NoError(t, err)

	assert.Equal(t, 7, cart.Items[0].Quantity)
	assertDecimal(t, "280", cart.Subtotal, "subtotal")
}

func TestCartService_RemoveAbsentItemIsNoOp(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)
	ctx := context.Background()

	before, err := svc.AddItem(ctx, "user:1", productA.ID, 1)
	require.NoError(t, err)

	after, err := svc.RemoveItem(ctx, "user:1", uuid.New())
	require.NoError(t, err)

	assert.Equal(t, len(before.Items), len(after.Items))
	assert.True(t, before.Subtotal.Equal(after.Subtotal))
}

func TestCartService_ApplyCouponBelowMinimum(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)
	ctx := context.Background()

	// Subtotal 80, FLAT20 requires 100
	before, err := svc.AddItem(ctx, "user:1", productA.ID, 2)
	require.NoError(t, err)

	result, err := svc.ApplyCoupon(ctx, "user:1", "FLAT20")
	require.NoError(t, err)

	assert.Equal(t, cartModel.CouponBelowMinimum, result.Status)
	assert.False(t, result.Applied())

	// State unchanged from the pre-call snapshot
	after, err := svc.GetCart(ctx, "user:1")
	require.NoError(t, err)
	assert.Nil(t, after.AppliedCoupon)
	assert.True(t, before.Total.Equal(after.Total))
	assertDecimal(t, "0", after.Discount, "discount")
}

func TestCartService_ApplyCouponNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user:1", productA.ID, 2)
	require.NoError(t, err)

	result, err := svc.ApplyCoupon(ctx, "user:1", "BOGUS")
	require.NoError(t, err)

	assert.Equal(t, cartModel.CouponNotFound, result.Status)

	after, err := svc.GetCart(ctx, "user:1")
	require.NoError(t, err)
	assert.Nil(t, after.AppliedCoupon)
}

func TestCartService_ApplyCouponExpired(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user:1", productA.ID, 2)
	require.NoError(t, err)

	result, err := svc.ApplyCoupon(ctx, "user:1", "OLDCODE")
	require.NoError(t, err)

	assert.Equal(t, cartModel.CouponExpired, result.Status)
}

func TestCartService_EndToEndScenario(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)
	ctx := context.Background()

	// Product A (40): below the free-delivery threshold
	cart, err := svc.AddItem(ctx, "user:1", productA.ID, 1)
	require.NoError(t, err)
	assertDecimal(t, "40", cart.Subtotal, "subtotal")
	assertDecimal(t, "5.99", cart.DeliveryFee, "delivery_fee")
	assertDecimal(t, "3.20", cart.Tax, "tax")
	assertDecimal(t, "49.19", cart.Total, "total")

	// Product B (20): subtotal 60 crosses the threshold
	cart, err = svc.AddItem(ctx, "user:1", productB.ID, 1)
	require.NoError(t, err)
	assertDecimal(t, "60", cart.Subtotal, "subtotal")
	assertDecimal(t, "0", cart.DeliveryFee, "delivery_fee")
	assertDecimal(t, "4.80", cart.Tax, "tax")
	assertDecimal(t, "64.80", cart.Total, "total")

	// SAVE10: 10% of 60 = 6, afterDiscount 54, tax 4.32
	result, err := svc.ApplyCoupon(ctx, "user:1", "save10")
	require.NoError(t, err)
	require.True(t, result.Applied())

	cart = result.Cart
	assertDecimal(t, "6", cart.Discount, "discount")
	assertDecimal(t, "0", cart.DeliveryFee, "delivery_fee")
	assertDecimal(t, "4.32", cart.Tax, "tax")
	assertDecimal(t, "58.32", cart.Total, "total")
	require.NotNil(t, cart.AppliedCoupon)
	assert.Equal(t, "SAVE10", cart.AppliedCoupon.Code)
}

func TestCartService_RemoveCouponRecomputes(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user:1", productA.ID, 2)
	require.NoError(t, err)

	result, err := svc.ApplyCoupon(ctx, "user:1", "SAVE10")
	require.NoError(t, err)
	require.True(t, result.Applied())

	cart, err := svc.RemoveCoupon(ctx, "user:1")
	require.NoError(t, err)

	assert.Nil(t, cart.AppliedCoupon)
	assertDecimal(t, "0", cart.Discount, "discount")
	assertDecimal(t, "80", cart.Subtotal, "subtotal")
	// afterDiscount 80: free delivery, tax 6.40
	assertDecimal(t, "86.40", cart.Total, "total")
}

func TestCartService_ClearResetsEverything(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user:1", productA.ID, 3)
	require.NoError(t, err)
	result, err := svc.ApplyCoupon(ctx, "user:1", "SAVE10")
	require.NoError(t, err)
	require.True(t, result.Applied())

	cart, err := svc.Clear(ctx, "user:1")
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.AppliedCoupon)
	assert.Zero(t, cart.ItemCount)
	assertDecimal(t, "0", cart.Subtotal, "subtotal")
	assertDecimal(t, "0", cart.Discount, "discount")
	// Explicit reset bypasses the formula: no delivery fee on the empty cart
	assertDecimal(t, "0", cart.DeliveryFee, "delivery_fee")
	assertDecimal(t, "0", cart.Tax, "tax")
	assertDecimal(t, "0", cart.Total, "total")
}

func TestCartService_SnapshotSurvivesRestart(t *testing.T) {
	t.Parallel()

	svc, store := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user:1", productA.ID, 2)
	require.NoError(t, err)
	result, err := svc.ApplyCoupon(ctx, "user:1", "SAVE10")
	require.NoError(t, err)
	require.True(t, result.Applied())

	// A fresh service over the same store replays the persisted snapshot.
	catalog := catalogService.NewCatalogService(
		catalogRepo.NewMemory([]catalogModel.Product{productA, productB}),
	)
	restarted := NewCartService(
		cartRepo.NewCartRepository(store),
		catalog,
		couponRepo.NewCatalog(testCoupons()),
		nil,
	)

	cart, err := restarted.GetCart(ctx, "user:1")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	require.NotNil(t, cart.AppliedCoupon)
	assert.Equal(t, "SAVE10", cart.AppliedCoupon.Code)
	assertDecimal(t, "80", cart.Subtotal, "subtotal")
	assertDecimal(t, "8", cart.Discount, "discount")
}

func TestCartService_CorruptNamespaceFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	svc, store := newTestCartService(t)

	store.SetRaw("cart:user:1", []byte("{definitely not json"))

	cart, err := svc.GetCart(context.Background(), "user:1")
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assertDecimal(t, "0", cart.Total, "total")
}

func TestCartService_OwnersAreIsolated(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user:1", productA.ID, 1)
	require.NoError(t, err)

	other, err := svc.GetCart(ctx, "session:abc")
	require.NoError(t, err)

	assert.Empty(t, other.Items)
}
