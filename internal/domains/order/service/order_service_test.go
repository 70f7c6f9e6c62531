package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountModel "autocart-backend/internal/domains/account/model"
	accountRepo "autocart-backend/internal/domains/account/repository"
	accountService "autocart-backend/internal/domains/account/service"
	cartRepo "autocart-backend/internal/domains/cart/repository"
	cartService "autocart-backend/internal/domains/cart/service"
	catalogModel "autocart-backend/internal/domains/catalog/model"
	catalogRepo "autocart-backend/internal/domains/catalog/repository"
	catalogService "autocart-backend/internal/domains/catalog/service"
	couponModel "autocart-backend/internal/domains/coupon/model"
	couponRepo "autocart-backend/internal/domains/coupon/repository"
	"autocart-backend/internal/domains/order/model"
	"autocart-backend/internal/domains/order/repository"
	"autocart-backend/pkg/cache"
	"autocart-backend/pkg/jwt"
)

var checkoutProduct = catalogModel.Product{
	ID:         uuid.MustParse("a0e1b2c3-7777-4000-8000-000000000001"),
	Name:       "Brake Pad Set",
	Price:      decimal.RequireFromString("30"),
	CategoryID: "test",
	Rating:     decimal.RequireFromString("4.6"),
	Stock:      20,
}

type orderFixture struct {
	orders   *OrderService
	carts    cartService.ServiceInterface
	accounts accountService.ServiceInterface
	userID   uuid.UUID
	owner    string
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	store := cache.NewMemory()
	catalog := catalogService.NewCatalogService(
		catalogRepo.NewMemory([]catalogModel.Product{checkoutProduct}),
	)
	carts := cartService.NewCartService(
		cartRepo.NewCartRepository(store),
		catalog,
		couponRepo.NewCatalog([]couponModel.Coupon{}),
		nil,
	)
	accounts := accountService.NewAccountService(
		accountRepo.NewAccountRepository(store),
		jwt.NewManager("test-secret", time.Hour, 24*time.Hour),
	)
	orders := NewOrderService(repository.NewOrderRepository(store), carts, accounts, nil)

	auth, err := accounts.Register(context.Background(), accountModel.RegisterRequest{
		Name:     "Alex Carter",
		Email:    "alex@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	return &orderFixture{
		orders:   orders,
		carts:    carts,
		accounts: accounts,
		userID:   auth.User.ID,
		owner:    "user:" + auth.User.ID.String(),
	}
}

func (f *orderFixture) addAddress(t *testing.T) *accountModel.Address {
	t.Helper()
	addr, err := f.accounts.AddAddress(context.Background(), f.userID, accountModel.CreateAddressRequest{
		RecipientName: "Alex Carter",
		Phone:         "555-0100",
		AddressLine1:  "12 Main St",
		City:          "Springfield",
		PostalCode:    "62704",
		Country:       "US",
	})
	require.NoError(t, err)
	return addr
}

func (f *orderFixture) fillCart(t *testing.T, quantity int) {
	t.Helper()
	_, err := f.carts.AddItem(context.Background(), f.owner, checkoutProduct.ID, quantity)
	require.NoError(t, err)
}

func TestCheckoutEmptyCart(t *testing.T) {
	t.Parallel()
	f := newOrderFixture(t)
	f.addAddress(t)

	_, err := f.orders.Checkout(context.Background(), f.userID, f.owner, model.CheckoutRequest{})
	assert.ErrorIs(t, err, model.ErrEmptyCart)
}

func TestCheckoutWithoutAddress(t *testing.T) {
	t.Parallel()
	f := newOrderFixture(t)
	f.fillCart(t, 1)

	_, err := f.orders.Checkout(context.Background(), f.userID, f.owner, model.CheckoutRequest{})
	assert.ErrorIs(t, err, model.ErrNoAddress)
}

func TestCheckoutFreezesCartAndClearsIt(t *testing.T) {
	t.Parallel()
	f := newOrderFixture(t)
	ctx := context.Background()
	f.addAddress(t)
	f.fillCart(t, 2)

	order, err := f.orders.Checkout(ctx, f.userID, f.owner, model.CheckoutRequest{})
	require.NoError(t, err)

	// 2 x 30 = 60, free delivery, 8% tax
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("60")), "subtotal %s", order.Subtotal)
	assert.True(t, order.DeliveryFee.IsZero())
	assert.True(t, order.Tax.Equal(decimal.RequireFromString("4.8")), "tax %s", order.Tax)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("64.8")), "total %s", order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "Brake Pad Set", order.Items[0].Name)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.Equal(t, model.PaymentCard, order.PaymentMethod)
	require.Len(t, order.StatusHistory, 1)
	assert.NotEmpty(t, order.Number)

	cart, err := f.carts.GetCart(ctx, f.owner)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())
}

func TestOrderSurvivesLaterCartActivity(t *testing.T) {
	t.Parallel()
	f := newOrderFixture(t)
	ctx := context.Background()
	f.addAddress(t)
	f.fillCart(t, 1)

	order, err := f.orders.Checkout(ctx, f.userID, f.owner, model.CheckoutRequest{})
	require.NoError(t, err)

	f.fillCart(t, 5)

	reloaded, err := f.orders.GetOrder(ctx, f.userID, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, 1, reloaded.Items[0].Quantity)
	assert.True(t, reloaded.Total.Equal(order.Total))
}

func TestListOrdersNewestFirst(t *testing.T) {
	t.Parallel()
	f := newOrderFixture(t)
	ctx := context.Background()
	f.addAddress(t)

	f.fillCart(t, 1)
	first, err := f.orders.Checkout(ctx, f.userID, f.owner, model.CheckoutRequest{})
	require.NoError(t, err)

	f.fillCart(t, 2)
	second, err := f.orders.Checkout(ctx, f.userID, f.owner, model.CheckoutRequest{})
	require.NoError(t, err)

	list, err := f.orders.ListOrders(ctx, f.userID)
	require.NoError(t, err)
	require.Equal(t, 2, list.Count)
	assert.Equal(t, second.ID, list.Orders[0].ID)
	assert.Equal(t, first.ID, list.Orders[1].ID)
}

func TestCheckoutWithExplicitAddress(t *testing.T) {
	t.Parallel()
	f := newOrderFixture(t)
	ctx := context.Background()
	f.addAddress(t)
	other := f.addAddress(t)
	f.fillCart(t, 1)

	order, err := f.orders.Checkout(ctx, f.userID, f.owner, model.CheckoutRequest{AddressID: other.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, other.ID, order.ShippingAddress.ID)
}

func TestCheckoutWithUnknownAddress(t *testing.T) {
	t.Parallel()
	f := newOrderFixture(t)
	f.addAddress(t)
	f.fillCart(t, 1)

	_, err := f.orders.Checkout(context.Background(), f.userID, f.owner, model.CheckoutRequest{AddressID: uuid.NewString()})
	assert.ErrorIs(t, err, model.ErrNoAddress)
}

func TestCancelOrder(t *testing.T) {
	t.Parallel()
	f := newOrderFixture(t)
	ctx := context.Background()
	f.addAddress(t)
	f.fillCart(t, 1)

	order, err := f.orders.Checkout(ctx, f.userID, f.owner, model.CheckoutRequest{})
	require.NoError(t, err)

	cancelled, err := f.orders.CancelOrder(ctx, f.userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)
	require.Len(t, cancelled.StatusHistory, 2)
	assert.Equal(t, model.StatusCancelled, cancelled.StatusHistory[1].Status)

	_, err = f.orders.CancelOrder(ctx, f.userID, order.ID)
	assert.ErrorIs(t, err, model.ErrAlreadyCancelled)
}

func TestGetUnknownOrder(t *testing.T) {
	t.Parallel()
	f := newOrderFixture(t)

	_, err := f.orders.GetOrder(context.Background(), f.userID, uuid.New())
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}
