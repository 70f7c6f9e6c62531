package service

import (
	"context"

	"autocart-backend/internal/domains/cart/model"

	"github.com/google/uuid"
)

// ServiceInterface is the cart container: the sole mutator of a cart's items
// and applied coupon. Every mutation recomputes the derived totals and writes
// the snapshot through to the store before returning.
type ServiceInterface interface {
	GetCart(ctx context.Context, owner string) (*model.CartResponse, error)
	AddItem(ctx context.Context, owner string, productID uuid.UUID, quantity int) (*model.CartResponse, error)
	UpdateQuantity(ctx context.Context, owner string, itemID uuid.UUID, quantity int) (*model.CartResponse, error)
	RemoveItem(ctx context.Context, owner string, itemID uuid.UUID) (*model.CartResponse, error)
	Clear(ctx context.Context, owner string) (*model.CartResponse, error)
	ApplyCoupon(ctx context.Context, owner string, code string) (*model.ApplyCouponResult, error)
	RemoveCoupon(ctx context.Context, owner string) (*model.CartResponse, error)
}
