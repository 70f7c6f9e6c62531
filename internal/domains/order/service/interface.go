package service

import (
	"context"

	"github.com/google/uuid"

	"autocart-backend/internal/domains/order/model"
)

// ServiceInterface turns carts into orders and manages order history
type ServiceInterface interface {
	Checkout(ctx context.Context, userID uuid.UUID, owner string, req model.CheckoutRequest) (*model.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) (*model.OrderListResponse, error)
	GetOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*model.Order, error)
	CancelOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*model.Order, error)
}
