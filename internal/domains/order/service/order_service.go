package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	accountModel "autocart-backend/internal/domains/account/model"
	accountService "autocart-backend/internal/domains/account/service"
	cartService "autocart-backend/internal/domains/cart/service"
	"autocart-backend/internal/domains/order/model"
	"autocart-backend/internal/domains/order/repository"
	"autocart-backend/internal/shared"
	"autocart-backend/internal/shared/utils"
	"autocart-backend/pkg/logger"
)

// OrderService places orders from cart snapshots. Checkout freezes the cart
// lines and totals so the order is immune to later catalog or cart changes.
type OrderService struct {
	repository repository.RepositoryInterface
	carts      cartService.ServiceInterface
	accounts   accountService.ServiceInterface

	// asynqClient may be nil; confirmation emails are then skipped
	asynqClient *asynq.Client

	mu sync.Mutex
}

func NewOrderService(
	repo repository.RepositoryInterface,
	carts cartService.ServiceInterface,
	accounts accountService.ServiceInterface,
	asynqClient *asynq.Client,
) *OrderService {
	return &OrderService{
		repository:  repo,
		carts:       carts,
		accounts:    accounts,
		asynqClient: asynqClient,
	}
}

// Checkout places an order from the owner's current cart
func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID, owner string, req model.CheckoutRequest) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Step 1: The cart must have at least one item
	cart, err := s.carts.GetCart(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	// Step 2: Resolve the shipping address
	address, err := s.resolveAddress(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	// Step 3: Freeze the snapshot
	method := req.PaymentMethod
	if method == "" {
		method = model.PaymentCard
	}
	now := time.Now().UTC()
	order := model.Order{
		ID:              uuid.New(),
		Number:          newOrderNumber(),
		UserID:          userID,
		Items:           model.FreezeItems(cart.Items),
		Subtotal:        cart.Subtotal,
		Discount:        cart.Discount,
		DeliveryFee:     cart.DeliveryFee,
		Tax:             cart.Tax,
		Total:           cart.Total,
		PaymentMethod:   method,
		ShippingAddress: *address,
		CreatedAt:       now,
	}
	order.SetStatus(model.StatusPending, now)
	if cart.AppliedCoupon != nil {
		order.CouponCode = cart.AppliedCoupon.Code
	}

	// Step 4: Persist, newest first
	state, err := s.repository.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	state.Orders = append([]model.Order{order}, state.Orders...)
	if err := s.repository.Save(ctx, userID, state); err != nil {
		return nil, err
	}

	// Step 5: Empty the cart now that the order owns the items
	if _, err := s.carts.Clear(ctx, owner); err != nil {
		logger.Error("failed to clear cart after checkout", err)
	}

	s.enqueueConfirmation(ctx, &order)

	logger.Info("order placed", map[string]interface{}{
		"order_number": order.Number,
		"user_id":      userID.String(),
		"total":        order.Total.String(),
	})
	return &order, nil
}

// ListOrders returns the user's order history, newest first
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) (*model.OrderListResponse, error) {
	state, err := s.repository.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.OrderListResponse{Orders: state.Orders, Count: len(state.Orders)}, nil
}

// GetOrder returns one order from the history
func (s *OrderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*model.Order, error) {
	state, err := s.repository.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := state.Find(orderID)
	if idx < 0 {
		return nil, model.ErrOrderNotFound
	}
	order := state.Orders[idx]
	return &order, nil
}

// CancelOrder cancels an order that has not shipped. Pending and confirmed
// orders can be cancelled; delivered ones cannot.
func (s *OrderService) CancelOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repository.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := state.Find(orderID)
	if idx < 0 {
		return nil, model.ErrOrderNotFound
	}

	switch state.Orders[idx].Status {
	case model.StatusCancelled:
		return nil, model.ErrAlreadyCancelled
	case model.StatusDelivered:
		return nil, model.ErrNotCancellable
	}

	state.Orders[idx].SetStatus(model.StatusCancelled, time.Now().UTC())
	if err := s.repository.Save(ctx, userID, state); err != nil {
		return nil, err
	}
	order := state.Orders[idx]
	return &order, nil
}

func (s *OrderService) resolveAddress(ctx context.Context, userID uuid.UUID, req model.CheckoutRequest) (*accountModel.Address, error) {
	if addressID := req.ParsedAddressID(); addressID != uuid.Nil {
		list, err := s.accounts.ListAddresses(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load addresses: %w", err)
		}
		for i := range list.Addresses {
			if list.Addresses[i].ID == addressID {
				return &list.Addresses[i], nil
			}
		}
		return nil, model.ErrNoAddress
	}

	address, err := s.accounts.DefaultAddress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load default address: %w", err)
	}
	if address == nil {
		return nil, model.ErrNoAddress
	}
	return address, nil
}

// enqueueConfirmation is fire and forget; a lost email never fails checkout
func (s *OrderService) enqueueConfirmation(ctx context.Context, order *model.Order) {
	if s.asynqClient == nil {
		return
	}

	email := ""
	if profile, err := s.accounts.GetProfile(ctx, order.UserID); err == nil {
		email = profile.Email
	}

	task, err := utils.NewTask(shared.TypeSendOrderConfirmation, model.SendOrderConfirmationPayload{
		UserID:      order.UserID,
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Email:       email,
	})
	if err != nil {
		logger.Error("failed to build order confirmation task", err)
		return
	}
	if _, err := s.asynqClient.EnqueueContext(ctx, task, asynq.Queue("default"), asynq.MaxRetry(5)); err != nil {
		logger.Error("failed to enqueue order confirmation", err)
	}
}

func newOrderNumber() string {
	return fmt.Sprintf("AC-%d", time.Now().UTC().UnixMilli())
}
