package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"autocart-backend/internal/domains/cart/model"
	repo "autocart-backend/internal/domains/cart/repository"
	catalogService "autocart-backend/internal/domains/catalog/service"
	couponRepo "autocart-backend/internal/domains/coupon/repository"
	"autocart-backend/internal/shared"
	"autocart-backend/internal/shared/utils"
	"autocart-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type CartService struct {
	repository repo.RepositoryInterface
	catalog    catalogService.ServiceInterface
	coupons    *couponRepo.Catalog
	calc       *Calculator

	// Serializes load -> mutate -> recompute -> persist. The totals are only
	// consistent when computed against the complete item list, so each
	// mutation is a critical section.
	mu sync.Mutex

	asynqClient *asynq.Client // optional, nil disables background cleanup
}

func NewCartService(
	r repo.RepositoryInterface,
	catalog catalogService.ServiceInterface,
	coupons *couponRepo.Catalog,
	asynqClient *asynq.Client,
) ServiceInterface {
	if coupons == nil {
		panic("coupon catalog is required")
	}
	return &CartService{
		repository:  r,
		catalog:     catalog,
		coupons:     coupons,
		calc:        NewCalculator(),
		asynqClient: asynqClient,
	}
}

func (s *CartService) GetCart(ctx context.Context, owner string) (*model.CartResponse, error) {
	state, err := s.repository.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return state.ToResponse(), nil
}

func (s *CartService) AddItem(ctx context.Context, owner string, productID uuid.UUID, quantity int) (*model.CartResponse, error) {
	// Step 1: Normalize and bound the quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 || quantity > model.MaxQuantityPerItem {
		return nil, model.ErrInvalidQuantity
	}

	// Step 2: Resolve the product; its snapshot is denormalized into the item
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrProductNotFound, productID)
	}
	if !product.InStock() {
		return nil, model.ErrOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repository.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	// Step 3: Merge into the existing line item or append a new one
	if idx := state.FindByProduct(productID); idx >= 0 {
		merged := state.Items[idx].Quantity + quantity
		if merged > model.MaxQuantityPerItem {
			return nil, fmt.Errorf("maximum %d per product (current: %d, adding: %d)",
				model.MaxQuantityPerItem, state.Items[idx].Quantity, quantity)
		}
		state.Items[idx].Quantity = merged
	} else {
		state.Items = append(state.Items, model.LineItem{
			ID:        uuid.New(),
			ProductID: productID,
			Product:   *product,
			Quantity:  quantity,
			AddedAt:   time.Now().UTC(),
		})
	}

	// Step 4: Recompute totals and write the snapshot through
	if err := s.commit(ctx, owner, state); err != nil {
		return nil, err
	}

	s.scheduleCleanup(owner)

	return state.ToResponse(), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, owner string, itemID uuid.UUID, quantity int) (*model.CartResponse, error) {
	// Non-positive quantity means removal, not an error
	if quantity <= 0 {
		return s.RemoveItem(ctx, owner, itemID)
	}
	if quantity > model.MaxQuantityPerItem {
		return nil, model.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repository.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	// Absent line item is a no-op, not an error
	if idx := state.FindByID(itemID); idx >= 0 {
		state.Items[idx].Quantity = quantity
		if err := s.commit(ctx, owner, state); err != nil {
			return nil, err
		}
	}

	return state.ToResponse(), nil
}

func (s *CartService) RemoveItem(ctx context.Context, owner string, itemID uuid.UUID) (*model.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repository.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if idx := state.FindByID(itemID); idx >= 0 {
		state.Items = append(state.Items[:idx], state.Items[idx+1:]...)
		if err := s.commit(ctx, owner, state); err != nil {
			return nil, err
		}
	}

	return state.ToResponse(), nil
}

func (s *CartService) Clear(ctx context.Context, owner string) (*model.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Hard reset: the zero snapshot bypasses the pricing formula entirely
	state := model.EmptyCartState()
	state.UpdatedAt = time.Now().UTC()

	if err := s.repository.Save(ctx, owner, state); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	return state.ToResponse(), nil
}

func (s *CartService) ApplyCoupon(ctx context.Context, owner string, code string) (*model.ApplyCouponResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repository.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	// Step 1: Resolve the code (case-insensitive)
	applied := s.coupons.Lookup(code)
	if applied == nil {
		return &model.ApplyCouponResult{
			Status: model.CouponNotFound,
			Reason: "coupon code not found",
			Cart:   state.ToResponse(),
		}, nil
	}

	// Step 2: Validity window
	if applied.IsExpired(time.Now()) {
		return &model.ApplyCouponResult{
			Status: model.CouponExpired,
			Reason: fmt.Sprintf("coupon expired on %s", applied.ValidUntil.Format("2006-01-02")),
			Cart:   state.ToResponse(),
		}, nil
	}

	// Step 3: Eligibility floor against the current subtotal
	if !applied.EligibleFor(state.Totals.Subtotal) {
		return &model.ApplyCouponResult{
			Status: model.CouponBelowMinimum,
			Reason: fmt.Sprintf("minimum order value is %s (current: %s)",
				applied.MinOrderValue.StringFixed(2), state.Totals.Subtotal.StringFixed(2)),
			Cart: state.ToResponse(),
		}, nil
	}

	// Step 4: Apply and recompute
	state.AppliedCoupon = applied
	if err := s.commit(ctx, owner, state); err != nil {
		return nil, err
	}

	logger.Info("Coupon applied", map[string]interface{}{
		"owner":    owner,
		"code":     applied.Code,
		"discount": state.Totals.Discount.String(),
	})

	return &model.ApplyCouponResult{
		Status: model.CouponApplied,
		Cart:   state.ToResponse(),
	}, nil
}

func (s *CartService) RemoveCoupon(ctx context.Context, owner string) (*model.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repository.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	state.AppliedCoupon = nil
	if err := s.commit(ctx, owner, state); err != nil {
		return nil, err
	}

	return state.ToResponse(), nil
}

// commit recomputes the derived totals from the full item list and persists
// the snapshot. Callers must hold the mutex.
func (s *CartService) commit(ctx context.Context, owner string, state *model.CartState) error {
	state.Totals = s.calc.Totals(state.Items, state.AppliedCoupon)
	state.UpdatedAt = time.Now().UTC()

	if err := s.repository.Save(ctx, owner, state); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// scheduleCleanup enqueues a delayed task that drops an anonymous session
// cart if it is never checked out. Fire-and-forget: enqueue failures never
// fail the mutation that triggered them.
func (s *CartService) scheduleCleanup(owner string) {
	if s.asynqClient == nil || !strings.HasPrefix(owner, "session:") {
		return
	}

	task, err := utils.NewTask(shared.TypeCleanupAbandonedCart, model.CleanupAbandonedCartPayload{Owner: owner})
	if err != nil {
		logger.Error("Failed to build cart cleanup task", err)
		return
	}

	_, err = s.asynqClient.Enqueue(task,
		asynq.ProcessIn(model.CartTTLDays*24*time.Hour),
		asynq.TaskID(shared.TypeCleanupAbandonedCart+":"+owner),
		asynq.Queue("low"),
	)
	if err != nil && !errors.Is(err, asynq.ErrDuplicateTask) {
		logger.Error("Failed to enqueue cart cleanup task", err)
	}
}
