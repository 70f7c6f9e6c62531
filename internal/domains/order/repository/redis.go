package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"autocart-backend/internal/domains/order/model"
	"autocart-backend/pkg/cache"
	"autocart-backend/pkg/logger"
)

const keyPrefix = "orders:user:"

// OrderRepository stores order history as one JSON document per user.
// History never expires.
type OrderRepository struct {
	store cache.Cache
}

func NewOrderRepository(store cache.Cache) *OrderRepository {
	return &OrderRepository{store: store}
}

// Get loads the history. Absent or undecodable entries yield an empty
// history rather than an error.
func (r *OrderRepository) Get(ctx context.Context, userID uuid.UUID) (*model.OrderState, error) {
	var state model.OrderState
	found, err := r.store.Get(ctx, keyPrefix+userID.String(), &state)
	if err != nil {
		logger.Warn("failed to decode order history, starting empty", map[string]interface{}{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return model.EmptyOrderState(), nil
	}
	if !found {
		return model.EmptyOrderState(), nil
	}
	if state.Orders == nil {
		state.Orders = []model.Order{}
	}
	return &state, nil
}

// Save writes the history back
func (r *OrderRepository) Save(ctx context.Context, userID uuid.UUID, state *model.OrderState) error {
	state.UpdatedAt = time.Now().UTC()
	if err := r.store.Set(ctx, keyPrefix+userID.String(), state, 0); err != nil {
		return fmt.Errorf("failed to save order history: %w", err)
	}
	return nil
}
