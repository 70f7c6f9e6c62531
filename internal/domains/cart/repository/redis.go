package repository

import (
	"context"
	"fmt"
	"time"

	"autocart-backend/internal/domains/cart/model"
	"autocart-backend/pkg/cache"
	"autocart-backend/pkg/logger"
)

const keyPrefix = "cart:"

// CartRepository stores one JSON snapshot per owner in the key-value store.
type CartRepository struct {
	store cache.Cache
	ttl   time.Duration
}

func NewCartRepository(store cache.Cache) RepositoryInterface {
	return &CartRepository{
		store: store,
		ttl:   model.CartTTLDays * 24 * time.Hour,
	}
}

func (r *CartRepository) Get(ctx context.Context, owner string) (*model.CartState, error) {
	var state model.CartState

	found, err := r.store.Get(ctx, keyPrefix+owner, &state)
	if err != nil {
		// A namespace we cannot decode is treated as empty, never fatal.
		logger.Warn("Unreadable cart namespace, starting empty", map[string]interface{}{
			"owner": owner,
			"error": err.Error(),
		})
		return model.EmptyCartState(), nil
	}
	if !found {
		return model.EmptyCartState(), nil
	}

	if state.Items == nil {
		state.Items = []model.LineItem{}
	}
	return &state, nil
}

func (r *CartRepository) Save(ctx context.Context, owner string, state *model.CartState) error {
	if err := r.store.Set(ctx, keyPrefix+owner, state, r.ttl); err != nil {
		return fmt.Errorf("save cart for %s: %w", owner, err)
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, owner string) error {
	if err := r.store.Delete(ctx, keyPrefix+owner); err != nil {
		return fmt.Errorf("delete cart for %s: %w", owner, err)
	}
	return nil
}
