package repository

import (
	"context"
	"fmt"
	"time"

	"autocart-backend/internal/domains/wishlist/model"
	"autocart-backend/pkg/cache"
	"autocart-backend/pkg/logger"
)

const keyPrefix = "wishlist:"

// RepositoryInterface persists the wishlist snapshot per owner namespace
type RepositoryInterface interface {
	Get(ctx context.Context, owner string) (*model.WishlistState, error)
	Save(ctx context.Context, owner string, state *model.WishlistState) error
	Delete(ctx context.Context, owner string) error
}

// WishlistRepository stores one JSON snapshot per owner in the key-value store
type WishlistRepository struct {
	store cache.Cache
	ttl   time.Duration
}

func NewWishlistRepository(store cache.Cache) RepositoryInterface {
	return &WishlistRepository{
		store: store,
		ttl:   0, // wishlists do not expire
	}
}

func (r *WishlistRepository) Get(ctx context.Context, owner string) (*model.WishlistState, error) {
	var state model.WishlistState

	found, err := r.store.Get(ctx, keyPrefix+owner, &state)
	if err != nil {
		logger.Warn("Unreadable wishlist namespace, starting empty", map[string]interface{}{
			"owner": owner,
			"error": err.Error(),
		})
		return model.EmptyWishlistState(), nil
	}
	if !found {
		return model.EmptyWishlistState(), nil
	}

	if state.Items == nil {
		state.Items = []model.WishlistItem{}
	}
	return &state, nil
}

func (r *WishlistRepository) Save(ctx context.Context, owner string, state *model.WishlistState) error {
	if err := r.store.Set(ctx, keyPrefix+owner, state, r.ttl); err != nil {
		return fmt.Errorf("save wishlist for %s: %w", owner, err)
	}
	return nil
}

func (r *WishlistRepository) Delete(ctx context.Context, owner string) error {
	if err := r.store.Delete(ctx, keyPrefix+owner); err != nil {
		return fmt.Errorf("delete wishlist for %s: %w", owner, err)
	}
	return nil
}
