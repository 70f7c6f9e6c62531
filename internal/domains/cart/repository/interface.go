package repository

import (
	"context"

	"autocart-backend/internal/domains/cart/model"
)

// RepositoryInterface persists the full cart snapshot per owner namespace.
// Get never fails on an absent or unreadable namespace: that decodes to the
// empty cart state.
type RepositoryInterface interface {
	Get(ctx context.Context, owner string) (*model.CartState, error)
	Save(ctx context.Context, owner string, state *model.CartState) error
	Delete(ctx context.Context, owner string) error
}
