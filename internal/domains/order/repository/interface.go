package repository

import (
	"context"

	"github.com/google/uuid"

	"autocart-backend/internal/domains/order/model"
)

// RepositoryInterface persists per-user order history
type RepositoryInterface interface {
	Get(ctx context.Context, userID uuid.UUID) (*model.OrderState, error)
	Save(ctx context.Context, userID uuid.UUID, state *model.OrderState) error
}
