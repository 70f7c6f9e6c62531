package repository

import (
	"context"

	"autocart-backend/internal/domains/catalog/model"

	"github.com/google/uuid"
)

// RepositoryInterface is the read-only product store
type RepositoryInterface interface {
	// List returns products matching the filters plus the total match count.
	List(ctx context.Context, req model.ListRequest) ([]model.Product, int, error)

	// GetByID returns nil when the product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
}
