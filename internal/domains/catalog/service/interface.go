package service

import (
	"context"

	"autocart-backend/internal/domains/catalog/model"

	"github.com/google/uuid"
)

// ServiceInterface is the catalog read API the handlers and the cart depend on
type ServiceInterface interface {
	ListProducts(ctx context.Context, req model.ListRequest) ([]model.Product, int, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
}
