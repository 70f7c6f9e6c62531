package service

import (
	"context"
	"fmt"

	"autocart-backend/internal/domains/catalog/model"
	repo "autocart-backend/internal/domains/catalog/repository"

	"github.com/google/uuid"
)

type CatalogService struct {
	repository repo.RepositoryInterface
}

func NewCatalogService(r repo.RepositoryInterface) ServiceInterface {
	return &CatalogService{repository: r}
}

func (s *CatalogService) ListProducts(ctx context.Context, req model.ListRequest) ([]model.Product, int, error) {
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}
	req.Normalize()

	products, total, err := s.repository.List(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}
