package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	catalogModel "autocart-backend/internal/domains/catalog/model"
	catalogService "autocart-backend/internal/domains/catalog/service"
	"autocart-backend/internal/domains/wishlist/model"
	repo "autocart-backend/internal/domains/wishlist/repository"

	"github.com/google/uuid"
)

// ServiceInterface is the wishlist container: a membership set of saved
// products, independent of the cart.
type ServiceInterface interface {
	GetWishlist(ctx context.Context, owner string) (*model.WishlistResponse, error)
	Add(ctx context.Context, owner string, productID uuid.UUID) (*model.WishlistResponse, error)
	Remove(ctx context.Context, owner string, productID uuid.UUID) (*model.WishlistResponse, error)
	Contains(ctx context.Context, owner string, productID uuid.UUID) (bool, error)
	Toggle(ctx context.Context, owner string, productID uuid.UUID) (*model.WishlistResponse, error)
	Clear(ctx context.Context, owner string) (*model.WishlistResponse, error)
}

type WishlistService struct {
	repository repo.RepositoryInterface
	catalog    catalogService.ServiceInterface

	// One mutation at a time: Toggle's check-then-act must not interleave
	// with another mutation on the same set.
	mu sync.Mutex
}

func NewWishlistService(r repo.RepositoryInterface, catalog catalogService.ServiceInterface) ServiceInterface {
	return &WishlistService{repository: r, catalog: catalog}
}

func (s *WishlistService) GetWishlist(ctx context.Context, owner string) (*model.WishlistResponse, error) {
	state, err := s.repository.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	return state.ToResponse(), nil
}

func (s *WishlistService) Add(ctx context.Context, owner string, productID uuid.UUID) (*model.WishlistResponse, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", catalogModel.ErrProductNotFound, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.add(ctx, owner, product)
}

// add appends the product unless it is already saved. Idempotent. Callers
// must hold the mutex.
func (s *WishlistService) add(ctx context.Context, owner string, product *catalogModel.Product) (*model.WishlistResponse, error) {
	state, err := s.repository.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	if state.FindByProduct(product.ID) >= 0 {
		return state.ToResponse(), nil
	}

	state.Items = append(state.Items, model.WishlistItem{
		ID:        uuid.New(),
		ProductID: product.ID,
		Product:   *product,
		AddedAt:   time.Now().UTC(),
	})
	if err := s.save(ctx, owner, state); err != nil {
		return nil, err
	}

	return state.ToResponse(), nil
}

func (s *WishlistService) Remove(ctx context.Context, owner string, productID uuid.UUID) (*model.WishlistResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(ctx, owner, productID)
}

func (s *WishlistService) Contains(ctx context.Context, owner string, productID uuid.UUID) (bool, error) {
	state, err := s.repository.Get(ctx, owner)
	if err != nil {
		return false, fmt.Errorf("failed to get wishlist: %w", err)
	}
	return state.FindByProduct(productID) >= 0, nil
}

func (s *WishlistService) Toggle(ctx context.Context, owner string, productID uuid.UUID) (*model.WishlistResponse, error) {
	// Resolve the product before taking the lock; the check-then-act on the
	// set itself must be a single critical section.
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", catalogModel.ErrProductNotFound, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if state, err := s.repository.Get(ctx, owner); err == nil && state.FindByProduct(productID) >= 0 {
		return s.remove(ctx, owner, productID)
	}

	return s.add(ctx, owner, product)
}

func (s *WishlistService) Clear(ctx context.Context, owner string) (*model.WishlistResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := model.EmptyWishlistState()
	state.UpdatedAt = time.Now().UTC()

	if err := s.repository.Save(ctx, owner, state); err != nil {
		return nil, fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return state.ToResponse(), nil
}

// remove deletes the entry when present; absence is a no-op. Callers must
// hold the mutex.
func (s *WishlistService) remove(ctx context.Context, owner string, productID uuid.UUID) (*model.WishlistResponse, error) {
	state, err := s.repository.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	if idx := state.FindByProduct(productID); idx >= 0 {
		state.Items = append(state.Items[:idx], state.Items[idx+1:]...)
		if err := s.save(ctx, owner, state); err != nil {
			return nil, err
		}
	}

	return state.ToResponse(), nil
}

func (s *WishlistService) save(ctx context.Context, owner string, state *model.WishlistState) error {
	state.UpdatedAt = time.Now().UTC()
	if err := s.repository.Save(ctx, owner, state); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}
