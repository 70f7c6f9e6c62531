package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"autocart-backend/internal/domains/account/model"
	"autocart-backend/pkg/cache"
	"autocart-backend/pkg/logger"
)

const (
	statePrefix = "account:user:"
	emailPrefix = "account:email:"
)

// RepositoryInterface persists account state in the key-value store.
// Lookups by email go through a secondary index key.
type RepositoryInterface interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*model.AccountState, error)
	GetByEmail(ctx context.Context, email string) (*model.AccountState, error)
	Save(ctx context.Context, state *model.AccountState) error
}

type AccountRepository struct {
	store cache.Cache
}

func NewAccountRepository(store cache.Cache) *AccountRepository {
	return &AccountRepository{store: store}
}

// GetByID loads the account state, or nil when the account does not exist.
// A corrupt entry is treated as absent rather than failing the request.
func (r *AccountRepository) GetByID(ctx context.Context, userID uuid.UUID) (*model.AccountState, error) {
	var state model.AccountState
	found, err := r.store.Get(ctx, statePrefix+userID.String(), &state)
	if err != nil {
		logger.Warn("failed to decode account state, treating as absent", map[string]interface{}{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, nil
	}
	if !found {
		return nil, nil
	}
	return &state, nil
}

// GetByEmail resolves the email index and loads the account, or nil when
// no account is registered under the email.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*model.AccountState, error) {
	var userID uuid.UUID
	found, err := r.store.Get(ctx, emailKey(email), &userID)
	if err != nil || !found {
		return nil, nil
	}
	return r.GetByID(ctx, userID)
}

// Save writes the state and its email index entry. Accounts never expire.
func (r *AccountRepository) Save(ctx context.Context, state *model.AccountState) error {
	state.UpdatedAt = time.Now().UTC()
	if err := r.store.Set(ctx, statePrefix+state.User.ID.String(), state, 0); err != nil {
		return fmt.Errorf("failed to save account state: %w", err)
	}
	if err := r.store.Set(ctx, emailKey(state.User.Email), state.User.ID, 0); err != nil {
		return fmt.Errorf("failed to save account email index: %w", err)
	}
	return nil
}

func emailKey(email string) string {
	return emailPrefix + strings.ToLower(strings.TrimSpace(email))
}
