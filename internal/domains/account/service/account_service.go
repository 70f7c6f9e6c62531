package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"autocart-backend/internal/domains/account/model"
	"autocart-backend/internal/domains/account/repository"
	"autocart-backend/pkg/jwt"
	"autocart-backend/pkg/logger"
)

// AccountService implements authentication and the address book on top of
// the key-value account namespace. Mutations on a single account are
// serialized by the mutex so concurrent edits never lose writes.
type AccountService struct {
	repository repository.RepositoryInterface
	tokens     *jwt.Manager
	mu         sync.Mutex
}

func NewAccountService(repo repository.RepositoryInterface, tokens *jwt.Manager) *AccountService {
	return &AccountService{
		repository: repo,
		tokens:     tokens,
	}
}

// Register creates an account, hashes the password, and issues a token pair
func (s *AccountService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Step 1: Reject duplicate registrations
	existing, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, model.ErrEmailTaken
	}

	// Step 2: Hash the password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Persist the new account with an empty address book
	state := &model.AccountState{
		User: model.User{
			ID:           uuid.New(),
			Email:        email,
			Name:         req.Name,
			Phone:        req.Phone,
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		},
		Addresses: []model.Address{},
	}
	if err := s.repository.Save(ctx, state); err != nil {
		return nil, err
	}

	logger.Info("account registered", map[string]interface{}{
		"user_id": state.User.ID.String(),
	})

	return s.authResponse(state.User)
}

// Login verifies credentials and issues a fresh token pair
func (s *AccountService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	state, err := s.repository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if state == nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(state.User.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.authResponse(state.User)
}

// Logout ends the session. Tokens are stateless so the client discards them;
// the stored address book is cleared along with the session.
func (s *AccountService) Logout(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	state.Addresses = []model.Address{}
	if err := s.repository.Save(ctx, state); err != nil {
		return err
	}

	logger.Info("account logged out", map[string]interface{}{
		"user_id": userID.String(),
	})
	return nil
}

// GetProfile returns the stored profile
func (s *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	state, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := state.User.ToResponse()
	return &resp, nil
}

// UpdateProfile applies the non-nil fields and persists the result
func (s *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.UserResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		state.User.Name = *req.Name
	}
	if req.Phone != nil {
		state.User.Phone = *req.Phone
	}

	if err := s.repository.Save(ctx, state); err != nil {
		return nil, err
	}
	resp := state.User.ToResponse()
	return &resp, nil
}

// ListAddresses returns the address book
func (s *AccountService) ListAddresses(ctx context.Context, userID uuid.UUID) (*model.AddressListResponse, error) {
	state, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.AddressListResponse{
		Addresses: state.Addresses,
		Count:     len(state.Addresses),
	}, nil
}

// AddAddress appends an address. The first address ever added becomes the
// default; an address marked default demotes every other one.
func (s *AccountService) AddAddress(ctx context.Context, userID uuid.UUID, req model.CreateAddressRequest) (*model.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	addrType := req.Type
	if addrType == "" {
		addrType = model.AddressTypeHome
	}

	address := model.Address{
		ID:            uuid.New(),
		OwnerID:       userID,
		RecipientName: req.RecipientName,
		Phone:         req.Phone,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		IsDefault:     req.IsDefault || len(state.Addresses) == 0,
		Type:          addrType,
	}

	if address.IsDefault {
		demoteAll(state.Addresses)
	}
	state.Addresses = append(state.Addresses, address)

	if err := s.repository.Save(ctx, state); err != nil {
		return nil, err
	}
	return &address, nil
}

// UpdateAddress applies the non-nil fields. Promoting an address to default
// demotes every other one; an explicit demote of the current default leaves
// the book with no default until one is promoted.
func (s *AccountService) UpdateAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID, req model.UpdateAddressRequest) (*model.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := state.FindAddress(addressID)
	if idx < 0 {
		return nil, model.ErrAddressNotFound
	}

	addr := &state.Addresses[idx]
	if req.RecipientName != nil {
		addr.RecipientName = *req.RecipientName
	}
	if req.Phone != nil {
		addr.Phone = *req.Phone
	}
	if req.AddressLine1 != nil {
		addr.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		addr.AddressLine2 = *req.AddressLine2
	}
	if req.City != nil {
		addr.City = *req.City
	}
	if req.State != nil {
		addr.State = *req.State
	}
	if req.PostalCode != nil {
		addr.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		addr.Country = *req.Country
	}
	if req.Type != nil {
		addr.Type = *req.Type
	}
	if req.IsDefault != nil {
		if *req.IsDefault {
			demoteAll(state.Addresses)
		}
		addr.IsDefault = *req.IsDefault
	}

	if err := s.repository.Save(ctx, state); err != nil {
		return nil, err
	}
	result := *addr
	return &result, nil
}

// DeleteAddress removes an address. Deleting the default promotes the first
// remaining address so a non-empty book always has a default.
func (s *AccountService) DeleteAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	idx := state.FindAddress(addressID)
	if idx < 0 {
		return model.ErrAddressNotFound
	}

	wasDefault := state.Addresses[idx].IsDefault
	state.Addresses = append(state.Addresses[:idx], state.Addresses[idx+1:]...)

	if wasDefault && len(state.Addresses) > 0 {
		state.Addresses[0].IsDefault = true
	}

	return s.repository.Save(ctx, state)
}

// SetDefaultAddress promotes the address and demotes all others
func (s *AccountService) SetDefaultAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) (*model.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := state.FindAddress(addressID)
	if idx < 0 {
		return nil, model.ErrAddressNotFound
	}

	demoteAll(state.Addresses)
	state.Addresses[idx].IsDefault = true

	if err := s.repository.Save(ctx, state); err != nil {
		return nil, err
	}
	result := state.Addresses[idx]
	return &result, nil
}

// DefaultAddress returns the default address, or nil when the book is empty
func (s *AccountService) DefaultAddress(ctx context.Context, userID uuid.UUID) (*model.Address, error) {
	state, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return state.DefaultAddress(), nil
}

// load fetches the state or fails with ErrAccountNotFound
func (s *AccountService) load(ctx context.Context, userID uuid.UUID) (*model.AccountState, error) {
	state, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if state == nil {
		return nil, model.ErrAccountNotFound
	}
	return state, nil
}

func (s *AccountService) authResponse(user model.User) (*model.AuthResponse, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &model.AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func demoteAll(addresses []model.Address) {
	for i := range addresses {
		addresses[i].IsDefault = false
	}
}
