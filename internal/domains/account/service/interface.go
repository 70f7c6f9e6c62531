package service

import (
	"context"

	"github.com/google/uuid"

	"autocart-backend/internal/domains/account/model"
)

// ServiceInterface covers authentication, the profile, and the address book
type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.UserResponse, error)

	ListAddresses(ctx context.Context, userID uuid.UUID) (*model.AddressListResponse, error)
	AddAddress(ctx context.Context, userID uuid.UUID, req model.CreateAddressRequest) (*model.Address, error)
	UpdateAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID, req model.UpdateAddressRequest) (*model.Address, error)
	DeleteAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID) (*model.Address, error)
	DefaultAddress(ctx context.Context, userID uuid.UUID) (*model.Address, error)
}
