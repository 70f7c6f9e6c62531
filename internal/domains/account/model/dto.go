package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// RegisterRequest creates a new account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&r.Phone, validation.Length(0, 20)),
	)
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// UpdateProfileRequest changes profile fields. Nil fields are left untouched.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Phone, validation.Length(0, 20)),
	)
}

// CreateAddressRequest adds an address to the book
type CreateAddressRequest struct {
	RecipientName string      `json:"recipient_name"`
	Phone         string      `json:"phone"`
	AddressLine1  string      `json:"address_line1"`
	AddressLine2  string      `json:"address_line2"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	PostalCode    string      `json:"postal_code"`
	Country       string      `json:"country"`
	IsDefault     bool        `json:"is_default"`
	Type          AddressType `json:"type"`
}

func (r CreateAddressRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RecipientName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Phone, validation.Required, validation.Length(5, 20)),
		validation.Field(&r.AddressLine1, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.City, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.PostalCode, validation.Required, validation.Length(2, 20)),
		validation.Field(&r.Country, validation.Required, validation.Length(2, 60)),
		validation.Field(&r.Type, validation.In(AddressTypeHome, AddressTypeWork, AddressTypeOther)),
	)
}

// UpdateAddressRequest edits an existing address. Nil fields are left untouched.
type UpdateAddressRequest struct {
	RecipientName *string      `json:"recipient_name"`
	Phone         *string      `json:"phone"`
	AddressLine1  *string      `json:"address_line1"`
	AddressLine2  *string      `json:"address_line2"`
	City          *string      `json:"city"`
	State         *string      `json:"state"`
	PostalCode    *string      `json:"postal_code"`
	Country       *string      `json:"country"`
	IsDefault     *bool        `json:"is_default"`
	Type          *AddressType `json:"type"`
}

func (r UpdateAddressRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RecipientName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.AddressLine1, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.City, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Type, validation.In(AddressTypeHome, AddressTypeWork, AddressTypeOther)),
	)
}

// UserResponse is the profile shape returned to clients
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// AddressListResponse wraps the address book
type AddressListResponse struct {
	Addresses []Address `json:"addresses"`
	Count     int       `json:"count"`
}
