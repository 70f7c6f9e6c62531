package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the stored profile. PasswordHash never leaves the repository layer;
// responses use UserResponse.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// AddressType tags what kind of place an address is
type AddressType string

const (
	AddressTypeHome  AddressType = "home"
	AddressTypeWork  AddressType = "work"
	AddressTypeOther AddressType = "other"
)

// Address is a shipping address. At most one address per owner is default.
type Address struct {
	ID            uuid.UUID   `json:"id"`
	OwnerID       uuid.UUID   `json:"owner_id"`
	RecipientName string      `json:"recipient_name"`
	Phone         string      `json:"phone"`
	AddressLine1  string      `json:"address_line1"`
	AddressLine2  string      `json:"address_line2,omitempty"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	PostalCode    string      `json:"postal_code"`
	Country       string      `json:"country"`
	IsDefault     bool        `json:"is_default"`
	Type          AddressType `json:"type"`
}

// AccountState is the persisted account namespace: profile plus the address
// book used as checkout input.
type AccountState struct {
	User      User      `json:"user"`
	Addresses []Address `json:"addresses"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindAddress returns the index of the address with the given ID, or -1
func (s *AccountState) FindAddress(addressID uuid.UUID) int {
	for i := range s.Addresses {
		if s.Addresses[i].ID == addressID {
			return i
		}
	}
	return -1
}

// DefaultAddress returns the default address, or nil when the book is empty
func (s *AccountState) DefaultAddress() *Address {
	for i := range s.Addresses {
		if s.Addresses[i].IsDefault {
			return &s.Addresses[i]
		}
	}
	return nil
}
