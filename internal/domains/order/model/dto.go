package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// CheckoutRequest places an order from the current cart. When AddressID is
// empty the default address is used; when PaymentMethod is empty it
// defaults to card.
type CheckoutRequest struct {
	AddressID     string        `json:"address_id"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

func (r CheckoutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AddressID, validation.When(r.AddressID != "", is.UUID)),
		validation.Field(&r.PaymentMethod, validation.In(PaymentCard, PaymentCashOnDelivery, PaymentPaypal)),
	)
}

// ParsedAddressID returns the address ID, or uuid.Nil when none was given
func (r CheckoutRequest) ParsedAddressID() uuid.UUID {
	id, err := uuid.Parse(r.AddressID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// OrderListResponse wraps the order history
type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Count  int     `json:"count"`
}
