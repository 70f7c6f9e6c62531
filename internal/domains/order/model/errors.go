package model

import "errors"

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNoAddress        = errors.New("no shipping address available")
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyCancelled = errors.New("order is already cancelled")
	ErrNotCancellable   = errors.New("order can no longer be cancelled")
)
