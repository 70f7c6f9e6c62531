package model

import "github.com/google/uuid"

// SendOrderConfirmationPayload is carried by order confirmation tasks
type SendOrderConfirmationPayload struct {
	UserID      uuid.UUID `json:"user_id"`
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Email       string    `json:"email"`
}
