package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	accountModel "autocart-backend/internal/domains/account/model"
	cartModel "autocart-backend/internal/domains/cart/model"
)

// OrderStatus is the order lifecycle state
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod is how the order will be paid. Payment itself is out of
// scope; the method is recorded on the snapshot.
type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentPaypal         PaymentMethod = "paypal"
)

// StatusChange is one entry in an order's status history
type StatusChange struct {
	Status OrderStatus `json:"status"`
	At     time.Time   `json:"at"`
}

// OrderItem is a frozen cart line. Price and name are copied at checkout so
// later catalog edits never change a placed order.
type OrderItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Order is an immutable checkout snapshot
type Order struct {
	ID              uuid.UUID            `json:"id"`
	Number          string               `json:"number"`
	UserID          uuid.UUID            `json:"user_id"`
	Items           []OrderItem          `json:"items"`
	Subtotal        decimal.Decimal      `json:"subtotal"`
	Discount        decimal.Decimal      `json:"discount"`
	DeliveryFee     decimal.Decimal      `json:"delivery_fee"`
	Tax             decimal.Decimal      `json:"tax"`
	Total           decimal.Decimal      `json:"total"`
	CouponCode      string               `json:"coupon_code,omitempty"`
	PaymentMethod   PaymentMethod        `json:"payment_method"`
	ShippingAddress accountModel.Address `json:"shipping_address"`
	Status          OrderStatus          `json:"status"`
	StatusHistory   []StatusChange       `json:"status_history"`
	CreatedAt       time.Time            `json:"created_at"`
}

// SetStatus transitions the order and appends to the history
func (o *Order) SetStatus(status OrderStatus, at time.Time) {
	o.Status = status
	o.StatusHistory = append(o.StatusHistory, StatusChange{Status: status, At: at})
}

// OrderState is the persisted order history for one user, newest first
type OrderState struct {
	Orders    []Order   `json:"orders"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmptyOrderState is the default for users with no orders yet
func EmptyOrderState() *OrderState {
	return &OrderState{Orders: []Order{}}
}

// Find returns the index of the order with the given ID, or -1
func (s *OrderState) Find(orderID uuid.UUID) int {
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

// FreezeItems copies cart lines into order lines
func FreezeItems(lines []cartModel.LineItem) []OrderItem {
	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		price := line.Product.Price
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Name:      line.Product.Name,
			UnitPrice: price,
			Quantity:  line.Quantity,
			LineTotal: price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	return items
}
