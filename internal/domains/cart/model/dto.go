package model

import (
	"time"

	coupon "autocart-backend/internal/domains/coupon/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemRequest adds a product to the cart. Quantity 0 means "one".
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required.Error("product_id is required")),
		validation.Field(&r.Quantity,
			validation.Min(0).Error("quantity cannot be negative"),
			validation.Max(MaxQuantityPerItem).Error("quantity exceeds per-item limit"),
		),
	)
}

// UpdateQuantityRequest sets a line item's quantity. Zero or negative removes
// the line item.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (r UpdateQuantityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity,
			validation.Max(MaxQuantityPerItem).Error("quantity exceeds per-item limit"),
		),
	)
}

// ApplyCouponRequest carries the user-entered code
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

func (r ApplyCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code,
			validation.Required.Error("code is required"),
			validation.Length(3, 50).Error("code must be 3-50 characters"),
		),
	)
}

// CouponStatus tags the outcome of a coupon application
type CouponStatus string

const (
	CouponApplied      CouponStatus = "applied"
	CouponNotFound     CouponStatus = "not_found"
	CouponBelowMinimum CouponStatus = "below_minimum"
	CouponExpired      CouponStatus = "expired"
)

// ApplyCouponResult is the tagged outcome of ApplyCoupon. On any status other
// than CouponApplied the cart state is unchanged and Cart holds the pre-call
// snapshot.
type ApplyCouponResult struct {
	Status CouponStatus  `json:"status"`
	Reason string        `json:"reason,omitempty"`
	Cart   *CartResponse `json:"cart"`
}

func (r *ApplyCouponResult) Applied() bool {
	return r.Status == CouponApplied
}

// CartResponse is the read-only projection the presentation layer consumes.
// Monetary amounts are rounded to cents here and only here.
type CartResponse struct {
	Items         []LineItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	ItemCount     int             `json:"item_count"`
	AppliedCoupon *coupon.Coupon  `json:"applied_coupon,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToResponse projects the stored snapshot for presentation
func (s *CartState) ToResponse() *CartResponse {
	items := s.Items
	if items == nil {
		items = []LineItem{}
	}
	return &CartResponse{
		Items:         items,
		Subtotal:      s.Totals.Subtotal.Round(2),
		Discount:      s.Totals.Discount.Round(2),
		DeliveryFee:   s.Totals.DeliveryFee.Round(2),
		Tax:           s.Totals.Tax.Round(2),
		Total:         s.Totals.Total.Round(2),
		ItemCount:     s.Totals.ItemCount,
		AppliedCoupon: s.AppliedCoupon,
		UpdatedAt:     s.UpdatedAt,
	}
}
