package model

import (
	"time"

	catalog "autocart-backend/internal/domains/catalog/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// WishlistItem is one saved product. The wishlist has set semantics keyed by
// ProductID: at most one item per product.
type WishlistItem struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Product   catalog.Product `json:"product"` // snapshot at time of add
	AddedAt   time.Time       `json:"added_at"`
}

// WishlistState is the persisted wishlist namespace
type WishlistState struct {
	Items     []WishlistItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// EmptyWishlistState is the default for an absent or corrupt namespace
func EmptyWishlistState() *WishlistState {
	return &WishlistState{Items: []WishlistItem{}}
}

// FindByProduct returns the index of the item holding productID, or -1
func (s *WishlistState) FindByProduct(productID uuid.UUID) int {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// WishlistResponse is the read-only projection for presentation
type WishlistResponse struct {
	Items []WishlistItem `json:"items"`
	Count int            `json:"count"`
}

func (s *WishlistState) ToResponse() *WishlistResponse {
	items := s.Items
	if items == nil {
		items = []WishlistItem{}
	}
	return &WishlistResponse{Items: items, Count: len(items)}
}

// ProductRequest references a product for add/toggle operations
type ProductRequest struct {
	ProductID uuid.UUID `json:"product_id"`
}

func (r ProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required.Error("product_id is required")),
	)
}
