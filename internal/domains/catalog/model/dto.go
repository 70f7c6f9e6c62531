package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Sort options for product listing
const (
	SortPriceAsc  = "price_low"
	SortPriceDesc = "price_high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// ListRequest carries the catalog browse filters from the query string
type ListRequest struct {
	CategoryID string `form:"category_id"`
	Query      string `form:"q"`
	SortBy     string `form:"sort_by"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

// Validate validates ListRequest
func (r ListRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SortBy,
			validation.In(SortPriceAsc, SortPriceDesc, SortRating, SortNewest).
				Error("sort_by must be one of price_low, price_high, rating, newest"),
		),
		validation.Field(&r.Page, validation.Min(0)),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(100)),
	)
}

// Normalize applies pagination defaults
func (r *ListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}
