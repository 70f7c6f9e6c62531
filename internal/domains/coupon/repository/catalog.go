package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"autocart-backend/internal/domains/coupon/model"
	"autocart-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Catalog resolves user-entered codes to coupon definitions. The catalog is
// loaded once at startup and never mutated, so lookups need no locking.
type Catalog struct {
	byCode map[string]*model.Coupon
}

// NewCatalog builds a catalog from a coupon list. Codes are indexed
// case-insensitively; a duplicate code keeps the first definition.
func NewCatalog(coupons []model.Coupon) *Catalog {
	byCode := make(map[string]*model.Coupon, len(coupons))
	for i := range coupons {
		key := strings.ToUpper(strings.TrimSpace(coupons[i].Code))
		if key == "" {
			continue
		}
		if _, exists := byCode[key]; exists {
			logger.Warn("Duplicate coupon code in catalog, keeping first", map[string]interface{}{
				"code": key,
			})
			continue
		}
		byCode[key] = &coupons[i]
	}
	return &Catalog{byCode: byCode}
}

// Load builds the catalog from a JSON file, or from the built-in seed set
// when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(seedCoupons()), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read coupon file: %w", err)
	}

	var coupons []model.Coupon
	if err := json.Unmarshal(data, &coupons); err != nil {
		return nil, fmt.Errorf("parse coupon file %s: %w", path, err)
	}

	logger.Info("Loaded coupon catalog", map[string]interface{}{
		"file":  path,
		"count": len(coupons),
	})
	return NewCatalog(coupons), nil
}

// Lookup returns the coupon for code, matching case-insensitively.
// Returns nil when the code is unknown.
func (c *Catalog) Lookup(code string) *model.Coupon {
	return c.byCode[strings.ToUpper(strings.TrimSpace(code))]
}

// Len reports how many coupons the catalog holds.
func (c *Catalog) Len() int {
	return len(c.byCode)
}

// seedCoupons is the default catalog used when no coupon file is configured.
func seedCoupons() []model.Coupon {
	minFifty := decimal.NewFromInt(50)
	minHundred := decimal.NewFromInt(100)
	capThirty := decimal.NewFromInt(30)
	validUntil := time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC)

	return []model.Coupon{
		{
			ID:            uuid.MustParse("7c9d2e61-4f1a-4a38-9a0e-111111111111"),
			Code:          "SAVE10",
			Kind:          model.DiscountKindPercentage,
			Value:         decimal.NewFromInt(10),
			MinOrderValue: &minFifty,
			ValidUntil:    validUntil,
		},
		{
			ID:            uuid.MustParse("7c9d2e61-4f1a-4a38-9a0e-222222222222"),
			Code:          "FLAT20",
			Kind:          model.DiscountKindFixed,
			Value:         decimal.NewFromInt(20),
			MinOrderValue: &minHundred,
			ValidUntil:    validUntil,
		},
		{
			ID:          uuid.MustParse("7c9d2e61-4f1a-4a38-9a0e-333333333333"),
			Code:        "WELCOME",
			Kind:        model.DiscountKindPercentage,
			Value:       decimal.NewFromInt(15),
			MaxDiscount: &capThirty,
			ValidUntil:  validUntil,
		},
	}
}
