package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"autocart-backend/internal/domains/coupon/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_LookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	catalog, err := Load("")
	require.NoError(t, err)

	for _, code := range []string{"SAVE10", "save10", "Save10", "  save10  "} {
		coupon := catalog.Lookup(code)
		require.NotNil(t, coupon, "expected lookup to succeed for %q", code)
		assert.Equal(t, "SAVE10", coupon.Code)
		assert.Equal(t, model.DiscountKindPercentage, coupon.Kind)
	}
}

func TestCatalog_LookupUnknownCode(t *testing.T) {
	t.Parallel()

	catalog, err := Load("")
	require.NoError(t, err)

	assert.Nil(t, catalog.Lookup("NOPE"))
	assert.Nil(t, catalog.Lookup(""))
}

func TestCatalog_SeedSet(t *testing.T) {
	t.Parallel()

	catalog, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 3, catalog.Len())

	flat := catalog.Lookup("FLAT20")
	require.NotNil(t, flat)
	assert.Equal(t, model.DiscountKindFixed, flat.Kind)
	assert.True(t, flat.Value.Equal(decimal.NewFromInt(20)))
	require.NotNil(t, flat.MinOrderValue)
	assert.True(t, flat.MinOrderValue.Equal(decimal.NewFromInt(100)))

	welcome := catalog.Lookup("WELCOME")
	require.NotNil(t, welcome)
	require.NotNil(t, welcome.MaxDiscount)
	assert.True(t, welcome.MaxDiscount.Equal(decimal.NewFromInt(30)))
	assert.Nil(t, welcome.MinOrderValue)
}

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "coupons.json")
	payload := `[
		{"id":"7c9d2e61-4f1a-4a38-9a0e-444444444444","code":"SPRING5","type":"fixed","value":"5","valid_until":"2030-06-30T00:00:00Z"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	catalog, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, catalog.Len())

	coupon := catalog.Lookup("spring5")
	require.NotNil(t, coupon)
	assert.True(t, coupon.Value.Equal(decimal.NewFromInt(5)))
	assert.False(t, coupon.IsExpired(time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, coupon.IsExpired(time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestLoad_BadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "coupons.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
