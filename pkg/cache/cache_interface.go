package cache

import (
	"context"
	"time"
)

// Cache is the key-value persistence boundary for the storefront state
// namespaces (cart, wishlist, account, orders). Implementations must treat a
// missing key as a miss, not an error, so callers can fall back to the
// empty/default state.
type Cache interface {
	// Get fetches the value at key and unmarshals it into dest.
	// Returns (false, nil) on a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value at key with a TTL. ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
