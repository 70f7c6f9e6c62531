package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_AccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken("user-1", "john@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestManager_RefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestManager_RejectsForeignSecret(t *testing.T) {
	t.Parallel()

	m := NewManager("secret-a", 15*time.Minute, 72*time.Hour)
	other := NewManager("secret-b", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken("user-1", "john@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
