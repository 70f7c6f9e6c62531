package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// Cookie settings
	SessionCookieName = "session_id"
	SessionMaxAge     = 60 * 60 * 24 * 30 // 30 days in seconds

	ContextKeyOwner       = "owner_key"
	ContextKeyIsAnonymous = "is_anonymous"
)

// OwnerConfig holds cookie configuration for anonymous session tracking
type OwnerConfig struct {
	CookieDomain   string // "" for current domain
	CookiePath     string
	CookieSecure   bool // true for HTTPS only
	CookieSameSite http.SameSite
}

// DefaultOwnerConfig returns secure default configuration
func DefaultOwnerConfig() OwnerConfig {
	return OwnerConfig{
		CookieDomain:   "",
		CookiePath:     "/",
		CookieSecure:   true, // set false for localhost dev
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// Owner resolves which cart/wishlist namespace a request operates on.
//
// Flow:
// 1. Authenticated (user_id set by OptionalAuth) -> owner key is the user ID
// 2. Anonymous with session cookie -> owner key is the session UUID
// 3. Anonymous without cookie -> generate a session UUID and set the cookie
//
// Must run after OptionalAuth.
func Owner(config OwnerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := GetUserID(c); ok {
			c.Set(ContextKeyOwner, "user:"+userID.String())
			c.Set(ContextKeyIsAnonymous, false)
			c.Next()
			return
		}

		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(config.CookieSameSite)
			c.SetCookie(
				SessionCookieName,
				sessionID,
				SessionMaxAge,
				config.CookiePath,
				config.CookieDomain,
				config.CookieSecure,
				true, // httpOnly
			)
		}

		c.Set(ContextKeyOwner, "session:"+sessionID)
		c.Set(ContextKeyIsAnonymous, true)

		c.Next()
	}
}

// GetOwner returns the namespace key resolved by Owner.
func GetOwner(c *gin.Context) string {
	return c.GetString(ContextKeyOwner)
}
