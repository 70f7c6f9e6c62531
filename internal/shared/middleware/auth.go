package middleware

import (
	"strings"

	"autocart-backend/internal/shared/response"
	"autocart-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

// AuthMiddleware validates the Bearer token and puts the user identity into
// the gin context. Requests without a valid access token are rejected.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(token)
		if err != nil || claims.Type != "access" {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user ID in token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyUserEmail, claims.Email)

		c.Next()
	}
}

// OptionalAuth parses the Bearer token when present but never rejects the
// request. Anonymous requests fall through to the session cookie (see Owner).
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if ok {
			if claims, err := manager.ValidateToken(token); err == nil && claims.Type == "access" {
				if userID, err := uuid.Parse(claims.UserID); err == nil {
					c.Set(ContextKeyUserID, userID)
					c.Set(ContextKeyUserEmail, claims.Email)
				}
			}
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user's ID from the context.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
