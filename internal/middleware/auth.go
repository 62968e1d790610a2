package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/athleteverse/api/pkg/token"
	"github.com/gin-gonic/gin"
)

const (
	AuthUserIDKey = "auth_user_id"
	AuthEmailKey  = "auth_email"
	AuthNameKey   = "auth_name"
)

// extractToken pulls the session token from the auth-token cookie, falling
// back to an Authorization bearer header for non-browser clients.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(token.CookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// RequireAuth rejects requests without a valid session token and stores the
// token's identity claims in the context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := token.ValidateJWT(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
			return
		}

		c.Set(AuthUserIDKey, claims.UserID)
		c.Set(AuthEmailKey, claims.Email)
		c.Set(AuthNameKey, claims.Name)
		c.Next()
	}
}

// OptionalAuth stores identity claims when a valid token is present but
// never rejects the request. Used by anonymous-capable creation paths.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if claims, err := token.ValidateJWT(tokenString, jwtSecret); err == nil {
				c.Set(AuthUserIDKey, claims.UserID)
				c.Set(AuthEmailKey, claims.Email)
				c.Set(AuthNameKey, claims.Name)
			}
		}
		c.Next()
	}
}

// GetUserIDFromContext extracts the authenticated user's ID from the context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}
	return uid, nil
}
