package middleware

import (
	"context"  // Context for credential lookups
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"notes_system/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// principalKey is the gin context key holding the authenticated caller
const principalKey = "principal"

// Authenticator resolves an access token to a user
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (domain.Principal, error)
}

// JWTAuthMiddleware validates bearer tokens and attaches the resolved user to the context
func JWTAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")              // Extract the token string
		principal, err := auth.Authenticate(c.Request.Context(), tokenStr) // Resolve the user behind it
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthenticated) {
				// Store failure, not a credential problem
				logrus.WithError(err).Error("Failed to authenticate request")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			// If resolving fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(principalKey, principal) // Store the caller in context
		c.Next()                       // Proceed to the next handler
	}
}

// CurrentUser returns the caller attached by JWTAuthMiddleware
func CurrentUser(c *gin.Context) (domain.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return domain.Principal{}, false
	}
	principal, ok := v.(domain.Principal)
	return principal, ok
}
