package api

import (
	"net/http" // HTTP status codes

	"notes_system/internal/middleware" // Current user lookup
	"notes_system/internal/service"    // Business logic

	"github.com/gin-gonic/gin" // Gin web framework
)

// ProfileHandler returns the caller's username and note count
func ProfileHandler(profiles *service.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.CurrentUser(c) // Get caller from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		profile, err := profiles.GetProfile(c.Request.Context(), owner)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
