package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strings"  // Prefix trimming

	"notes_system/internal/domain" // Domain error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// respondError maps a service error to its status code and JSON body
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "fields": verr.Fields})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": unauthenticatedMessage(err)})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
	default:
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,   // HTTP method
			"path":   c.Request.URL.Path, // Request path
			"error":  err.Error(),        // Error message
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// unauthenticatedMessage strips the sentinel prefix from a wrapped error
func unauthenticatedMessage(err error) string {
	if msg, ok := strings.CutPrefix(err.Error(), domain.ErrUnauthenticated.Error()+": "); ok && msg != "" {
		return msg
	}
	return "Authentication failed"
}
