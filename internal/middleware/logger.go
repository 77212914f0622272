package middleware

import (
	"time" // Request timing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestLogger logs one structured line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Start timer
		c.Next()            // Run the rest of the chain

		fields := logrus.Fields{
			"method":    c.Request.Method,           // HTTP method
			"path":      c.Request.URL.Path,         // Request path
			"status":    c.Writer.Status(),          // Response status
			"latency":   time.Since(start).String(), // Time spent
			"client_ip": c.ClientIP(),               // Caller address
		}
		if principal, ok := CurrentUser(c); ok {
			fields["user_id"] = principal.ID // Authenticated caller
		}
		entry := logrus.WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	}
}
