package api

import (
	"net/http" // HTTP status codes

	"notes_system/internal/service"  // Business logic
	"notes_system/internal/validate" // Binding error translation

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterHandler creates a new user account
func RegisterHandler(registration *service.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, validate.FromBindError(err))
			return
		}
		if err := registration.Register(c.Request.Context(), req); err != nil {
			respondError(c, err)
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// LoginHandler authenticates a user and returns an access/refresh token pair
func LoginHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, validate.FromBindError(err))
			return
		}
		pair, err := auth.Login(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pair) // Return the tokens
	}
}

// RefreshHandler exchanges a refresh token for a new access token
func RefreshHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RefreshRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, validate.FromBindError(err))
			return
		}
		access, err := auth.Refresh(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, access) // Return the new access token
	}
}

// BlacklistHandler revokes a refresh token
func BlacklistHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RefreshRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, validate.FromBindError(err))
			return
		}
		if err := auth.Revoke(c.Request.Context(), req); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
	}
}
