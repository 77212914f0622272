package api

import (
	"net/http" // HTTP status codes

	"notes_system/internal/metrics"    // Prometheus collectors
	"notes_system/internal/middleware" // Custom middleware
	"notes_system/internal/service"    // Business logic

	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus"          // Prometheus registry
	"github.com/prometheus/client_golang/prometheus/promhttp" // Metrics exposition
)

// Services bundles what the router exposes
type Services struct {
	Notes        *service.NoteService
	Registration *service.RegistrationService
	Profiles     *service.ProfileService
	Auth         *service.AuthService
}

// NewRouter builds the gin engine with all routes and middleware
func NewRouter(svc Services, reg *prometheus.Registry) *gin.Engine {
	r := gin.New()                                        // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestLogger())     // Panic recovery and request logging
	r.Use(middleware.MetricsMiddleware(metrics.New(reg))) // Request metrics

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))) // Metrics endpoint
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"}) // Liveness probe
	})

	// Token routes
	tokenGroup := r.Group("/api/token")
	tokenGroup.POST("/", LoginHandler(svc.Auth))               // Obtain access/refresh pair
	tokenGroup.POST("/refresh/", RefreshHandler(svc.Auth))     // Refresh access token
	tokenGroup.POST("/blacklist/", BlacklistHandler(svc.Auth)) // Revoke refresh token

	// Notes routes
	notesGroup := r.Group("/api/notes")
	notesGroup.POST("/register/", RegisterHandler(svc.Registration)) // Registration endpoint, unprotected

	// Protected notes routes
	protected := notesGroup.Group("")
	protected.Use(middleware.JWTAuthMiddleware(svc.Auth))
	protected.GET("/", ListNotesHandler(svc.Notes))             // List notes endpoint
	protected.POST("/", CreateNoteHandler(svc.Notes))           // Create note endpoint
	protected.PUT("/update/:id/", UpdateNoteHandler(svc.Notes)) // Update note endpoint
	protected.DELETE("/:id/", DeleteNoteHandler(svc.Notes))     // Delete note endpoint
	protected.GET("/profile/", ProfileHandler(svc.Profiles))    // Profile endpoint

	return r
}
