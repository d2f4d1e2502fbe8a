// Package api contains the API routes for the Wellness Sessions API
package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arvyah/wellnessapi/internal/api/handlers"
	"github.com/arvyah/wellnessapi/internal/api/middleware"
	"github.com/arvyah/wellnessapi/internal/config"
	"github.com/arvyah/wellnessapi/internal/service"
	"github.com/arvyah/wellnessapi/pkg/utils/response"
)

// SetupRoutes configures the routes for the API
func SetupRoutes(e *echo.Echo, cfg *config.Config, authService *service.AuthService, sessionService *service.SessionService, tokens *service.TokenManager) {

	// Index route
	e.GET("/", indexRoute(cfg))

	// Auth routes (unprotected)
	authHandler := handlers.NewAuthHandler(authService)
	authGroup := e.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Public listing (unprotected)
	e.GET("/sessions", sessionHandler.GetPublicSessions)

	// Owned-session routes (protected)
	myGroup := e.Group("/my-sessions")
	myGroup.Use(middleware.BearerAuth(tokens))
	myGroup.GET("", sessionHandler.GetMySessions)
	myGroup.GET("/:id", sessionHandler.GetSessionByID)
	myGroup.POST("/create", sessionHandler.CreateSession)
	myGroup.POST("/save-draft", sessionHandler.SaveDraft)
	myGroup.POST("/publish", sessionHandler.PublishSession)
	myGroup.DELETE("/:id", sessionHandler.DeleteSession)
}

// indexRoute reports the API name and version
func indexRoute(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		message := fmt.Sprintf("%s %s", cfg.APIName, cfg.APIVersion)
		return response.MessageResponse(c, http.StatusOK, message)
	}
}
