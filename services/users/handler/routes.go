package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrizal89/angkutin/internal/pkg/middleware"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the user service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers auth and roster routes with Echo
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/auth")
	auth.POST("/register", h.authHandler.Register)
	auth.POST("/login", h.authHandler.Login)
	auth.POST("/refresh-token", h.authHandler.Refresh)
	auth.POST("/logout", h.authHandler.Logout)

	users := e.Group("/users")
	users.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))
	users.Use(middleware.RequireRoles(models.RoleAdmin))
	users.GET("", h.userHandler.ListUsers)
}
