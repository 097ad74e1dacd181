package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrizal89/angkutin/internal/pkg/middleware"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/internal/pkg/websocket"
	"github.com/fahrizal89/angkutin/services/fleet/handler/http"
	"github.com/fahrizal89/angkutin/services/fleet/handler/nats"
)

// Handler coordinates the HTTP, websocket and NATS handlers for the fleet
// service
type Handler struct {
	fleetHandler *http.FleetHandler
	natsHandler  *nats.NatsHandler
	wsManager    *websocket.Manager
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	fleetHandler *http.FleetHandler,
	natsHandler *nats.NatsHandler,
	wsManager *websocket.Manager,
	cfg *models.Config,
) *Handler {
	return &Handler{
		fleetHandler: fleetHandler,
		natsHandler:  natsHandler,
		wsManager:    wsManager,
		cfg:          cfg,
	}
}

// RegisterRoutes registers fleet routes with Echo and starts the NATS
// consumers feeding the websocket fan-out
func (h *Handler) RegisterRoutes(e *echo.Echo) error {
	trucks := e.Group("/trucks")
	trucks.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))
	trucks.Use(middleware.RequireRoles(models.RoleAdmin))
	trucks.GET("", h.fleetHandler.ListTrucks)

	drivers := e.Group("/drivers")
	drivers.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))
	drivers.POST("/location", h.fleetHandler.UpdateLocation,
		middleware.RequireRoles(models.RoleDriver))
	drivers.GET("/locations", h.fleetHandler.ListDriverLocations,
		middleware.RequireRoles(models.RoleAdmin))

	// The websocket manager does its own token handshake; browsers cannot
	// set headers on upgrade requests.
	e.GET("/ws/fleet", func(c echo.Context) error {
		return h.wsManager.HandleConnection(c, models.RoleAdmin)
	})

	return h.natsHandler.InitConsumers()
}
