package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/middleware"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/internal/utils"
	"github.com/fahrizal89/angkutin/services/fleet"
)

// FleetHandler handles HTTP requests for fleet operations
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
	}
}

// ListTrucks returns the truck roster
func (h *FleetHandler) ListTrucks(c echo.Context) error {
	trucks, err := h.fleetUC.ListTrucks(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list trucks", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list trucks")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trucks retrieved successfully", trucks)
}

// UpdateLocation stores the calling driver's position sample
func (h *FleetHandler) UpdateLocation(c echo.Context) error {
	var update models.LocationUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	actor := middleware.ActorFromContext(c)
	location, err := h.fleetUC.UpdateDriverLocation(c.Request().Context(), actor, update)
	if err != nil {
		var vErr *fleet.ValidationError
		if errors.As(err, &vErr) {
			return utils.BadRequestResponse(c, vErr.Reason)
		}
		logger.Error("Failed to update driver location", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", location)
}

// ListDriverLocations returns the latest sample per driver for the admin map
func (h *FleetHandler) ListDriverLocations(c echo.Context) error {
	locations, err := h.fleetUC.ListDriverLocations(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list driver locations", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list driver locations")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver locations retrieved successfully", locations)
}
