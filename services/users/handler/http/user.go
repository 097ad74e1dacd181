package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/internal/utils"
	"github.com/fahrizal89/angkutin/services/users"
)

// UserHandler handles HTTP requests for user roster operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// ListUsers returns rosters filtered by role. Only the driver roster is
// exposed for now; the assignment view is its single consumer.
func (h *UserHandler) ListUsers(c echo.Context) error {
	role := models.Role(c.QueryParam("role"))
	if role != models.RoleDriver {
		return utils.BadRequestResponse(c, "Unsupported role filter")
	}

	drivers, err := h.userUC.ListDrivers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list drivers", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", drivers)
}
