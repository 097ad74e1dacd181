package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/internal/utils"
	"github.com/fahrizal89/angkutin/services/users"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	userUC users.UserUC
	cfg    *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
		cfg:    cfg,
	}
}

// Register handles customer account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		var vErr *users.ValidationError
		switch {
		case errors.As(err, &vErr):
			return utils.BadRequestResponse(c, vErr.Reason)
		case errors.Is(err, users.ErrUsernameTaken):
			return utils.ConflictResponse(c, "Username already taken")
		default:
			logger.Error("Failed to register user", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to register")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registration successful", nil)
}

// Login handles credential verification and session issuance
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, refreshToken, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid username or password")
		}
		logger.Error("Failed to log in user", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to log in")
	}

	h.setRefreshCookie(c, refreshToken)
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Refresh exchanges the refresh cookie for a new access token
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(h.cfg.JWT.CookieName)
	if err != nil || cookie.Value == "" {
		return utils.UnauthorizedResponse(c, "Missing refresh token")
	}

	resp, refreshToken, err := h.userUC.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, users.ErrRefreshInvalid) {
			h.clearRefreshCookie(c)
			return utils.UnauthorizedResponse(c, "Invalid refresh token")
		}
		logger.Error("Failed to refresh session", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to refresh session")
	}

	h.setRefreshCookie(c, refreshToken)
	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed", resp)
}

// Logout invalidates the refresh credential and clears the cookie. Always
// responds 200, even without a cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(h.cfg.JWT.CookieName); err == nil {
		refreshToken = cookie.Value
	}

	if err := h.userUC.Logout(c.Request().Context(), refreshToken); err != nil {
		logger.Warn("Logout cleanup failed", logger.Err(err))
	}

	h.clearRefreshCookie(c)
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.JWT.CookieName,
		Value:    token,
		Path:     "/auth",
		Expires:  time.Now().Add(time.Duration(h.cfg.JWT.RefreshExpiration) * time.Hour),
		HttpOnly: true,
		Secure:   h.cfg.JWT.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.JWT.CookieName,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.JWT.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}
