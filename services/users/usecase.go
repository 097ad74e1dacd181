package users

import (
	"context"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fahrizal89/angkutin/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// Register creates a new customer account. It does not log the caller in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login verifies credentials and mints an access token plus a refresh
	// credential for the cookie.
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, string, error)

	// Refresh exchanges a valid refresh credential for a fresh access token,
	// rotating the refresh credential in the process.
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, string, error)

	// Logout invalidates the refresh credential. Always succeeds.
	Logout(ctx context.Context, refreshToken string) error

	// ListDrivers returns the driver roster for the assignment UI.
	ListDrivers(ctx context.Context) ([]models.User, error)
}
