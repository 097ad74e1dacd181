package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fahrizal89/angkutin/internal/pkg/jwt"
	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/internal/utils"
	"github.com/fahrizal89/angkutin/services/users"
)

// Register creates a customer account. Admin and driver accounts are
// provisioned out of band.
func (uc *UserUC) Register(ctx context.Context, req models.RegisterRequest) error {
	if !utils.MinLen(req.Name, 1) {
		return users.NewValidationError("name", "name is required")
	}
	if !utils.MinLen(req.Username, 3) {
		return users.NewValidationError("username", "username must be at least 3 characters")
	}
	if !utils.IsStrongPassword(req.Password) {
		return users.NewValidationError("password",
			"password must be at least 8 characters with uppercase, lowercase, number and special character")
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	_, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return users.ErrUsernameTaken
	}
	if !errors.Is(err, users.ErrUserNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		FullName:     strings.TrimSpace(req.Name),
		Role:         models.RoleCustomer,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user registered",
		logger.String("username", user.Username),
		logger.String("user_id", user.ID.String()))

	return nil
}

// Login verifies credentials and mints the access token plus a rotating
// refresh credential. Both lookup failure and password mismatch collapse to
// ErrInvalidCredentials so callers cannot probe for usernames.
func (uc *UserUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, string, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, "", users.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, "", users.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", users.ErrInvalidCredentials
	}

	return uc.issueSession(ctx, user)
}

// Refresh exchanges a refresh credential for a new access token and rotates
// the credential. The old token is dead after this call either way.
func (uc *UserUC) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, string, error) {
	if refreshToken == "" {
		return nil, "", users.ErrRefreshInvalid
	}

	userID, err := uc.userRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, "", err
	}

	// Rotate: the presented token is single-use.
	if err := uc.userRepo.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, "", fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, "", users.ErrRefreshInvalid
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, "", users.ErrRefreshInvalid
	}

	return uc.issueSession(ctx, user)
}

// Logout invalidates the refresh credential. Unknown tokens are fine: logout
// must always leave the caller logged out.
func (uc *UserUC) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := uc.userRepo.DeleteRefreshToken(ctx, refreshToken); err != nil {
		logger.Warn("failed to delete refresh token on logout", logger.Err(err))
	}
	return nil
}

func (uc *UserUC) issueSession(ctx context.Context, user *models.User) (*models.AuthResponse, string, error) {
	accessToken, expiresAt, err := jwt.GenerateToken(user.ID, user.Username, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken := uuid.New().String()
	ttl := time.Duration(uc.cfg.JWT.RefreshExpiration) * time.Hour
	if err := uc.userRepo.StoreRefreshToken(ctx, refreshToken, user.ID, ttl); err != nil {
		return nil, "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	resp := &models.AuthResponse{
		AccessToken: accessToken,
		Role:        user.Role,
		Username:    user.Username,
		ExpiresAt:   expiresAt,
	}
	return resp, refreshToken, nil
}
