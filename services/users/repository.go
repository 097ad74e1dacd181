package users

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fahrizal89/angkutin/services/users UserRepo

// UserRepo represents the user repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)

	// Refresh credential store. Tokens are opaque and map to a user ID with
	// a TTL; rotation is delete + store.
	StoreRefreshToken(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, token string) (uuid.UUID, error)
	DeleteRefreshToken(ctx context.Context, token string) error
}
