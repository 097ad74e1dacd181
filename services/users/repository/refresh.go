package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/internal/pkg/constants"
	"github.com/fahrizal89/angkutin/services/users"
)

// StoreRefreshToken maps an opaque refresh token to a user ID with a TTL
func (r *UserRepo) StoreRefreshToken(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyRefreshToken, token)
	if err := r.redisClient.Set(ctx, key, userID.String(), ttl); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken resolves a refresh token back to the user ID it was minted
// for. Unknown or expired tokens come back as ErrRefreshInvalid.
func (r *UserRepo) GetRefreshToken(ctx context.Context, token string) (uuid.UUID, error) {
	key := fmt.Sprintf(constants.KeyRefreshToken, token)
	value, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, users.ErrRefreshInvalid
		}
		return uuid.Nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, users.ErrRefreshInvalid
	}

	return userID, nil
}

// DeleteRefreshToken removes a refresh token. Deleting a missing token is
// not an error.
func (r *UserRepo) DeleteRefreshToken(ctx context.Context, token string) error {
	key := fmt.Sprintf(constants.KeyRefreshToken, token)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
