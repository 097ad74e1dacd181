package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/users"
)

// CreateUser creates a new user in the database
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (id, username, fullname, role, password_hash,
			created_at, updated_at, is_active
		) VALUES (:id, :username, :fullname, :role, :password_hash,
			:created_at, :updated_at, :is_active)
	`
	_, err = tx.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves a user by username
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, fullname, role, password_hash, created_at, updated_at, is_active
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, username, fullname, role, password_hash, created_at, updated_at, is_active
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// ListByRole retrieves all active users holding the given role, ordered by
// full name for stable roster output.
func (r *UserRepo) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	query := `
		SELECT id, username, fullname, role, password_hash, created_at, updated_at, is_active
		FROM users
		WHERE role = $1 AND is_active = true
		ORDER BY fullname ASC
	`

	var list []models.User
	err := r.db.SelectContext(ctx, &list, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return list, nil
}
