package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/users"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewUserRepo(&models.Config{}, db, nil)

	return repo, mock
}

func userColumns() []string {
	return []string{"id", "username", "fullname", "role", "password_hash", "created_at", "updated_at", "is_active"}
}

func TestCreateUser(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	user := &models.User{
		Username:     "jane",
		FullName:     "Jane Doe",
		Role:         models.RoleCustomer,
		PasswordHash: "hash",
		IsActive:     true,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow(id, "jane", "Jane Doe", "customer", "hash", now, now, true)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("jane").
		WillReturnRows(rows)

	user, err := repo.GetUserByUsername(context.Background(), "jane")

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.GetUserByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.GetUserByID(context.Background(), id)

	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestListByRole(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow(uuid.New(), "driver1", "Andi", "driver", "hash", now, now, true).
		AddRow(uuid.New(), "driver2", "Budi", "driver", "hash", now, now, true)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("driver").
		WillReturnRows(rows)

	list, err := repo.ListByRole(context.Background(), models.RoleDriver)

	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
