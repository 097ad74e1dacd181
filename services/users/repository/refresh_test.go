package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrizal89/angkutin/internal/pkg/constants"
	"github.com/fahrizal89/angkutin/internal/pkg/database"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/users"
)

func setupRefreshRepoTest(t *testing.T) (*UserRepo, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	repo := NewUserRepo(&models.Config{}, nil, database.NewRedisClientFromClient(client))

	return repo, mock
}

func TestStoreRefreshToken(t *testing.T) {
	repo, mock := setupRefreshRepoTest(t)

	token := uuid.New().String()
	userID := uuid.New()
	key := fmt.Sprintf(constants.KeyRefreshToken, token)

	mock.ExpectSet(key, userID.String(), 24*time.Hour).SetVal("OK")

	err := repo.StoreRefreshToken(context.Background(), token, userID, 24*time.Hour)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRefreshToken(t *testing.T) {
	repo, mock := setupRefreshRepoTest(t)

	token := uuid.New().String()
	userID := uuid.New()
	key := fmt.Sprintf(constants.KeyRefreshToken, token)

	mock.ExpectGet(key).SetVal(userID.String())

	got, err := repo.GetRefreshToken(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetRefreshToken_Missing(t *testing.T) {
	repo, mock := setupRefreshRepoTest(t)

	token := uuid.New().String()
	key := fmt.Sprintf(constants.KeyRefreshToken, token)

	mock.ExpectGet(key).RedisNil()

	_, err := repo.GetRefreshToken(context.Background(), token)

	assert.ErrorIs(t, err, users.ErrRefreshInvalid)
}

func TestGetRefreshToken_CorruptValue(t *testing.T) {
	repo, mock := setupRefreshRepoTest(t)

	token := uuid.New().String()
	key := fmt.Sprintf(constants.KeyRefreshToken, token)

	mock.ExpectGet(key).SetVal("not-a-uuid")

	_, err := repo.GetRefreshToken(context.Background(), token)

	assert.ErrorIs(t, err, users.ErrRefreshInvalid)
}

func TestDeleteRefreshToken(t *testing.T) {
	repo, mock := setupRefreshRepoTest(t)

	token := uuid.New().String()
	key := fmt.Sprintf(constants.KeyRefreshToken, token)

	mock.ExpectDel(key).SetVal(1)

	err := repo.DeleteRefreshToken(context.Background(), token)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
