package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/fahrizal89/angkutin/internal/pkg/database"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// FleetRepo implements the fleet repository interface
type FleetRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewFleetRepo creates a new fleet repository instance
func NewFleetRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *FleetRepo {
	return &FleetRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
