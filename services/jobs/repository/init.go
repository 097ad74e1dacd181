package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// JobRepo implements the job repository interface
type JobRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewJobRepo creates a new job repository instance
func NewJobRepo(cfg *models.Config, db *sqlx.DB) *JobRepo {
	return &JobRepo{
		cfg: cfg,
		db:  db,
	}
}
