package usecase

import (
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/users"
)

type UserUC struct {
	userRepo users.UserRepo
	cfg      *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		cfg:      cfg,
	}
}
