package usecase

import (
	"context"
	"fmt"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// ListDrivers returns the active driver roster for the assignment view.
func (uc *UserUC) ListDrivers(ctx context.Context) ([]models.User, error) {
	drivers, err := uc.userRepo.ListByRole(ctx, models.RoleDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}
