package repository

import (
	"context"
	"fmt"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// ListTrucks retrieves the truck roster ordered by plate number
func (r *FleetRepo) ListTrucks(ctx context.Context) ([]models.Truck, error) {
	query := `
		SELECT id, plate_number, model, capacity_kg, created_at, updated_at
		FROM trucks
		ORDER BY plate_number ASC
	`

	var trucks []models.Truck
	err := r.db.SelectContext(ctx, &trucks, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	return trucks, nil
}
