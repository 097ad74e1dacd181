package usecase

import (
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/services/fleet"
)

type FleetUC struct {
	fleetRepo fleet.FleetRepo
	fleetGW   fleet.FleetGW
	cfg       *models.Config
}

// NewFleetUC creates a new fleet usecase instance
func NewFleetUC(
	fleetRepo fleet.FleetRepo,
	fleetGW fleet.FleetGW,
	cfg *models.Config,
) *FleetUC {
	return &FleetUC{
		fleetRepo: fleetRepo,
		fleetGW:   fleetGW,
		cfg:       cfg,
	}
}
