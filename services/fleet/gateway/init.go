package gateway

import (
	natspkg "github.com/fahrizal89/angkutin/internal/pkg/nats"
)

// FleetGW implements the gateway operations for the fleet service
type FleetGW struct {
	natsClient *natspkg.Client
}

// NewFleetGW creates a new fleet gateway instance
func NewFleetGW(natsClient *natspkg.Client) *FleetGW {
	return &FleetGW{
		natsClient: natsClient,
	}
}
