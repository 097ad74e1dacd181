package gateway

import (
	natspkg "github.com/fahrizal89/angkutin/internal/pkg/nats"
)

// JobGW implements the gateway operations for the job service
type JobGW struct {
	natsClient *natspkg.Client
}

// NewJobGW creates a new job gateway instance
func NewJobGW(natsClient *natspkg.Client) *JobGW {
	return &JobGW{
		natsClient: natsClient,
	}
}
