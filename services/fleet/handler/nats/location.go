package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/fahrizal89/angkutin/internal/pkg/constants"
	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
	natspkg "github.com/fahrizal89/angkutin/internal/pkg/nats"
	"github.com/fahrizal89/angkutin/internal/pkg/websocket"
)

// NatsHandler fans NATS fleet events out to connected websocket clients
type NatsHandler struct {
	natsClient *natspkg.Client
	wsManager  *websocket.Manager
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler for the fleet service
func NewNatsHandler(natsClient *natspkg.Client, wsManager *websocket.Manager) *NatsHandler {
	return &NatsHandler{
		natsClient: natsClient,
		wsManager:  wsManager,
	}
}

// InitConsumers subscribes to the fleet subjects
func (h *NatsHandler) InitConsumers() error {
	locationSub, err := h.natsClient.Subscribe(constants.SubjectFleetLocation, func(msg *nats.Msg) {
		if err := h.handleLocationEvent(msg.Data); err != nil {
			logger.Error("Error handling fleet location event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to fleet location events: %w", err)
	}
	h.subs = append(h.subs, locationSub)

	return nil
}

// Close drains all subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("failed to unsubscribe", logger.Err(err))
		}
	}
	h.subs = nil
}

// handleLocationEvent pushes a location sample to every connected admin map
func (h *NatsHandler) handleLocationEvent(msg []byte) error {
	var location models.DriverLocation
	if err := json.Unmarshal(msg, &location); err != nil {
		return fmt.Errorf("failed to unmarshal location event: %w", err)
	}

	h.wsManager.Broadcast(constants.SubjectFleetLocation, location)
	return nil
}
