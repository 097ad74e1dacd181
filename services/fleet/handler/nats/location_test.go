package nats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
	"github.com/fahrizal89/angkutin/internal/pkg/websocket"
)

func TestHandleLocationEvent(t *testing.T) {
	manager := websocket.NewManager(models.JWTConfig{Secret: "test-secret"})
	handler := NewNatsHandler(nil, manager)

	location := models.DriverLocation{
		DriverID:   uuid.New(),
		Username:   "driver1",
		Latitude:   -6.2088,
		Longitude:  106.8456,
		ObservedAt: time.Now(),
	}
	payload, err := json.Marshal(location)
	require.NoError(t, err)

	// No clients connected; the broadcast is a no-op but the event must
	// still parse cleanly.
	assert.NoError(t, handler.handleLocationEvent(payload))
}

func TestHandleLocationEvent_BadPayload(t *testing.T) {
	manager := websocket.NewManager(models.JWTConfig{Secret: "test-secret"})
	handler := NewNatsHandler(nil, manager)

	err := handler.handleLocationEvent([]byte("not json"))

	assert.Error(t, err)
}
