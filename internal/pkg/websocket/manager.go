package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/fahrizal89/angkutin/internal/pkg/jwt"
	"github.com/fahrizal89/angkutin/internal/pkg/logger"
	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// Message is the envelope pushed to connected clients.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Client is an authenticated WebSocket connection.
type Client struct {
	UserID uuid.UUID
	Role   models.Role
	conn   *websocket.Conn
	send   sync.Mutex
}

// Manager manages WebSocket connections and broadcasts events to them.
type Manager struct {
	sync.RWMutex
	clients  map[uuid.UUID]*Client
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[uuid.UUID]*Client),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades a new WebSocket connection.
// allowedRoles restricts who may attach to this feed. The connection is
// registered for broadcasts until the client disconnects.
func (m *Manager) HandleConnection(c echo.Context, allowedRoles ...models.Role) error {
	client, err := m.authenticateClient(c, allowedRoles)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.conn = ws
	m.addClient(client)
	defer m.removeClient(client.UserID)

	// Drain reads so we observe the close frame; the feed is write-only.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

// authenticateClient authenticates the WebSocket client using the bearer
// token, accepting either the Authorization header or a token query
// parameter (browsers cannot set headers on WebSocket upgrades).
func (m *Manager) authenticateClient(c echo.Context, allowedRoles []models.Role) (*Client, error) {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		authHeader := c.Request().Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing credentials")
		}
		tokenString = parts[1]
	}

	claims, err := jwtpkg.ValidateToken(tokenString, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	allowed := len(allowedRoles) == 0
	for _, r := range allowedRoles {
		if claims.Role == r {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Insufficient role")
	}

	return &Client{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// addClient safely adds a client to the manager
func (m *Manager) addClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// removeClient safely removes a client from the manager
func (m *Manager) removeClient(userID uuid.UUID) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
}

// ClientCount returns the number of connected clients.
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// Broadcast sends an event to every connected client.
func (m *Manager) Broadcast(event string, data interface{}) {
	rawData, err := json.Marshal(data)
	if err != nil {
		logger.Error("Error marshaling broadcast data", logger.Err(err))
		return
	}

	msg := Message{Event: event, Data: rawData}

	m.RLock()
	clients := make([]*Client, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.RUnlock()

	for _, client := range clients {
		if err := client.write(msg); err != nil {
			logger.Warn("Error sending message to client",
				logger.String("user_id", client.UserID.String()),
				logger.Err(err))
		}
	}
}

func (c *Client) write(msg Message) error {
	if c.conn == nil {
		return fmt.Errorf("connection not established")
	}

	c.send.Lock()
	defer c.send.Unlock()
	return c.conn.WriteJSON(msg)
}
