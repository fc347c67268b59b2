package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"portfolio/internal/domain/entity"
	"portfolio/pkg/logger"
)

// Client is one live WebSocket connection. Connections are keyed by their
// own id rather than the user's, so the same visitor can hold several tabs
// open at once.
type Client struct {
	ID          string
	UID         string
	Role        entity.ParticipantRole
	DisplayName string
	Email       string
	Conn        *websocket.Conn
	Send        chan []byte

	mu     sync.Mutex
	closed bool
}

// Manager tracks every active connection.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the registration loop until the context is cancelled.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Info("WebSocket client %s connected (uid=%s role=%s)", client.ID, client.UID, client.Role)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					client.closeSend()
				}
				m.mutex.Unlock()
				logger.Info("WebSocket client %s disconnected", client.ID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// ClientCount reports the number of live connections.
func (m *Manager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

// Deliver queues an already-encoded frame for the client, dropping it when
// the client's buffer is full rather than blocking a watch goroutine. After
// the unregister path has closed the queue, deliveries are discarded.
func (c *Client) Deliver(message []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	select {
	case c.Send <- message:
	default:
		logger.Warn("WebSocket client %s send buffer full, dropping frame", c.ID)
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
}

// ReadPump decodes inbound frames and hands them to the session handler. It
// owns unregistration: when the read loop ends, for any reason, the client
// is torn down.
func (c *Client) ReadPump(m *Manager, handle func(*Frame)) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read from %s: %v", c.ID, err)
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(message, &frame); err != nil {
			logger.Warn("WebSocket client %s sent malformed frame: %v", c.ID, err)
			continue
		}

		handle(&frame)
	}
}

// WritePump drains the send queue onto the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("WebSocket write to %s: %v", c.ID, err)
			return
		}
	}
}
