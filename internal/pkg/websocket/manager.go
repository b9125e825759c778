package websocket

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rdwiputra/jasaku/internal/pkg/logger"
)

// Manager tracks WebSocket connections used for transient user notices
type Manager struct {
	sync.RWMutex
	conns    map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		conns: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle upgrades the request and keeps the connection registered until the
// peer closes it. The read loop only drains control frames; notices flow one
// way, server to client.
func (m *Manager) Handle(c echo.Context) error {
	conn, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	m.Lock()
	m.conns[conn] = struct{}{}
	m.Unlock()

	defer func() {
		m.Lock()
		delete(m.conns, conn)
		m.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// ClientCount returns the number of connected clients
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.conns)
}

// Broadcast writes a JSON payload to every connected client, dropping
// connections that fail.
func (m *Manager) Broadcast(payload interface{}) {
	m.Lock()
	defer m.Unlock()

	for conn := range m.conns {
		if err := conn.WriteJSON(payload); err != nil {
			logger.Warn("dropping broken websocket connection", logger.Err(err))
			delete(m.conns, conn)
			conn.Close()
		}
	}
}
