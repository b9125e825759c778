// Package notify defines the transient user-notice surface. The core only
// needs a notify(message) capability; rendering belongs to the host UI.
package notify

import (
	"context"
	"time"

	"github.com/rdwiputra/jasaku/internal/pkg/logger"
	"github.com/rdwiputra/jasaku/internal/pkg/websocket"
)

// Notice messages emitted by the discovery core
const (
	MsgLoadTimedOut    = "load timed out, pull to retry"
	MsgRefreshTimedOut = "refresh timed out"
	MsgStateReset      = "app state reset"
)

// Notifier delivers a transient user-facing notice
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Notice is the payload pushed to clients
type Notice struct {
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// LoggerNotifier records notices in the application log. Used as the
// default surface when no push channel is wired.
type LoggerNotifier struct{}

// Notify logs the notice
func (LoggerNotifier) Notify(_ context.Context, message string) {
	logger.Info("user notice", logger.String("message", message))
}

// WebSocketNotifier pushes notices to connected WebSocket clients and logs
// them when nobody is connected.
type WebSocketNotifier struct {
	manager *websocket.Manager
}

// NewWebSocketNotifier creates a notifier backed by the given manager
func NewWebSocketNotifier(manager *websocket.Manager) *WebSocketNotifier {
	return &WebSocketNotifier{manager: manager}
}

// Notify broadcasts the notice to connected clients
func (n *WebSocketNotifier) Notify(_ context.Context, message string) {
	if n.manager.ClientCount() == 0 {
		logger.Info("user notice", logger.String("message", message))
		return
	}
	n.manager.Broadcast(Notice{Message: message, SentAt: time.Now()})
}
