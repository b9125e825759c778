package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rdwiputra/jasaku/internal/pkg/middleware"
	"github.com/rdwiputra/jasaku/internal/pkg/websocket"
	"github.com/rdwiputra/jasaku/services/discovery"
	httpHandler "github.com/rdwiputra/jasaku/services/discovery/handler/http"
	nsqHandler "github.com/rdwiputra/jasaku/services/discovery/handler/nsq"
)

// Handler combines all protocol handlers for the discovery service
type Handler struct {
	discoveryHTTP *httpHandler.DiscoveryHandler
	availNSQ      *nsqHandler.AvailabilityHandler
	wsManager     *websocket.Manager
}

// NewHandler creates a new combined handler
func NewHandler(
	discoveryUC discovery.DiscoveryUC,
	availRepo discovery.AvailabilityRepo,
	applier nsqHandler.Applier,
	wsManager *websocket.Manager,
) *Handler {
	return &Handler{
		discoveryHTTP: httpHandler.NewDiscoveryHandler(discoveryUC, availRepo),
		availNSQ:      nsqHandler.NewAvailabilityHandler(applier),
		wsManager:     wsManager,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey string) {
	providers := e.Group("/providers")
	providers.GET("", h.discoveryHTTP.ListProviders)
	providers.GET("/search", h.discoveryHTTP.Search)
	providers.GET("/:id", h.discoveryHTTP.GetProvider)
	providers.POST("/refresh", h.discoveryHTTP.Refresh)
	providers.POST("/more", h.discoveryHTTP.LoadMore)

	// Availability mutations come from provider devices; key-guarded
	providers.PUT("/availability", h.discoveryHTTP.SetAvailability, middleware.APIKeyMiddleware(apiKey))

	// App shell lifecycle signals drive the refresh-on-resume policy
	lifecycle := e.Group("/lifecycle")
	lifecycle.POST("/background", h.discoveryHTTP.Background)
	lifecycle.POST("/foreground", h.discoveryHTTP.Foreground)

	e.GET("/ws/notices", h.wsManager.Handle)
}

// StartNSQConsumers connects the availability consumer
func (h *Handler) StartNSQConsumers(nsqAddress, channel string) error {
	return h.availNSQ.Start(nsqAddress, channel)
}

// Stop stops background consumers
func (h *Handler) Stop() {
	if h.availNSQ != nil {
		h.availNSQ.Stop()
	}
}
