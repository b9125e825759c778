package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rdwiputra/jasaku/services/location"
	httpHandler "github.com/rdwiputra/jasaku/services/location/handler/http"
)

// Handler combines all protocol handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC, repo location.PositionRepo) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC, repo),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	loc := e.Group("/location")
	loc.GET("", h.locationHTTP.GetLocation)
	loc.GET("/last", h.locationHTTP.LastPosition)
	loc.POST("/refresh", h.locationHTTP.RefreshLocation)
}
