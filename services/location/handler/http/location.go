package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rdwiputra/jasaku/internal/pkg/utils"
	"github.com/rdwiputra/jasaku/services/location"
)

// LocationHandler exposes the location subsystem over HTTP
type LocationHandler struct {
	locationUC location.LocationUC
	repo       location.PositionRepo
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationUC location.LocationUC, repo location.PositionRepo) *LocationHandler {
	return &LocationHandler{locationUC: locationUC, repo: repo}
}

// GetLocation returns the current snapshot without touching hardware
func (h *LocationHandler) GetLocation(c echo.Context) error {
	snapshot, ok := h.locationUC.CurrentSnapshot()
	if !ok {
		return utils.NotFoundResponse(c, "no location resolved yet")
	}
	return utils.SuccessResponse(c, http.StatusOK, "current location", snapshot)
}

// RefreshLocation triggers a resolution; force=true bypasses the cached
// snapshot. Concurrent requests coalesce onto one resolution.
func (h *LocationHandler) RefreshLocation(c echo.Context) error {
	force, _ := strconv.ParseBool(c.QueryParam("force"))

	snapshot, err := h.locationUC.RequestLocation(c.Request().Context(), force)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "location resolved", snapshot)
}

// LastPosition returns the diagnostic last-position trail entry
func (h *LocationHandler) LastPosition(c echo.Context) error {
	if h.repo == nil {
		return utils.NotFoundResponse(c, "position trail not configured")
	}

	pos, err := h.repo.LastPosition(c.Request().Context())
	if err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "last recorded position", pos)
}
