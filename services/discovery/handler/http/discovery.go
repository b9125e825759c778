package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/internal/pkg/utils"
	"github.com/rdwiputra/jasaku/services/discovery"
)

// DiscoveryHandler exposes the provider discovery pipeline over HTTP
type DiscoveryHandler struct {
	discoveryUC discovery.DiscoveryUC
	availRepo   discovery.AvailabilityRepo
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(discoveryUC discovery.DiscoveryUC, availRepo discovery.AvailabilityRepo) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryUC: discoveryUC, availRepo: availRepo}
}

type listPayload struct {
	State     string                  `json:"state"`
	Providers []models.ProviderRecord `json:"providers"`
}

// ListProviders returns the current list and pipeline state. A first read
// against an idle pipeline triggers the initial fetch.
func (h *DiscoveryHandler) ListProviders(c echo.Context) error {
	if h.discoveryUC.State() == discovery.StateIdle {
		if err := h.discoveryUC.Fetch(c.Request().Context()); err != nil {
			if errors.Is(err, discovery.ErrFetchTimeout) {
				return utils.ErrorResponseHandler(c, http.StatusGatewayTimeout, err.Error())
			}
			return utils.InternalServerErrorResponse(c, err.Error())
		}
	}

	payload := listPayload{
		State:     h.discoveryUC.State().String(),
		Providers: h.discoveryUC.Providers(),
	}
	return utils.SuccessResponse(c, http.StatusOK, "providers", payload)
}

// Refresh forces a full fetch cycle
func (h *DiscoveryHandler) Refresh(c echo.Context) error {
	if err := h.discoveryUC.Refresh(c.Request().Context()); err != nil {
		// Prior data is preserved on timeout/failure; surface the outcome
		// but keep the listing reachable.
		if errors.Is(err, discovery.ErrFetchTimeout) {
			return utils.ErrorResponseHandler(c, http.StatusGatewayTimeout, err.Error())
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return h.ListProviders(c)
}

// LoadMore appends the next page when pagination is valid
func (h *DiscoveryHandler) LoadMore(c echo.Context) error {
	err := h.discoveryUC.LoadMore(c.Request().Context())
	if err != nil {
		if errors.Is(err, discovery.ErrLoadMoreUnavailable) {
			return utils.ConflictResponse(c, err.Error())
		}
		if errors.Is(err, discovery.ErrFetchTimeout) {
			return utils.ErrorResponseHandler(c, http.StatusGatewayTimeout, err.Error())
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return h.ListProviders(c)
}

// Search applies a search filter and refetches
func (h *DiscoveryHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if err := h.discoveryUC.SetSearchQuery(c.Request().Context(), query); err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return h.ListProviders(c)
}

// GetProvider returns one provider's detailed record, cache-first
func (h *DiscoveryHandler) GetProvider(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "provider id is required")
	}

	record, err := h.discoveryUC.Detail(c.Request().Context(), id)
	if err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "provider detail", record)
}

// Background records the moment the app shell left the foreground
func (h *DiscoveryHandler) Background(c echo.Context) error {
	h.discoveryUC.OnBackground()
	return utils.SuccessResponse(c, http.StatusOK, "background recorded", nil)
}

// Foreground applies the refresh-on-resume policy: a long enough absence
// triggers a full refresh, a short one does nothing.
func (h *DiscoveryHandler) Foreground(c echo.Context) error {
	if err := h.discoveryUC.OnForeground(c.Request().Context()); err != nil {
		if errors.Is(err, discovery.ErrFetchTimeout) {
			return utils.ErrorResponseHandler(c, http.StatusGatewayTimeout, err.Error())
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "foreground applied", nil)
}

type availabilityRequest struct {
	ProviderID string           `json:"provider_id"`
	Available  bool             `json:"available"`
	Location   *models.Location `json:"location,omitempty"`
}

// SetAvailability toggles a provider's availability
func (h *DiscoveryHandler) SetAvailability(c echo.Context) error {
	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.ProviderID == "" {
		return utils.BadRequestResponse(c, "provider_id is required")
	}

	if err := h.availRepo.SetAvailability(c.Request().Context(), req.ProviderID, req.Available, req.Location); err != nil {
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "availability updated", nil)
}
