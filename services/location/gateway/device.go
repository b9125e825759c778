package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/rdwiputra/jasaku/internal/pkg/http"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/services/location"
)

// DeviceGateway implements the geolocation capability over the device
// bridge HTTP API.
type DeviceGateway struct {
	client *httpclient.Client
}

// NewDeviceGateway creates a gateway against the device bridge
func NewDeviceGateway(bridgeURL string, timeout time.Duration) location.Geolocator {
	return &DeviceGateway{client: httpclient.NewClient(bridgeURL, timeout)}
}

type permissionResponse struct {
	Granted bool `json:"granted"`
}

type positionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type geocodeResponse struct {
	FreeText  string `json:"free_text"`
	Region    string `json:"region"`
	Subregion string `json:"subregion"`
}

// RequestPermission asks the bridge for location permission
func (g *DeviceGateway) RequestPermission(ctx context.Context) (bool, error) {
	var resp permissionResponse
	if err := g.client.Post(ctx, "/permission/location", nil, &resp); err != nil {
		return false, fmt.Errorf("failed to request location permission: %w", err)
	}
	return resp.Granted, nil
}

// CurrentPosition acquires a fix at the given accuracy tier
func (g *DeviceGateway) CurrentPosition(ctx context.Context, tier models.AccuracyTier) (*models.Position, error) {
	var resp positionResponse
	path := fmt.Sprintf("/position?accuracy=%s", url.QueryEscape(string(tier)))
	if err := g.client.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("failed to acquire position: %w", err)
	}
	return &models.Position{
		Latitude:  resp.Latitude,
		Longitude: resp.Longitude,
		Accuracy:  tier,
	}, nil
}

// ReverseGeocode converts coordinates to an address
func (g *DeviceGateway) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.ResolvedAddress, error) {
	var resp geocodeResponse
	path := fmt.Sprintf("/geocode?lat=%f&lng=%f", lat, lng)
	if err := g.client.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("failed to reverse geocode: %w", err)
	}
	return &models.ResolvedAddress{
		FreeText:  resp.FreeText,
		Region:    resp.Region,
		Subregion: resp.Subregion,
	}, nil
}
