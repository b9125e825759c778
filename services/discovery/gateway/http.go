package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/rdwiputra/jasaku/internal/pkg/http"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/services/discovery"
)

// ProviderGW implements the provider backend over a remote provider
// service. Used when the discovery service does not own the database.
type ProviderGW struct {
	client *httpclient.Client
}

// NewProviderGW creates a gateway against the remote provider service
func NewProviderGW(serviceURL string, timeout time.Duration, apiKey string) discovery.ProviderBackend {
	client := httpclient.NewClient(serviceURL, timeout)
	if apiKey != "" {
		client = client.WithAPIKey(apiKey)
	}
	return &ProviderGW{client: client}
}

type listResponse struct {
	Data []models.ProviderRecord `json:"data"`
}

type reviewsResponse struct {
	Data []models.Review `json:"data"`
}

type detailResponse struct {
	Data *models.ProviderRecord `json:"data"`
}

// ListProviders fetches one page of available providers
func (g *ProviderGW) ListProviders(ctx context.Context, q discovery.ProviderQuery) ([]models.ProviderRecord, error) {
	params := url.Values{}
	params.Set("exclude", q.ExcludeUserID)
	params.Set("search", q.Search)
	params.Set("offset", fmt.Sprintf("%d", q.Offset))
	params.Set("limit", fmt.Sprintf("%d", q.Limit))

	var resp listResponse
	if err := g.client.Get(ctx, "/internal/providers?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return resp.Data, nil
}

// ListReviews fetches all reviews for one provider
func (g *ProviderGW) ListReviews(ctx context.Context, providerID string) ([]models.Review, error) {
	var resp reviewsResponse
	path := fmt.Sprintf("/internal/providers/%s/reviews", url.PathEscape(providerID))
	if err := g.client.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return resp.Data, nil
}

// GetProvider fetches the detailed record for one provider
func (g *ProviderGW) GetProvider(ctx context.Context, id string) (*models.ProviderRecord, error) {
	var resp detailResponse
	path := fmt.Sprintf("/internal/providers/%s", url.PathEscape(id))
	if err := g.client.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("provider %s not found", id)
	}
	return resp.Data, nil
}
