package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront-core/internal/core/httpclient"
	"storefront-core/internal/features/catalog/domain"
)

// RemoteCatalogAdapter fetches the product list from a merchant-hosted JSON
// feed. The feed is a plain array of product records.
type RemoteCatalogAdapter struct {
	// client is the HTTP client used for feed requests.
	client *http.Client
	// feedURL is the absolute URL of the product feed.
	feedURL string
}

// NewRemoteCatalogAdapter creates a new instance of RemoteCatalogAdapter.
func NewRemoteCatalogAdapter(feedURL string) *RemoteCatalogAdapter {
	return &RemoteCatalogAdapter{
		client:  httpclient.NewClient(10 * time.Second),
		feedURL: feedURL,
	}
}

// Products fetches and decodes the remote product feed.
func (a *RemoteCatalogAdapter) Products() ([]domain.Product, error) {
	resp, err := a.client.Get(a.feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product feed returned status: %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode product feed: %w", err)
	}

	return products, nil
}

// HealthCheck verifies that the product feed is reachable.
func (a *RemoteCatalogAdapter) HealthCheck() error {
	resp, err := a.client.Head(a.feedURL)
	if err != nil {
		return fmt.Errorf("product feed health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("product feed health check failed with status: %d", resp.StatusCode)
	}

	return nil
}
