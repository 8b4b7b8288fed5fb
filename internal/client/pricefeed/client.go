// Package pricefeed fetches supplier price lists over HTTP.
package pricefeed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// PriceEntry is one supplier quote: the cost of one purchasable base unit.
type PriceEntry struct {
	// Name matches the ingredient name in the catalog.
	Name string `json:"name"`
	// UnitCost is the price of one base unit in whole rupiah.
	UnitCost float64 `json:"unit_cost"`
	// UnitQuantity is the quantity one base unit contains.
	UnitQuantity float64 `json:"unit_quantity"`
}

// Client fetches price lists from a supplier endpoint.
type Client interface {
	// FetchPrices retrieves the current supplier price list.
	FetchPrices(ctx context.Context) ([]PriceEntry, error)
}

// HTTPClient implements Client using resty.
type HTTPClient struct {
	client *resty.Client
}

// Config holds supplier endpoint configuration.
type Config struct {
	// BaseURL is the supplier endpoint, e.g. "https://supplier.example.com".
	BaseURL string
	// APIKey is sent as a bearer token when non-empty.
	APIKey string
	// Timeout bounds each request.
	Timeout time.Duration
	// RetryCount is the number of retries on transient failures.
	RetryCount int
}

// NewHTTPClient creates a price feed client for the given supplier.
func NewHTTPClient(cfg Config) *HTTPClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Accept", "application/json")

	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &HTTPClient{client: client}
}

// FetchPrices retrieves the current supplier price list from GET /prices.
func (c *HTTPClient) FetchPrices(ctx context.Context) ([]PriceEntry, error) {
	var entries []PriceEntry

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&entries).
		Get("/prices")
	if err != nil {
		return nil, fmt.Errorf("price feed request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("price feed returned status %d", resp.StatusCode())
	}

	return entries, nil
}
