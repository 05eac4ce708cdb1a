package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rbxweb/rbxweb/internal/http"
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

const economySubdomain = "economy"

// EconomyClient implements rbx.EconomyClient.
type EconomyClient struct {
	httpClient *http.Client
}

// NewEconomyClient creates a new economy client.
func NewEconomyClient(httpClient *http.Client) *EconomyClient {
	return &EconomyClient{httpClient: httpClient}
}

// CurrencyBalance implements rbx.EconomyClient.CurrencyBalance. Requires an
// authenticated session; only the cookie owner's balance is visible.
func (c *EconomyClient) CurrencyBalance(ctx context.Context, userID int64) (*rbx.CurrencyBalance, error) {
	path := fmt.Sprintf("/v1/users/%d/currency", userID)

	resp, err := c.httpClient.Get(ctx, economySubdomain, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting currency balance: %w", err)
	}

	var balance rbx.CurrencyBalance
	if err := json.Unmarshal(resp.Body, &balance); err != nil {
		return nil, fmt.Errorf("parsing currency balance response: %w", err)
	}

	return &balance, nil
}

// ResaleData implements rbx.EconomyClient.ResaleData.
func (c *EconomyClient) ResaleData(ctx context.Context, assetID int64) (*rbx.ResaleData, error) {
	path := fmt.Sprintf("/v1/assets/%d/resale-data", assetID)

	resp, err := c.httpClient.Get(ctx, economySubdomain, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting resale data: %w", err)
	}

	var data rbx.ResaleData
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		return nil, fmt.Errorf("parsing resale data response: %w", err)
	}

	return &data, nil
}
