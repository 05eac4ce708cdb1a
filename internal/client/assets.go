package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rbxweb/rbxweb/internal/http"
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

// AssetsClient implements rbx.AssetsClient.
type AssetsClient struct {
	httpClient *http.Client
}

// NewAssetsClient creates a new assets client.
func NewAssetsClient(httpClient *http.Client) *AssetsClient {
	return &AssetsClient{httpClient: httpClient}
}

// GetDetails implements rbx.AssetsClient.GetDetails. Asset details live on
// the economy subdomain for historical reasons.
func (c *AssetsClient) GetDetails(ctx context.Context, assetID int64) (*rbx.AssetDetails, error) {
	path := fmt.Sprintf("/v2/assets/%d/details", assetID)

	resp, err := c.httpClient.Get(ctx, "economy", path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting asset details: %w", err)
	}

	var details rbx.AssetDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing asset details response: %w", err)
	}

	return &details, nil
}

// ListInventory implements rbx.AssetsClient.ListInventory.
func (c *AssetsClient) ListInventory(ctx context.Context, userID int64, assetType string, params *rbx.QueryParams) (*rbx.Page[rbx.InventoryItem], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	} else {
		query = url.Values{}
	}

	if assetType != "" {
		query.Set("assetTypes", assetType)
	}

	path := fmt.Sprintf("/v2/users/%d/inventory", userID)

	resp, err := c.httpClient.Get(ctx, "inventory", path, query)
	if err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}

	var page rbx.Page[rbx.InventoryItem]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing inventory response: %w", err)
	}

	return &page, nil
}
