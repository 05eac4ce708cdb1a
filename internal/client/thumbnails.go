package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rbxweb/rbxweb/internal/http"
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

const thumbnailsSubdomain = "thumbnails"

// ThumbnailsClient implements rbx.ThumbnailsClient.
type ThumbnailsClient struct {
	httpClient *http.Client
}

// NewThumbnailsClient creates a new thumbnails client.
func NewThumbnailsClient(httpClient *http.Client) *ThumbnailsClient {
	return &ThumbnailsClient{httpClient: httpClient}
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, ",")
}

func (c *ThumbnailsClient) batch(ctx context.Context, path, idParam string, ids []int64, size rbx.ThumbnailSize, format rbx.ThumbnailFormat) ([]rbx.Thumbnail, error) {
	query := url.Values{}
	query.Set(idParam, joinIDs(ids))
	query.Set("size", string(size))
	query.Set("format", string(format))

	resp, err := c.httpClient.Get(ctx, thumbnailsSubdomain, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting thumbnails: %w", err)
	}

	var result rbx.DataWrapper[rbx.Thumbnail]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing thumbnails response: %w", err)
	}

	return result.Data, nil
}

// AvatarHeadshots implements rbx.ThumbnailsClient.AvatarHeadshots.
func (c *ThumbnailsClient) AvatarHeadshots(ctx context.Context, userIDs []int64, size rbx.ThumbnailSize, format rbx.ThumbnailFormat) ([]rbx.Thumbnail, error) {
	return c.batch(ctx, "/v1/users/avatar-headshot", "userIds", userIDs, size, format)
}

// AssetThumbnails implements rbx.ThumbnailsClient.AssetThumbnails.
func (c *ThumbnailsClient) AssetThumbnails(ctx context.Context, assetIDs []int64, size rbx.ThumbnailSize, format rbx.ThumbnailFormat) ([]rbx.Thumbnail, error) {
	return c.batch(ctx, "/v1/assets", "assetIds", assetIDs, size, format)
}
