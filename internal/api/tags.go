package api

import (
	"context"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/gateway"
)

// TagsClient covers the /tag endpoint. Tags are a flat, unpaginated
// list used by the recipe form.
type TagsClient struct {
	gw *gateway.Client
}

// NewTagsClient constructs a TagsClient.
func NewTagsClient(gw *gateway.Client) *TagsClient {
	return &TagsClient{gw: gw}
}

// List fetches all tags.
func (c *TagsClient) List(ctx context.Context) ([]Tag, error) {
	var out []Tag
	if err := c.gw.Get(ctx, "/tag/", &out); err != nil {
		return nil, err
	}
	return out, nil
}
