package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/canvascms/canvas-go/internal/http"
	"github.com/canvascms/canvas-go/pkg/canvas"
)

// PagesClient implements canvas.PagesClient.
type PagesClient struct {
	httpClient *http.Client
}

// NewPagesClient creates a new pages client.
func NewPagesClient(httpClient *http.Client) *PagesClient {
	return &PagesClient{
		httpClient: httpClient,
	}
}

// List implements canvas.PagesClient.List.
func (c *PagesClient) List(ctx context.Context, opts *canvas.PageListOptions) (*canvas.PageList, error) {
	resp, err := c.httpClient.Get(ctx, "pages", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	var list canvas.PageList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing pages response: %w", err)
	}

	return &list, nil
}

// GetBySlug implements canvas.PagesClient.GetBySlug.
func (c *PagesClient) GetBySlug(ctx context.Context, slug string, opts *canvas.PageGetOptions) (*canvas.PageDetail, error) {
	path := "pages/" + slug

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting page %q: %w", slug, err)
	}

	var page canvas.PageDetail

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing page response: %w", err)
	}

	return &page, nil
}
