package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/canvascms/canvas-go/internal/http"
	"github.com/canvascms/canvas-go/pkg/canvas"
)

// LayoutsClient implements canvas.LayoutsClient.
type LayoutsClient struct {
	httpClient *http.Client
}

// NewLayoutsClient creates a new layouts client.
func NewLayoutsClient(httpClient *http.Client) *LayoutsClient {
	return &LayoutsClient{
		httpClient: httpClient,
	}
}

// Get implements canvas.LayoutsClient.Get.
func (c *LayoutsClient) Get(ctx context.Context, id string) (*canvas.Layout, error) {
	path := "layouts/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting layout %q: %w", id, err)
	}

	var layout canvas.Layout

	err = json.Unmarshal(resp.Body, &layout)
	if err != nil {
		return nil, fmt.Errorf("parsing layout response: %w", err)
	}

	return &layout, nil
}

// GetMany implements canvas.LayoutsClient.GetMany. The ids go into the path
// joined by ";" with no escaping, which is what the upstream API expects;
// the response order is server-determined. See canvas.LayoutsClient for the
// separator caveat.
func (c *LayoutsClient) GetMany(ctx context.Context, ids []string) ([]canvas.Layout, error) {
	path := "layouts/" + strings.Join(ids, ";")

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting layouts %v: %w", ids, err)
	}

	var layouts []canvas.Layout

	err = json.Unmarshal(resp.Body, &layouts)
	if err != nil {
		return nil, fmt.Errorf("parsing layouts response: %w", err)
	}

	return layouts, nil
}
