package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/canvascms/canvas-go/internal/http"
	"github.com/canvascms/canvas-go/pkg/canvas"
)

// MenusClient implements canvas.MenusClient.
type MenusClient struct {
	httpClient *http.Client
}

// NewMenusClient creates a new menus client.
func NewMenusClient(httpClient *http.Client) *MenusClient {
	return &MenusClient{
		httpClient: httpClient,
	}
}

// Get implements canvas.MenusClient.Get.
func (c *MenusClient) Get(ctx context.Context, id string) (*canvas.Menu, error) {
	path := "menus/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting menu %q: %w", id, err)
	}

	var menu canvas.Menu

	err = json.Unmarshal(resp.Body, &menu)
	if err != nil {
		return nil, fmt.Errorf("parsing menu response: %w", err)
	}

	return &menu, nil
}
