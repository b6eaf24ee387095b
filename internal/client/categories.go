package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/canvascms/canvas-go/internal/http"
	"github.com/canvascms/canvas-go/pkg/canvas"
)

// CategoriesClient implements canvas.CategoriesClient.
type CategoriesClient struct {
	httpClient *http.Client
}

// NewCategoriesClient creates a new categories client.
func NewCategoriesClient(httpClient *http.Client) *CategoriesClient {
	return &CategoriesClient{
		httpClient: httpClient,
	}
}

// List implements canvas.CategoriesClient.List. The API serves categories
// from the project root, wrapped in a categories envelope; List returns the
// unwrapped sequence.
func (c *CategoriesClient) List(ctx context.Context) ([]canvas.Category, error) {
	resp, err := c.httpClient.Get(ctx, "", nil)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	var envelope struct {
		Categories []canvas.Category `json:"categories"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing categories response: %w", err)
	}

	return envelope.Categories, nil
}
