// Package client implements the canvas.Client interface on top of the
// internal HTTP transport.
package client

import (
	"fmt"
	"strings"

	"github.com/canvascms/canvas-go/internal/constants"
	"github.com/canvascms/canvas-go/internal/http"
	"github.com/canvascms/canvas-go/pkg/canvas"
)

// Client implements the canvas.Client interface.
type Client struct {
	httpClient *http.Client
	projectID  string

	// Resource clients
	categories canvas.CategoriesClient
	pages      canvas.PagesClient
	menus      canvas.MenusClient
	layouts    canvas.LayoutsClient
}

// New creates a new Canvas API client. Credentials left empty in the config
// are resolved through the configured credential source; resolution happens
// here, once, so a misconfigured client fails at construction rather than on
// first use.
func New(config *canvas.Config) (*Client, error) {
	if config == nil {
		return nil, canvas.ErrConfigRequired
	}

	token, projectID, err := resolveCredentials(config)
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	endpoint := strings.TrimSuffix(baseURL, "/") + "/" + projectID
	httpClient := http.NewClient(endpoint, token, httpClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		projectID:  projectID,
	}
	client.initializeResourceClients()

	return client, nil
}

// resolveCredentials applies the fallback credential source to empty fields
// and verifies both credentials ended up present.
func resolveCredentials(config *canvas.Config) (string, string, error) {
	token := config.Token
	projectID := config.ProjectID

	if token == "" || projectID == "" {
		source := config.Credentials
		if source == nil {
			source = canvas.EnvCredentials{}
		}

		fallbackToken, fallbackProject, err := source.Credentials()
		if err != nil {
			return "", "", fmt.Errorf("resolving credentials: %w", err)
		}

		if token == "" {
			token = fallbackToken
		}

		if projectID == "" {
			projectID = fallbackProject
		}
	}

	if token == "" {
		return "", "", canvas.ErrMissingToken
	}

	if projectID == "" {
		return "", "", canvas.ErrMissingProject
	}

	return token, projectID, nil
}

// httpClientOptions builds HTTP client options from config.
func httpClientOptions(config *canvas.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	return httpOpts
}

// ProjectID returns the resolved project identifier.
func (c *Client) ProjectID() string {
	return c.projectID
}

// Categories implements canvas.Client.Categories.
func (c *Client) Categories() canvas.CategoriesClient {
	return c.categories
}

// Pages implements canvas.Client.Pages.
func (c *Client) Pages() canvas.PagesClient {
	return c.pages
}

// Menus implements canvas.Client.Menus.
func (c *Client) Menus() canvas.MenusClient {
	return c.menus
}

// Layouts implements canvas.Client.Layouts.
func (c *Client) Layouts() canvas.LayoutsClient {
	return c.layouts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.categories = NewCategoriesClient(c.httpClient)
	c.pages = NewPagesClient(c.httpClient)
	c.menus = NewMenusClient(c.httpClient)
	c.layouts = NewLayoutsClient(c.httpClient)
}
