// Package http implements the HTTP transport of the Canvas API client: URL
// construction, bearer authentication, and error translation for the single
// GET request shape the API uses.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/canvascms/canvas-go/internal/constants"
	"github.com/canvascms/canvas-go/pkg/canvas"
)

// Logger is the logging interface used by the HTTP client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client issues requests against one project endpoint. It holds only
// immutable configuration and is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a new HTTP client rooted at baseURL. The token, when not
// empty, is attached to every request as a bearer credential.
func NewClient(baseURL, token string, opts ...Option) *Client {
	inner := retryablehttp.NewClient()
	inner.Logger = nil
	inner.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Single attempt per call. The API contract has no retry policy; every
	// response, success or failure, belongs to the caller.
	inner.RetryMax = 0
	inner.CheckRetry = func(_ context.Context, _ *http.Response, err error) (bool, error) {
		return false, err
	}

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		userAgent:  constants.DefaultUserAgent,
		httpClient: inner,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Response is a successful (or failed) HTTP exchange.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Get issues a GET against path with the given query values. An empty path
// addresses the endpoint root. Query keys already absent from values are
// simply not sent; values is not filtered here.
//
// Non-2xx responses return both the response and a *canvas.APIError carrying
// the status code and the raw body text. Transport failures pass through
// from the underlying client.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	fullURL := c.buildURL(path, query)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": http.MethodGet,
			"url":    fullURL,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"bytes":  len(body),
		})
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return response, &canvas.APIError{
			Status: resp.StatusCode,
			Body:   string(body),
		}
	}

	return response, nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	fullURL := c.baseURL

	path = strings.Trim(path, "/")
	if path != "" {
		fullURL += "/" + path
	}

	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	return fullURL
}
