package canvas

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the Canvas API. Body carries
// the raw response text verbatim, preserving whatever diagnostic the service
// returned; it is never re-parsed, even when it happens to be JSON.
type APIError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("canvas API error: status %d: %s", e.Status, e.Body)
}

// Configuration errors surfaced at client construction.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrMissingToken   = errors.New("API token is required")
	ErrMissingProject = errors.New("project ID is required")
)

// IsNotFound checks if the error is a not found response.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
