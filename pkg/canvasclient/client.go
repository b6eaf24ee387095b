// Package canvasclient provides the main entry point for creating Canvas
// CMS API clients.
package canvasclient

import (
	"fmt"

	"github.com/canvascms/canvas-go/internal/client"
	"github.com/canvascms/canvas-go/pkg/canvas"
)

// New creates a new Canvas API client. Token and ProjectID left empty in
// the config resolve through the credential source (by default the process
// environment); if either is still missing afterwards, New fails with
// canvas.ErrMissingToken or canvas.ErrMissingProject.
func New(config *canvas.Config) (canvas.Client, error) {
	if config == nil {
		return nil, canvas.ErrConfigRequired
	}

	impl, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return impl, nil
}

// NewWithToken creates a new client with an explicit token and project ID.
func NewWithToken(token, projectID string) (canvas.Client, error) {
	return New(&canvas.Config{
		Token:     token,
		ProjectID: projectID,
	})
}

// NewFromEnv creates a new client resolving both credentials from the
// process environment (CANVAS_API_TOKEN, CANVAS_PROJECT_ID).
func NewFromEnv() (canvas.Client, error) {
	return New(&canvas.Config{})
}
