package canvas

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvPrefix is the environment variable prefix of EnvCredentials.
const DefaultEnvPrefix = "canvas"

// EnvCredentials reads fallback credentials from the process environment:
// CANVAS_API_TOKEN and CANVAS_PROJECT_ID with the default prefix. It is the
// credential source used when Config.Credentials is nil.
type EnvCredentials struct {
	// Prefix overrides the environment variable prefix.
	Prefix string
}

type envCredentialSpec struct {
	APIToken  string `envconfig:"API_TOKEN"`
	ProjectID string `envconfig:"PROJECT_ID"`
}

// Credentials implements CredentialSource.
func (s EnvCredentials) Credentials() (string, string, error) {
	prefix := s.Prefix
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	var spec envCredentialSpec

	err := envconfig.Process(prefix, &spec)
	if err != nil {
		return "", "", fmt.Errorf("reading credentials from environment: %w", err)
	}

	return spec.APIToken, spec.ProjectID, nil
}
