package constants

import "time"

// API endpoint.
const (
	// DefaultBaseURL is the public Canvas API root. Requests are issued
	// against {DefaultBaseURL}/{projectID}/{path}.
	DefaultBaseURL = "https://api.canvascms.io/public"

	// DefaultUserAgent identifies the client on the wire.
	DefaultUserAgent = "canvas-go"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Output formatting.
const (
	// YAMLIndentSize is the indent width for YAML output.
	YAMLIndentSize = 2
)
