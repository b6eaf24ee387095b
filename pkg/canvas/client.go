package canvas

import (
	"context"
	"net/http"
)

// CategoriesClient provides access to the category taxonomy of a project.
type CategoriesClient interface {
	// List returns all categories of the project.
	List(ctx context.Context) ([]Category, error)
}

// PagesClient provides access to the pages of a project.
type PagesClient interface {
	// List returns a window of the project's pages, newest first, optionally
	// filtered by category.
	List(ctx context.Context, opts *PageListOptions) (*PageList, error)

	// GetBySlug returns the full representation of a single page. The slug
	// must be URL-path-safe.
	GetBySlug(ctx context.Context, slug string, opts *PageGetOptions) (*PageDetail, error)
}

// MenusClient provides access to the navigation menus of a project.
type MenusClient interface {
	Get(ctx context.Context, id string) (*Menu, error)
}

// LayoutsClient provides access to the layouts of a project.
type LayoutsClient interface {
	Get(ctx context.Context, id string) (*Layout, error)

	// GetMany returns several layouts in one request. The ids are joined
	// with ";" directly into the path, unescaped; ids containing ";" are not
	// supported by the upstream API.
	GetMany(ctx context.Context, ids []string) ([]Layout, error)
}

// Client is a typed Canvas CMS API client. A client holds only immutable
// configuration fixed at construction and is safe for concurrent use.
type Client interface {
	Categories() CategoriesClient
	Pages() PagesClient
	Menus() MenusClient
	Layouts() LayoutsClient
}

// Logger is the logging interface accepted by the client. Adapt your
// application logger to it; a nil logger disables client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// CredentialSource supplies fallback credentials for fields left empty in
// the Config. It is consulted once, at client construction.
type CredentialSource interface {
	Credentials() (token, projectID string, err error)
}

// Config holds client configuration. Token and ProjectID fall back to the
// Credentials source when empty; everything else is optional.
type Config struct {
	// Token is the API token sent as a bearer credential.
	Token string

	// ProjectID scopes all requests to one project.
	ProjectID string

	// Credentials supplies Token and ProjectID when they are empty.
	// Defaults to EnvCredentials.
	Credentials CredentialSource

	// BaseURL overrides the public API root, mainly for tests.
	BaseURL string

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// HTTPClient overrides the underlying transport. Timeouts and
	// cancellation are the transport's; the client adds no policy of its
	// own.
	HTTPClient *http.Client

	// Logger receives client log entries.
	Logger Logger

	// Debug enables request/response debug logging through Logger.
	Debug bool
}
