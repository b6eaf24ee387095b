package constants

import "errors"

// CLI configuration errors.
var (
	ErrNotLoggedIn = errors.New("not logged in, run 'canvas login' or set CANVAS_API_TOKEN")
	ErrNoProject   = errors.New("no project selected, pass --project or set CANVAS_PROJECT_ID")
	ErrEmptyToken  = errors.New("token must not be empty")
	ErrNoLayoutIDs = errors.New("at least one layout ID is required")
)
