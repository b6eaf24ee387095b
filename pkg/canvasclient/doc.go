// Package canvasclient provides the primary entry point for constructing a
// Canvas CMS API client that implements the canvas.Client interface.
//
// It layers credential resolution and HTTP transport on top of the resource
// interfaces and types defined in the canvas package. Most applications
// should import canvasclient to build a client, then use the returned
// canvas.Client to access resource-specific clients: Categories(), Pages(),
// Menus(), Layouts().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/canvascms/canvas-go/pkg/canvas"
//	  "github.com/canvascms/canvas-go/pkg/canvasclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Explicit credentials:
//	  cli, err := canvasclient.NewWithToken("tok_...", "my-project")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or from the environment (CANVAS_API_TOKEN, CANVAS_PROJECT_ID):
//	  cli, err = canvasclient.NewFromEnv()
//	  if err != nil { log.Fatal(err) }
//
//	  page, err := cli.Pages().GetBySlug(ctx, "about", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// Credential resolution happens once, inside New: a client that constructs
// successfully holds fixed, immutable configuration and is safe for
// concurrent use.
package canvasclient
