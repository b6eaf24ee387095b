// Package canvas provides types, interfaces, and helpers for working with
// the Canvas CMS public API.
//
// # Overview
//
// The canvas package defines the content types (Category, PageSummary,
// PageDetail, Menu, Layout, the ContentBlock union) and the interfaces for
// resource-oriented clients (CategoriesClient, PagesClient, MenusClient,
// LayoutsClient). A concrete implementation of these clients is provided by
// the canvasclient package, which wires configuration and transport. Most
// consumers should import canvasclient to construct a client and then
// interact with the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := canvasclient.New(&canvas.Config{Token: "...", ProjectID: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  pages, err := cli.Pages().List(ctx, &canvas.PageListOptions{Offset: canvas.Int(10)})
//	  if err != nil { log.Fatal(err) }
//	  _ = pages
//	}
//
// # Content blocks
//
// A page body is a sequence of blocks tagged by type. Decoding yields
// concrete variants (*HeaderBlock, *TextBlock, *CustomBlock, ...) behind the
// ContentBlock interface; switch on the concrete type to render:
//
//	for _, block := range page.Content {
//	  switch b := block.(type) {
//	  case *canvas.HeaderBlock:
//	    render(b.Header, b.Size)
//	  case *canvas.ImageBlock:
//	    img, err := canvas.FirstImage(b)
//	    ...
//	  }
//	}
//
// # Errors
//
// Non-2xx API responses surface as *APIError carrying the status code and
// the raw response body; use IsNotFound and IsUnauthorized for common
// checks. Construction with unresolved credentials fails with
// ErrMissingToken or ErrMissingProject. The client never retries, caches,
// or swallows failures.
package canvas
