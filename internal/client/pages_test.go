package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvascms/canvas-go/pkg/canvas"
)

const pageListBody = `{
	"items": [
		{
			"title": "Hello World",
			"subtitle": "An introduction",
			"coverImage": null,
			"slug": "hello-world",
			"categories": [{"name": "Blog", "slug": "blog"}],
			"createdAt": "2024-03-01T10:00:00Z",
			"updatedAt": "2024-03-02T10:00:00Z"
		}
	],
	"total": 12
}`

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPagesClient_List(t *testing.T) {
	t.Run("list pages", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/my-project/pages", request.URL.Path)
			assert.Empty(t, request.URL.RawQuery)

			_, _ = writer.Write([]byte(pageListBody))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		list, err := client.Pages().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 12, list.Total)
		require.Len(t, list.Items, 1)
		assert.Equal(t, "hello-world", list.Items[0].Slug)
		assert.Nil(t, list.Items[0].CoverImage)
		assert.True(t, list.Items[0].HasCategory("blog"))
	})

	t.Run("zero start and offset are sent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			query := request.URL.Query()
			assert.Equal(t, "0", query.Get("start"))
			assert.Equal(t, "10", query.Get("offset"))
			assert.False(t, query.Has("filter.category.slug"))

			_, _ = writer.Write([]byte(pageListBody))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		_, err := client.Pages().List(context.Background(), &canvas.PageListOptions{
			Start:  canvas.Int(0),
			Offset: canvas.Int(10),
		})
		require.NoError(t, err)
	})

	t.Run("category filter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			query := request.URL.Query()
			assert.Equal(t, "blog", query.Get("filter.category.slug"))
			assert.False(t, query.Has("start"))
			assert.False(t, query.Has("offset"))

			_, _ = writer.Write([]byte(pageListBody))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		_, err := client.Pages().List(context.Background(), &canvas.PageListOptions{
			Filters: &canvas.PageFilters{Category: canvas.CategoryFilter{Slug: "blog"}},
		})
		require.NoError(t, err)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPagesClient_GetBySlug(t *testing.T) {
	pageBody := `{
		"title": "Hello World",
		"subtitle": "An introduction",
		"coverImage": {"alt": "cover", "variants": [
			{"url": "https://cdn.example.org/s.jpg", "width": 320, "height": 200, "filename": "s.jpg"},
			{"url": "https://cdn.example.org/l.jpg", "width": 1280, "height": 800, "filename": "l.jpg"}
		]},
		"slug": "hello-world",
		"categories": [{"name": "Blog", "slug": "blog"}],
		"createdAt": "2024-03-01T10:00:00Z",
		"updatedAt": "2024-03-02T10:00:00Z",
		"meta": {"title": "Hello", "description": "First post"},
		"content": [
			{"type": "header", "styles": [], "header": "Welcome", "size": "lg"},
			{"type": "text", "styles": ["Highlight"], "text": "Hi there."}
		]
	}`

	t.Run("get page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/my-project/pages/hello-world", request.URL.Path)
			assert.Empty(t, request.URL.RawQuery)

			_, _ = writer.Write([]byte(pageBody))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		page, err := client.Pages().GetBySlug(context.Background(), "hello-world", nil)
		require.NoError(t, err)
		assert.Equal(t, "Hello World", page.Title)
		assert.Equal(t, "First post", page.Meta.Description)
		require.Len(t, page.Content, 2)

		header, ok := page.Content[0].(*canvas.HeaderBlock)
		require.True(t, ok)
		assert.Equal(t, "Welcome", header.Header)

		require.NotNil(t, page.CoverImage)
		large, err := canvas.LargeImageVariant(*page.CoverImage)
		require.NoError(t, err)
		assert.Equal(t, "l.jpg", large.Filename)
	})

	t.Run("version query key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/my-project/pages/hello-world", request.URL.Path)
			assert.Equal(t, "3", request.URL.Query().Get("v"))

			_, _ = writer.Write([]byte(pageBody))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		_, err := client.Pages().GetBySlug(context.Background(), "hello-world", &canvas.PageGetOptions{
			Version: canvas.Int(3),
		})
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte("not found"))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		_, err := client.Pages().GetBySlug(context.Background(), "missing", nil)
		require.Error(t, err)

		apiErr := &canvas.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "not found", apiErr.Body)
		assert.True(t, canvas.IsNotFound(err))
	})
}
