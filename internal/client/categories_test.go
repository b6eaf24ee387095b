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

func TestCategoriesClient_List(t *testing.T) {
	t.Run("list categories", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/my-project", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"categories":[{"name":"Blog","slug":"blog"},{"name":"News","slug":"news"}]}`))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		categories, err := client.Categories().List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []canvas.Category{
			{Name: "Blog", Slug: "blog"},
			{Name: "News", Slug: "news"},
		}, categories)
	})

	t.Run("empty envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"categories":[]}`))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		categories, err := client.Categories().List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, categories)
	})

	t.Run("api error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte("invalid token"))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		_, err := client.Categories().List(context.Background())
		require.Error(t, err)

		apiErr := &canvas.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "invalid token", apiErr.Body)
		assert.True(t, canvas.IsUnauthorized(err))
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"categories":`))
		}))
		defer server.Close()

		client := NewTestClient(t, server.URL)

		_, err := client.Categories().List(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing categories response")
	})
}
