package canvasclient_test

import (
	"testing"

	"github.com/canvascms/canvas-go/pkg/canvas"
	"github.com/canvascms/canvas-go/pkg/canvasclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		c, err := canvasclient.New(nil)
		require.Nil(t, c)
		assert.ErrorIs(t, err, canvas.ErrConfigRequired)
	})

	t.Run("explicit credentials", func(t *testing.T) {
		c, err := canvasclient.New(&canvas.Config{
			Token:     "test-token",
			ProjectID: "my-project",
		})
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv("CANVAS_API_TOKEN", "")
		t.Setenv("CANVAS_PROJECT_ID", "")

		c, err := canvasclient.New(&canvas.Config{ProjectID: "my-project"})
		require.Nil(t, c)
		assert.ErrorIs(t, err, canvas.ErrMissingToken)
	})
}

func TestNewWithToken(t *testing.T) {
	c, err := canvasclient.NewWithToken("test-token", "my-project")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("CANVAS_API_TOKEN", "env-token")
	t.Setenv("CANVAS_PROJECT_ID", "env-project")

	c, err := canvasclient.NewFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, c)
}
