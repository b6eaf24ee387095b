package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvascms/canvas-go/pkg/canvas"
)

func TestNewPagesCommand(t *testing.T) {
	cmd := NewPagesCommand()
	assert.Equal(t, "pages", cmd.Use)
	assert.Equal(t, []string{"page"}, cmd.Aliases)
	assert.Equal(t, "Browse pages", cmd.Short)

	// Check subcommands are added
	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 2)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
}

func TestPagesListCommand(t *testing.T) {
	cmd := newPagesListCommand()
	assert.Equal(t, "list", cmd.Use)
	assert.Equal(t, "List pages", cmd.Short)
	assert.NotNil(t, cmd.RunE)

	assert.NotNil(t, cmd.Flags().Lookup("category"))
	assert.NotNil(t, cmd.Flags().Lookup("start"))
	assert.NotNil(t, cmd.Flags().Lookup("offset"))
}

func TestPagesGetCommand(t *testing.T) {
	cmd := newPagesGetCommand()
	assert.Equal(t, "get SLUG", cmd.Use)
	assert.Equal(t, "Get a page", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	assert.NotNil(t, cmd.Flags().Lookup("page-version"))
}

func TestBuildPageListOptions(t *testing.T) {
	t.Run("no flags set", func(t *testing.T) {
		cmd := newPagesListCommand()

		opts := buildPageListOptions(cmd, PagesListOptions{})
		assert.Nil(t, opts.Filters)
		assert.Nil(t, opts.Start)
		assert.Nil(t, opts.Offset)
	})

	t.Run("explicit zero window is forwarded", func(t *testing.T) {
		cmd := newPagesListCommand()
		require.NoError(t, cmd.Flags().Set("start", "0"))
		require.NoError(t, cmd.Flags().Set("offset", "0"))

		opts := buildPageListOptions(cmd, PagesListOptions{Start: 0, Offset: 0})
		require.NotNil(t, opts.Start)
		require.NotNil(t, opts.Offset)
		assert.Equal(t, 0, *opts.Start)
		assert.Equal(t, 0, *opts.Offset)
	})

	t.Run("category filter", func(t *testing.T) {
		cmd := newPagesListCommand()
		require.NoError(t, cmd.Flags().Set("category", "blog"))

		opts := buildPageListOptions(cmd, PagesListOptions{Category: "blog"})
		require.NotNil(t, opts.Filters)
		assert.Equal(t, canvas.CategoryFilter{Slug: "blog"}, opts.Filters.Category)
	})
}
