package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canvascms/canvas-go/pkg/canvas"
)

func TestCategorySlugs(t *testing.T) {
	assert.Equal(t, NotAvailable, categorySlugs(nil))
	assert.Equal(t, NotAvailable, categorySlugs([]canvas.Category{}))
	assert.Equal(t, "blog", categorySlugs([]canvas.Category{{Name: "Blog", Slug: "blog"}}))
	assert.Equal(t, "blog, news", categorySlugs([]canvas.Category{
		{Name: "Blog", Slug: "blog"},
		{Name: "News", Slug: "news"},
	}))
}
