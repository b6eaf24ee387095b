package canvas

import (
	"net/url"
	"strconv"
)

// PageListOptions narrows and windows a page listing. Nil fields are omitted
// from the query entirely; zero values of set fields are serialized, so a
// Start of 0 still appears as start=0.
type PageListOptions struct {
	Filters *PageFilters
	Start   *int
	Offset  *int
}

// ToValues converts the options to URL query values.
func (o *PageListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.Filters != nil {
		values.Set("filter.category.slug", o.Filters.Category.Slug)
	}

	if o.Start != nil {
		values.Set("start", strconv.Itoa(*o.Start))
	}

	if o.Offset != nil {
		values.Set("offset", strconv.Itoa(*o.Offset))
	}

	return values
}

// PageGetOptions refines a single-page fetch.
type PageGetOptions struct {
	// Version selects a specific page version via the v query key.
	Version *int
}

// ToValues converts the options to URL query values.
func (o *PageGetOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.Version != nil {
		values.Set("v", strconv.Itoa(*o.Version))
	}

	return values
}

// Int returns a pointer to value, for use in option structs.
func Int(value int) *int {
	return &value
}
