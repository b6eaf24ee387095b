package canvas

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Category is an identifying tag attached to pages. The slug is the stable
// identifier; the name is display text.
type Category struct {
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

// ImageVariant is one rendition (size/format) of a source image.
type ImageVariant struct {
	URL      string `json:"url"      yaml:"url"`
	Width    int    `json:"width"    yaml:"width"`
	Height   int    `json:"height"   yaml:"height"`
	Filename string `json:"filename" yaml:"filename"`
}

// Image is a source image together with its renditions. Variants are ordered
// by ascending rendition size as produced by the CMS.
type Image struct {
	Alt      string         `json:"alt"      yaml:"alt"`
	Variants []ImageVariant `json:"variants" yaml:"variants"`
}

// PageMeta holds the SEO metadata of a page.
type PageMeta struct {
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// PageSummary is the lightweight listing representation of a page.
type PageSummary struct {
	Title      string     `json:"title"      yaml:"title"`
	Subtitle   string     `json:"subtitle"   yaml:"subtitle"`
	CoverImage *Image     `json:"coverImage" yaml:"coverImage"`
	Slug       string     `json:"slug"       yaml:"slug"`
	Categories []Category `json:"categories" yaml:"categories"`
	CreatedAt  time.Time  `json:"createdAt"  yaml:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"  yaml:"updatedAt"`
}

// HasCategory reports whether the page carries a category with the given
// slug. Slugs are compared exactly, case-sensitively.
func (p PageSummary) HasCategory(slug string) bool {
	for _, category := range p.Categories {
		if category.Slug == slug {
			return true
		}
	}

	return false
}

// PageDetail is the full representation of a single page: everything in
// PageSummary plus metadata and the content block sequence.
type PageDetail struct {
	PageSummary `yaml:",inline"`

	Meta    PageMeta      `json:"meta"    yaml:"meta"`
	Content ContentBlocks `json:"content" yaml:"content"`
}

// PageList is the response envelope of a page listing.
type PageList struct {
	Items []PageSummary `json:"items" yaml:"items"`
	Total int           `json:"total" yaml:"total"`
}

// MenuItem is one entry of a menu tree. Children nest to unbounded depth;
// the tree is server-supplied read-only data.
type MenuItem struct {
	Title    string     `json:"title"              yaml:"title"`
	Subtitle string     `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Icon     string     `json:"icon"               yaml:"icon"`
	URL      string     `json:"url"                yaml:"url"`
	Styles   []string   `json:"styles"             yaml:"styles"`
	Children []MenuItem `json:"children"           yaml:"children"`
}

// Menu is a named navigation tree.
type Menu struct {
	ID    string     `json:"id"    yaml:"id"`
	Name  string     `json:"name"  yaml:"name"`
	Items []MenuItem `json:"items" yaml:"items"`
}

// LayoutItemType describes the kind of value a layout item carries.
type LayoutItemType string

// Layout item types.
const (
	LayoutItemText    LayoutItemType = "text"
	LayoutItemHTML    LayoutItemType = "html"
	LayoutItemBoolean LayoutItemType = "boolean"
	LayoutItemSVG     LayoutItemType = "svg"
)

// LayoutItem is one labeled value of a layout. The kind of Value is
// constrained by Type (boolean type carries a boolean, all others a string);
// the CMS enforces this, the client does not re-validate it.
type LayoutItem struct {
	Label       string         `json:"label"       yaml:"label"`
	Description string         `json:"description" yaml:"description"`
	UID         string         `json:"uid"         yaml:"uid"`
	Type        LayoutItemType `json:"type"        yaml:"type"`
	Value       LayoutValue    `json:"value"       yaml:"value"`
}

// Layout is a named, reusable set of labeled key/value content items, such
// as site-wide footer text.
type Layout struct {
	ID    string       `json:"id"    yaml:"id"`
	Name  string       `json:"name"  yaml:"name"`
	Items []LayoutItem `json:"items" yaml:"items"`
}

// LayoutValue is a layout item value that decodes from either a JSON string
// or a JSON boolean, depending on the item type.
type LayoutValue struct {
	str    string
	truth  bool
	isBool bool
}

// StringValue returns a LayoutValue holding a string.
func StringValue(value string) LayoutValue {
	return LayoutValue{str: value}
}

// BoolValue returns a LayoutValue holding a boolean.
func BoolValue(value bool) LayoutValue {
	return LayoutValue{truth: value, isBool: true}
}

// IsBool reports whether the value decoded from a JSON boolean.
func (v LayoutValue) IsBool() bool {
	return v.isBool
}

// String returns the string form of the value. Boolean values render as
// "true" or "false".
func (v LayoutValue) String() string {
	if v.isBool {
		return strconv.FormatBool(v.truth)
	}

	return v.str
}

// Bool returns the boolean form of the value. String values are always
// false.
func (v LayoutValue) Bool() bool {
	return v.truth
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *LayoutValue) UnmarshalJSON(data []byte) error {
	var truth bool
	if err := json.Unmarshal(data, &truth); err == nil {
		*v = LayoutValue{truth: truth, isBool: true}

		return nil
	}

	var str string

	err := json.Unmarshal(data, &str)
	if err != nil {
		return fmt.Errorf("parsing layout value: %w", err)
	}

	*v = LayoutValue{str: str}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (v LayoutValue) MarshalJSON() ([]byte, error) {
	if v.isBool {
		return json.Marshal(v.truth)
	}

	return json.Marshal(v.str)
}

// PageFilters narrows a page listing. Category is the only supported filter
// dimension.
type PageFilters struct {
	Category CategoryFilter `json:"category" yaml:"category"`
}

// CategoryFilter selects pages carrying the category with the given slug.
type CategoryFilter struct {
	Slug string `json:"slug" yaml:"slug"`
}
