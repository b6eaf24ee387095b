package canvas

import (
	"encoding/json"
	"errors"
	"fmt"
)

// BlockType discriminates the content block union.
type BlockType string

// Content block types. The union is closed; decoding a block with any other
// type fails.
const (
	BlockTypeHeader BlockType = "header"
	BlockTypeList   BlockType = "list"
	BlockTypeEmbed  BlockType = "embed"
	BlockTypeImage  BlockType = "image"
	BlockTypeCode   BlockType = "code"
	BlockTypeText   BlockType = "text"
	BlockTypeCTA    BlockType = "cta"
	BlockTypeCustom BlockType = "custom"
)

// Static errors for err113 compliance.
var (
	ErrUnknownBlockType = errors.New("unknown content block type")
)

// ContentBlock is one typed unit of page body content. Every variant carries
// free-form style tags; use BlockHasStyle for case-insensitive membership
// tests.
type ContentBlock interface {
	BlockType() BlockType
	BlockStyles() []string
}

// HeaderBlock is a section heading.
type HeaderBlock struct {
	Type      BlockType `json:"type"                yaml:"type"`
	Styles    []string  `json:"styles"              yaml:"styles"`
	Header    string    `json:"header"              yaml:"header"`
	Subheader string    `json:"subheader,omitempty" yaml:"subheader,omitempty"`
	Size      string    `json:"size"                yaml:"size"`
}

// BlockType implements ContentBlock.
func (b *HeaderBlock) BlockType() BlockType { return BlockTypeHeader }

// BlockStyles implements ContentBlock.
func (b *HeaderBlock) BlockStyles() []string { return b.Styles }

// ListOption is one entry of a list block.
type ListOption struct {
	Title    string `json:"title"              yaml:"title"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
}

// ListBlock is an ordered sequence of titled options.
type ListBlock struct {
	Type    BlockType    `json:"type"    yaml:"type"`
	Styles  []string     `json:"styles"  yaml:"styles"`
	Options []ListOption `json:"options" yaml:"options"`
}

// BlockType implements ContentBlock.
func (b *ListBlock) BlockType() BlockType { return BlockTypeList }

// BlockStyles implements ContentBlock.
func (b *ListBlock) BlockStyles() []string { return b.Styles }

// EmbedBlock embeds external content by URL.
type EmbedBlock struct {
	Type   BlockType `json:"type"   yaml:"type"`
	Styles []string  `json:"styles" yaml:"styles"`
	URL    string    `json:"url"    yaml:"url"`
}

// BlockType implements ContentBlock.
func (b *EmbedBlock) BlockType() BlockType { return BlockTypeEmbed }

// BlockStyles implements ContentBlock.
func (b *EmbedBlock) BlockStyles() []string { return b.Styles }

// ImageBlock is an ordered sequence of images.
type ImageBlock struct {
	Type   BlockType `json:"type"   yaml:"type"`
	Styles []string  `json:"styles" yaml:"styles"`
	Images []Image   `json:"images" yaml:"images"`
}

// BlockType implements ContentBlock.
func (b *ImageBlock) BlockType() BlockType { return BlockTypeImage }

// BlockStyles implements ContentBlock.
func (b *ImageBlock) BlockStyles() []string { return b.Styles }

// CodeBlock is a preformatted code snippet.
type CodeBlock struct {
	Type   BlockType `json:"type"   yaml:"type"`
	Styles []string  `json:"styles" yaml:"styles"`
	Code   string    `json:"code"   yaml:"code"`
}

// BlockType implements ContentBlock.
func (b *CodeBlock) BlockType() BlockType { return BlockTypeCode }

// BlockStyles implements ContentBlock.
func (b *CodeBlock) BlockStyles() []string { return b.Styles }

// TextBlock is a rich-text passage.
type TextBlock struct {
	Type   BlockType `json:"type"   yaml:"type"`
	Styles []string  `json:"styles" yaml:"styles"`
	Text   string    `json:"text"   yaml:"text"`
}

// BlockType implements ContentBlock.
func (b *TextBlock) BlockType() BlockType { return BlockTypeText }

// BlockStyles implements ContentBlock.
func (b *TextBlock) BlockStyles() []string { return b.Styles }

// CTABlock is a call-to-action.
type CTABlock struct {
	Type     BlockType `json:"type"               yaml:"type"`
	Styles   []string  `json:"styles"             yaml:"styles"`
	Title    string    `json:"title"              yaml:"title"`
	Subtitle string    `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	URL      string    `json:"url"                yaml:"url"`
}

// BlockType implements ContentBlock.
func (b *CTABlock) BlockType() BlockType { return BlockTypeCTA }

// BlockStyles implements ContentBlock.
func (b *CTABlock) BlockStyles() []string { return b.Styles }

// CustomBlock is the open-ended variant of the union. Known fields are typed;
// any additional fields the CMS attaches are preserved verbatim in Fields,
// keyed by their JSON name.
type CustomBlock struct {
	Type    BlockType                  `json:"type"    yaml:"type"`
	Styles  []string                   `json:"styles"  yaml:"styles"`
	BlockID string                     `json:"blockId" yaml:"blockId"`
	Fields  map[string]json.RawMessage `json:"-"       yaml:"-"`
}

// BlockType implements ContentBlock.
func (b *CustomBlock) BlockType() BlockType { return BlockTypeCustom }

// BlockStyles implements ContentBlock.
func (b *CustomBlock) BlockStyles() []string { return b.Styles }

// UnmarshalJSON implements json.Unmarshaler. Fields other than type, styles
// and blockId land in Fields undecoded.
func (b *CustomBlock) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("parsing custom block: %w", err)
	}

	block := CustomBlock{Type: BlockTypeCustom, Fields: map[string]json.RawMessage{}}

	for key, value := range raw {
		switch key {
		case "type":
			if err := json.Unmarshal(value, &block.Type); err != nil {
				return fmt.Errorf("parsing custom block type: %w", err)
			}
		case "styles":
			if err := json.Unmarshal(value, &block.Styles); err != nil {
				return fmt.Errorf("parsing custom block styles: %w", err)
			}
		case "blockId":
			if err := json.Unmarshal(value, &block.BlockID); err != nil {
				return fmt.Errorf("parsing custom block id: %w", err)
			}
		default:
			block.Fields[key] = value
		}
	}

	*b = block

	return nil
}

// MarshalJSON implements json.Marshaler, flattening Fields back alongside
// the known keys.
func (b *CustomBlock) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(b.Fields)+3)
	for key, value := range b.Fields {
		out[key] = value
	}

	out["type"] = BlockTypeCustom
	out["styles"] = b.Styles
	out["blockId"] = b.BlockID

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encoding custom block: %w", err)
	}

	return data, nil
}

// Field decodes the named extra field into out. It returns false when the
// field is absent.
func (b *CustomBlock) Field(name string, out interface{}) (bool, error) {
	raw, ok := b.Fields[name]
	if !ok {
		return false, nil
	}

	err := json.Unmarshal(raw, out)
	if err != nil {
		return true, fmt.Errorf("parsing custom block field %q: %w", name, err)
	}

	return true, nil
}

// ContentBlocks is a page body: an ordered sequence of content blocks
// decoded by their type tag.
type ContentBlocks []ContentBlock

// UnmarshalJSON implements json.Unmarshaler.
func (c *ContentBlocks) UnmarshalJSON(data []byte) error {
	var rawBlocks []json.RawMessage

	err := json.Unmarshal(data, &rawBlocks)
	if err != nil {
		return fmt.Errorf("parsing content blocks: %w", err)
	}

	blocks := make(ContentBlocks, 0, len(rawBlocks))

	for i, raw := range rawBlocks {
		block, err := unmarshalBlock(raw)
		if err != nil {
			return fmt.Errorf("parsing content block %d: %w", i, err)
		}

		blocks = append(blocks, block)
	}

	*c = blocks

	return nil
}

func unmarshalBlock(data []byte) (ContentBlock, error) {
	var probe struct {
		Type BlockType `json:"type"`
	}

	err := json.Unmarshal(data, &probe)
	if err != nil {
		return nil, fmt.Errorf("probing block type: %w", err)
	}

	block := newBlock(probe.Type)
	if block == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockType, probe.Type)
	}

	err = json.Unmarshal(data, block)
	if err != nil {
		return nil, fmt.Errorf("parsing %s block: %w", probe.Type, err)
	}

	return block, nil
}

func newBlock(blockType BlockType) ContentBlock {
	switch blockType {
	case BlockTypeHeader:
		return &HeaderBlock{}
	case BlockTypeList:
		return &ListBlock{}
	case BlockTypeEmbed:
		return &EmbedBlock{}
	case BlockTypeImage:
		return &ImageBlock{}
	case BlockTypeCode:
		return &CodeBlock{}
	case BlockTypeText:
		return &TextBlock{}
	case BlockTypeCTA:
		return &CTABlock{}
	case BlockTypeCustom:
		return &CustomBlock{}
	default:
		return nil
	}
}
