package canvas

import (
	"errors"
	"fmt"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrNoLargeVariant = errors.New("image has no large variant")
	ErrNoImages       = errors.New("image block has no images")
)

// The position of the "large" rendition among an image's variants. The CMS
// orders variants by ascending size and does not label them, so the second
// entry is by upstream convention the large one.
const largeVariantIndex = 1

// BlockHasStyle reports whether the block carries the given style tag.
// Styles are compared case-insensitively.
func BlockHasStyle(block ContentBlock, style string) bool {
	for _, candidate := range block.BlockStyles() {
		if strings.EqualFold(candidate, style) {
			return true
		}
	}

	return false
}

// LargeImageVariant returns the large rendition of an image, which the CMS
// places at the second position of the variant list. The image must carry at
// least two variants; fewer fail with ErrNoLargeVariant rather than falling
// back to another rendition.
func LargeImageVariant(image Image) (ImageVariant, error) {
	if len(image.Variants) <= largeVariantIndex {
		return ImageVariant{}, fmt.Errorf("%w: %d variant(s)", ErrNoLargeVariant, len(image.Variants))
	}

	return image.Variants[largeVariantIndex], nil
}

// FirstImage returns the first image of an image block. The block must carry
// at least one image; an empty block fails with ErrNoImages.
func FirstImage(block *ImageBlock) (Image, error) {
	if len(block.Images) == 0 {
		return Image{}, ErrNoImages
	}

	return block.Images[0], nil
}
