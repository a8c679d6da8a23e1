package emojipack

import (
	"image"

	"golang.org/x/image/draw"
)

// NormalizedGlyph is an emoji resampled to the fixed glyph cell resolution of
// GlyphSize x GlyphSize pixels.
type NormalizedGlyph struct {
	Name  string
	Image *image.NRGBA
}

// Normalize resamples the asset to exactly GlyphSize x GlyphSize using the
// Catmull-Rom kernel. Sources smaller than the cell are scaled up as well;
// the cell size is fixed. The source image is not retained.
func Normalize(asset EmojiAsset) NormalizedGlyph {
	dst := image.NewNRGBA(image.Rect(0, 0, GlyphSize, GlyphSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), asset.Image, asset.Image.Bounds(), draw.Src, nil)
	return NormalizedGlyph{Name: asset.Name, Image: dst}
}
