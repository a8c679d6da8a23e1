package emojipack

import (
	"image"
	"image/draw"
)

// PackAtlas composites the glyphs into a single image on a fixed grid of
// AtlasColumns cells of GlyphSize pixels per row. The atlas is
// AtlasColumns*GlyphSize pixels wide and ceil(n/AtlasColumns)*GlyphSize
// pixels tall; cells past the last glyph stay fully transparent.
func PackAtlas(glyphs []AllocatedGlyph) *image.NRGBA {
	rows := (len(glyphs) + AtlasColumns - 1) / AtlasColumns
	atlas := image.NewNRGBA(image.Rect(0, 0, AtlasColumns*GlyphSize, rows*GlyphSize))
	for _, glyph := range glyphs {
		col := glyph.GridIndex % AtlasColumns
		row := glyph.GridIndex / AtlasColumns
		cell := image.Rect(col*GlyphSize, row*GlyphSize, (col+1)*GlyphSize, (row+1)*GlyphSize)
		draw.Draw(atlas, cell, glyph.Image, glyph.Image.Bounds().Min, draw.Src)
	}
	return atlas
}
