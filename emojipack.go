// Package emojipack converts a set of independently authored square emoji
// images into the artifacts a game client needs to render them as custom
// glyphs: a packed glyph atlas, a bitmap font provider mapping atlas cells to
// Private Use Area codepoints, and a name-to-character emoticon map for chat
// substitution.
//
// The pipeline holds the full input set in memory, which is fine for the
// moderate input counts of a typical emoji pack but does not stream; packing
// hundreds of thousands of glyphs will allocate proportionally.
package emojipack

import (
	"image"
)

// GlyphSize is the pixel resolution of one glyph cell. Every input image is
// resampled to GlyphSize x GlyphSize before packing, and the font provider's
// height and ascent equal it.
const GlyphSize = 8

// AtlasColumns is the number of glyph cells per atlas row. It is tied to the
// 16-character row strings of the font provider format and must not change
// independently of it.
const AtlasColumns = 16

// Result holds the three artifacts of a pack run, ready for a Writer.
type Result struct {
	Glyphs    []AllocatedGlyph
	Atlas     *image.NRGBA
	Font      FontDescriptor
	Emoticons map[string]string
}

// Pack runs the pipeline over the loaded assets: normalize each image to the
// glyph cell size, allocate codepoints in name order, composite the atlas and
// build the font provider and emoticon map. The texture argument is the
// resource location of the atlas written into the font provider, e.g.
// "emoji:font/emoji.png". Assets may be passed in any order; allocation sorts
// by name so identical input sets produce identical results.
func Pack(assets []EmojiAsset, texture string) (*Result, error) {
	glyphs := make([]NormalizedGlyph, len(assets))
	for i, asset := range assets {
		glyphs[i] = Normalize(asset)
	}
	allocated, err := Allocate(glyphs)
	if err != nil {
		return nil, err
	}
	return &Result{
		Glyphs:    allocated,
		Atlas:     PackAtlas(allocated),
		Font:      BuildFont(texture, allocated),
		Emoticons: BuildEmoticons(allocated),
	}, nil
}
