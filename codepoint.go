package emojipack

import "sort"

// codepointRanges are the Private Use Area blocks glyph codepoints are drawn
// from, consumed in order. The plane 15 and 16 ranges stop at U+xFFFD to
// exclude each plane's two trailing noncharacters.
var codepointRanges = [...]struct{ lo, hi rune }{
	{0xE000, 0xF8FF},
	{0xF0000, 0xFFFFD},
	{0x100000, 0x10FFFD},
}

// Capacity is the total number of codepoints available across all ranges.
const Capacity = 6400 + 65534 + 65534

// AllocatedGlyph is a normalized glyph with its assigned codepoint and its
// ordinal position in the atlas grid. The glyph sits at atlas row
// GridIndex/AtlasColumns, column GridIndex%AtlasColumns.
type AllocatedGlyph struct {
	NormalizedGlyph
	Codepoint rune
	GridIndex int
}

// Allocate sorts the glyphs by name, ascending byte-wise, and assigns each
// one the next free codepoint. Sorting by name rather than input order makes
// the name-to-codepoint mapping stable across runs regardless of how the
// input directory happens to be enumerated. Returns CapacityExceededError if
// there are more glyphs than codepoints.
func Allocate(glyphs []NormalizedGlyph) ([]AllocatedGlyph, error) {
	if len(glyphs) > Capacity {
		return nil, CapacityExceededError{Count: len(glyphs)}
	}

	sorted := make([]NormalizedGlyph, len(glyphs))
	copy(sorted, glyphs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	allocated := make([]AllocatedGlyph, len(sorted))
	ri := 0
	next := codepointRanges[0].lo
	for i, glyph := range sorted {
		for next > codepointRanges[ri].hi {
			ri++
			next = codepointRanges[ri].lo
		}
		allocated[i] = AllocatedGlyph{
			NormalizedGlyph: glyph,
			Codepoint:       next,
			GridIndex:       i,
		}
		next++
	}
	return allocated, nil
}
