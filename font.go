package emojipack

// FontDescriptor describes one bitmap font provider: which codepoints map to
// which cells of the atlas texture. Chars holds one string per atlas row;
// character i of a row string is the codepoint of the glyph in column i, or
// U+0000 for an unused cell. Every row string is exactly AtlasColumns
// characters long, the last row null-padded if partially filled.
type FontDescriptor struct {
	File   string   `json:"file"`
	Height int      `json:"height"`
	Ascent int      `json:"ascent"`
	Chars  []string `json:"chars"`
}

// BuildFont builds the font provider for the glyphs, in grid order. The file
// argument is the resource location of the atlas texture.
func BuildFont(file string, glyphs []AllocatedGlyph) FontDescriptor {
	rows := (len(glyphs) + AtlasColumns - 1) / AtlasColumns
	chars := make([]string, rows)
	for r := 0; r < rows; r++ {
		row := make([]rune, AtlasColumns) // unused cells stay U+0000
		for c := 0; c < AtlasColumns; c++ {
			if i := r*AtlasColumns + c; i < len(glyphs) {
				row[c] = glyphs[i].Codepoint
			}
		}
		chars[r] = string(row)
	}
	return FontDescriptor{
		File:   file,
		Height: GlyphSize,
		Ascent: GlyphSize,
		Chars:  chars,
	}
}

// BuildEmoticons maps each glyph name to the single-character string holding
// its codepoint. Names are unique by construction, see AssetSet.
func BuildEmoticons(glyphs []AllocatedGlyph) map[string]string {
	emoticons := make(map[string]string, len(glyphs))
	for _, glyph := range glyphs {
		emoticons[glyph.Name] = string(glyph.Codepoint)
	}
	return emoticons
}
