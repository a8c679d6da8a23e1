package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tdewolff/argp"

	"github.com/fedimoji/emojipack"
)

type Generate struct {
	EmojiDir  string `short:"d" default:"./emoji" desc:"Directory containing emoji images"`
	OutputDir string `short:"o" default:"./out" desc:"Output directory"`
	Texture   string `short:"t" default:"emoji:font/emoji.png" desc:"Resource location of the atlas texture in the font provider"`
	Compact   bool   `short:"c" desc:"Minify the JSON output"`
	Verbose   bool   `short:"v" desc:"Log every glyph"`
}

func main() {
	log.SetFlags(0)
	cmd := argp.NewCmd(&Generate{}, "Pack square emoji images into a glyph atlas, bitmap font provider and emoticon map")
	cmd.Parse()
	cmd.PrintHelp()
}

func (cmd *Generate) Run() error {
	entries, err := os.ReadDir(cmd.EmojiDir)
	if err != nil {
		return err
	}

	var set emojipack.AssetSet
	for _, entry := range entries {
		if entry.IsDir() || !emojipack.IsImageFile(entry.Name()) {
			continue
		}
		asset, err := loadAsset(filepath.Join(cmd.EmojiDir, entry.Name()))
		if err != nil {
			return err
		}
		if err := set.Add(asset); err != nil {
			return err
		}
		if cmd.Verbose {
			b := asset.Image.Bounds()
			log.Printf("loaded %q (%dx%d)", asset.Name, b.Dx(), b.Dy())
		}
	}
	if set.Len() == 0 {
		return fmt.Errorf("no emoji images in %s", cmd.EmojiDir)
	}

	res, err := emojipack.Pack(set.Assets(), cmd.Texture)
	if err != nil {
		return err
	}
	if cmd.Verbose {
		for _, glyph := range res.Glyphs {
			log.Printf("%s U+%04X cell (%d,%d)", glyph.Name, glyph.Codepoint,
				glyph.GridIndex/emojipack.AtlasColumns, glyph.GridIndex%emojipack.AtlasColumns)
		}
	}

	w := emojipack.Writer{Dir: cmd.OutputDir, Compact: cmd.Compact}
	if err := w.Write(res); err != nil {
		return err
	}
	log.Printf("wrote %d glyphs to %s", len(res.Glyphs), cmd.OutputDir)
	return nil
}

func loadAsset(path string) (emojipack.EmojiAsset, error) {
	f, err := os.Open(path)
	if err != nil {
		return emojipack.EmojiAsset{}, err
	}
	defer f.Close()
	return emojipack.DecodeAsset(filepath.Base(path), f)
}
