package emojipack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// Fixed output file names inside the output directory.
const (
	AtlasFile     = "emoji.png"      // the packed glyph atlas
	FontFile      = "emoji.json"     // the font provider document
	EmoticonsFile = "emoticons.json" // the name-to-character map
)

// Writer persists a pack result to the three fixed output locations inside
// Dir, truncating any existing files. Each file is written to a temporary
// path and renamed into place, so a failure never leaves a previous output
// set half overwritten.
type Writer struct {
	Dir     string // output directory, created if missing
	Compact bool   // minify the JSON documents instead of indenting them
}

// fontProviders is the wrapper document the client's font loader reads; the
// descriptor itself is one bitmap provider entry.
type fontProviders struct {
	Providers []fontProvider `json:"providers"`
}

type fontProvider struct {
	Type string `json:"type"`
	FontDescriptor
}

// Write writes the atlas image, the font provider document and the emoticon
// map. Output is byte-identical across runs for identical results: the atlas
// encodes deterministically and JSON object keys marshal in sorted order.
func (w *Writer) Write(res *Result) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return err
	}

	var atlas bytes.Buffer
	if err := png.Encode(&atlas, res.Atlas); err != nil {
		return fmt.Errorf("encode atlas: %w", err)
	}
	if err := w.writeFile(AtlasFile, atlas.Bytes()); err != nil {
		return err
	}

	providers := fontProviders{
		Providers: []fontProvider{{Type: "bitmap", FontDescriptor: res.Font}},
	}
	if err := w.writeJSON(FontFile, providers); err != nil {
		return err
	}
	return w.writeJSON(EmoticonsFile, res.Emoticons)
}

func (w *Writer) writeJSON(name string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if w.Compact {
		var buf bytes.Buffer
		if err := mjson.Minify(minify.New(), &buf, bytes.NewReader(b), nil); err != nil {
			return err
		}
		b = buf.Bytes()
	}
	return w.writeFile(name, b)
}

func (w *Writer) writeFile(name string, data []byte) error {
	path := filepath.Join(w.Dir, name)
	tmp, err := os.CreateTemp(w.Dir, name+".tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
