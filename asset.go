package emojipack

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// EmojiAsset is a named source image as authored, before normalization. Name
// is the input file's base name with the extension stripped, verbatim; it is
// the key of the emoticon map and the identifier used in error messages.
type EmojiAsset struct {
	Name  string
	Image image.Image
}

// NewPNGAsset parses a PNG image.
func NewPNGAsset(name string, r io.Reader) (EmojiAsset, error) {
	return newAsset(name, png.Decode, r)
}

// NewJPEGAsset parses a JPEG image.
func NewJPEGAsset(name string, r io.Reader) (EmojiAsset, error) {
	return newAsset(name, jpeg.Decode, r)
}

// NewGIFAsset parses a GIF image, using its first frame.
func NewGIFAsset(name string, r io.Reader) (EmojiAsset, error) {
	return newAsset(name, gif.Decode, r)
}

// NewTIFFAsset parses a TIFF image.
func NewTIFFAsset(name string, r io.Reader) (EmojiAsset, error) {
	return newAsset(name, tiff.Decode, r)
}

func newAsset(name string, decode func(io.Reader) (image.Image, error), r io.Reader) (EmojiAsset, error) {
	img, err := decode(r)
	if err != nil {
		return EmojiAsset{}, InvalidAssetError{Name: name, Err: err}
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != h {
		return EmojiAsset{}, InvalidAssetError{Name: name, Width: w, Height: h}
	}
	return EmojiAsset{Name: name, Image: img}, nil
}

// AssetName derives the emoji name from a file name: the base name with the
// extension stripped. No case folding or other transformation is applied.
func AssetName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// IsImageFile reports whether the file name has a recognized image extension.
func IsImageFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff":
		return true
	}
	return false
}

// DecodeAsset parses an asset from r, choosing the decoder by the file name's
// extension.
func DecodeAsset(filename string, r io.Reader) (EmojiAsset, error) {
	name := AssetName(filename)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return NewPNGAsset(name, r)
	case ".jpg", ".jpeg":
		return NewJPEGAsset(name, r)
	case ".gif":
		return NewGIFAsset(name, r)
	case ".tif", ".tiff":
		return NewTIFFAsset(name, r)
	}
	return EmojiAsset{}, InvalidAssetError{Name: name, Err: fmt.Errorf("unsupported image format %q", filepath.Ext(filename))}
}

// AssetSet collects loaded assets and rejects duplicate names, which the
// allocator and the emoticon map cannot represent. The zero value is ready to
// use.
type AssetSet struct {
	assets []EmojiAsset
	names  map[string]bool
}

// Add appends an asset to the set, or returns DuplicateNameError if an asset
// with the same name was added before.
func (s *AssetSet) Add(asset EmojiAsset) error {
	if s.names[asset.Name] {
		return DuplicateNameError{Name: asset.Name}
	}
	if s.names == nil {
		s.names = map[string]bool{}
	}
	s.names[asset.Name] = true
	s.assets = append(s.assets, asset)
	return nil
}

// Len returns the number of assets in the set.
func (s *AssetSet) Len() int {
	return len(s.assets)
}

// Assets returns the assets in insertion order.
func (s *AssetSet) Assets() []EmojiAsset {
	return s.assets
}
