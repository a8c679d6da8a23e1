package emojipack

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/tdewolff/test"
)

func encodePNG(t *testing.T, w, h int, c color.NRGBA) *bytes.Buffer {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	buf := &bytes.Buffer{}
	err := png.Encode(buf, img)
	test.Error(t, err)
	return buf
}

func TestNewPNGAsset(t *testing.T) {
	asset, err := NewPNGAsset("smile", encodePNG(t, 32, 32, color.NRGBA{255, 0, 0, 255}))
	test.Error(t, err)
	test.String(t, asset.Name, "smile")
	test.T(t, asset.Image.Bounds().Dx(), 32)
}

func TestNonSquareRejected(t *testing.T) {
	_, err := NewPNGAsset("tall", encodePNG(t, 10, 12, color.NRGBA{}))
	invalid, ok := err.(InvalidAssetError)
	test.That(t, ok)
	test.String(t, invalid.Name, "tall")
	test.T(t, invalid.Width, 10)
	test.T(t, invalid.Height, 12)
}

func TestUndecodableRejected(t *testing.T) {
	_, err := NewPNGAsset("broken", bytes.NewBufferString("not a png"))
	invalid, ok := err.(InvalidAssetError)
	test.That(t, ok)
	test.That(t, invalid.Err != nil)
}

func TestAssetName(t *testing.T) {
	test.String(t, AssetName("smile.png"), "smile")
	test.String(t, AssetName("dir/Party_Blob.PNG"), "Party_Blob")
	test.String(t, AssetName("dots.in.name.gif"), "dots.in.name")
}

func TestDecodeAssetExtension(t *testing.T) {
	asset, err := DecodeAsset("wave.png", encodePNG(t, 8, 8, color.NRGBA{0, 255, 0, 255}))
	test.Error(t, err)
	test.String(t, asset.Name, "wave")

	_, err = DecodeAsset("wave.bmp", encodePNG(t, 8, 8, color.NRGBA{}))
	_, ok := err.(InvalidAssetError)
	test.That(t, ok)
}

func TestAssetSetDuplicate(t *testing.T) {
	var set AssetSet
	err := set.Add(EmojiAsset{Name: "smile"})
	test.Error(t, err)
	err = set.Add(EmojiAsset{Name: "frown"})
	test.Error(t, err)

	err = set.Add(EmojiAsset{Name: "smile"})
	dup, ok := err.(DuplicateNameError)
	test.That(t, ok)
	test.String(t, dup.Name, "smile")
	test.T(t, set.Len(), 2)
}
