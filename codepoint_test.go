package emojipack

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func syntheticGlyphs(n int) []NormalizedGlyph {
	glyphs := make([]NormalizedGlyph, n)
	for i := range glyphs {
		glyphs[i] = NormalizedGlyph{Name: fmt.Sprintf("emoji%06d", i)}
	}
	return glyphs
}

func TestAllocateOrder(t *testing.T) {
	glyphs := []NormalizedGlyph{
		{Name: "zebra"},
		{Name: "ant"},
		{Name: "bee"},
	}
	allocated, err := Allocate(glyphs)
	test.Error(t, err)
	test.T(t, len(allocated), 3)
	test.String(t, allocated[0].Name, "ant")
	test.String(t, allocated[1].Name, "bee")
	test.String(t, allocated[2].Name, "zebra")
	test.T(t, allocated[0].Codepoint, rune(0xE000))
	test.T(t, allocated[1].Codepoint, rune(0xE001))
	test.T(t, allocated[2].Codepoint, rune(0xE002))
	test.T(t, allocated[2].GridIndex, 2)
}

func TestAllocateByteOrder(t *testing.T) {
	// byte-wise: uppercase sorts before lowercase
	allocated, err := Allocate([]NormalizedGlyph{{Name: "a"}, {Name: "B"}})
	test.Error(t, err)
	test.String(t, allocated[0].Name, "B")
	test.String(t, allocated[1].Name, "a")
}

func TestAllocateUnique(t *testing.T) {
	allocated, err := Allocate(syntheticGlyphs(1000))
	test.Error(t, err)
	seen := map[rune]bool{}
	for _, glyph := range allocated {
		test.That(t, !seen[glyph.Codepoint])
		seen[glyph.Codepoint] = true
	}
}

func TestAllocateDeterminism(t *testing.T) {
	a, err := Allocate(syntheticGlyphs(100))
	test.Error(t, err)
	b, err := Allocate(syntheticGlyphs(100))
	test.Error(t, err)
	for i := range a {
		test.String(t, a[i].Name, b[i].Name)
		test.T(t, a[i].Codepoint, b[i].Codepoint)
	}
}

func TestAllocateRangeTransition(t *testing.T) {
	allocated, err := Allocate(syntheticGlyphs(6401))
	test.Error(t, err)
	test.T(t, allocated[6399].Codepoint, rune(0xF8FF))
	test.T(t, allocated[6400].Codepoint, rune(0xF0000))
}

func TestAllocateSecondRangeTransition(t *testing.T) {
	n := 6400 + 65534 + 1
	allocated, err := Allocate(syntheticGlyphs(n))
	test.Error(t, err)
	test.T(t, allocated[n-2].Codepoint, rune(0xFFFFD))
	test.T(t, allocated[n-1].Codepoint, rune(0x100000))
}

func TestAllocateCapacity(t *testing.T) {
	allocated, err := Allocate(syntheticGlyphs(Capacity))
	test.Error(t, err)
	test.T(t, allocated[Capacity-1].Codepoint, rune(0x10FFFD))

	_, err = Allocate(syntheticGlyphs(Capacity + 1))
	capErr, ok := err.(CapacityExceededError)
	test.That(t, ok)
	test.T(t, capErr.Count, Capacity+1)
}
