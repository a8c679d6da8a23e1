package emojipack

import "fmt"

// InvalidAssetError is returned when an input image cannot be decoded or is
// not square.
type InvalidAssetError struct {
	Name   string
	Width  int
	Height int
	Err    error // decode failure, nil for dimension failures
}

func (e InvalidAssetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid asset %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("invalid asset %q: %dx%d image is not square", e.Name, e.Width, e.Height)
}

func (e InvalidAssetError) Unwrap() error {
	return e.Err
}

// DuplicateNameError is returned when two input files resolve to the same
// emoji name.
type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate emoji name %q", e.Name)
}

// CapacityExceededError is returned when the input set is larger than the
// combined capacity of the codepoint ranges.
type CapacityExceededError struct {
	Count int // number of glyphs in the input set
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("cannot allocate codepoints for %d glyphs: %d beyond the %d available", e.Count, e.Count-Capacity, Capacity)
}
