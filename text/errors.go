package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFonts is returned when a bank has nothing to fall back to.
	ErrNoFonts = errors.New("text: no fonts registered")
)

// FontParseError is returned when a font file cannot be parsed.
type FontParseError struct {
	Family  string
	Variant Variant
	Err     error
}

func (e *FontParseError) Error() string {
	return fmt.Sprintf("text: parse %s %s: %v", e.Family, e.Variant, e.Err)
}

func (e *FontParseError) Unwrap() error { return e.Err }
