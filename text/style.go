package text

import (
	"strconv"
	"strings"
)

// Variant selects one of the four faces of a family.
type Variant uint8

const (
	Regular Variant = iota
	Bold
	Italic
	BoldItalic
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold-italic"
	default:
		return "unknown"
	}
}

// VariantOf combines the weight and slant flags.
func VariantOf(bold, italic bool) Variant {
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	default:
		return Regular
	}
}

// Style describes how a run of text is set.
type Style struct {
	Family string
	// Size is the font size in pixels.
	Size   float64
	Bold   bool
	Italic bool
}

// Variant returns the face variant the style selects.
func (s Style) Variant() Variant {
	return VariantOf(s.Bold, s.Italic)
}

// FontString formats the style as a CSS font shorthand:
// "[italic ][bold ]<size>px <family>".
func (s Style) FontString() string {
	var sb strings.Builder
	if s.Italic {
		sb.WriteString("italic ")
	}
	if s.Bold {
		sb.WriteString("bold ")
	}
	sb.WriteString(strconv.FormatFloat(s.Size, 'f', -1, 64))
	sb.WriteString("px ")
	sb.WriteString(s.Family)
	return sb.String()
}
