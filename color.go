package editor

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a non-premultiplied 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// Common colours.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{}

	// SelectionBlue is the colour of the selection decoration.
	SelectionBlue = Color{0x00, 0x99, 0xff, 255}
)

// RGB creates an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex parses a colour in one of the forms "#RGB", "#RGBA", "#RRGGBB" or
// "#RRGGBBAA". The leading '#' is optional.
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	var v [8]uint8
	for i := 0; i < len(h); i++ {
		d, ok := hexDigit(h[i])
		if !ok || i >= len(v) {
			return Color{}, fmt.Errorf("%w: colour %q", ErrInvalidInput, s)
		}
		v[i] = d
	}
	switch len(h) {
	case 3:
		return Color{v[0] * 17, v[1] * 17, v[2] * 17, 255}, nil
	case 4:
		return Color{v[0] * 17, v[1] * 17, v[2] * 17, v[3] * 17}, nil
	case 6:
		return Color{v[0]<<4 | v[1], v[2]<<4 | v[3], v[4]<<4 | v[5], 255}, nil
	case 8:
		return Color{v[0]<<4 | v[1], v[2]<<4 | v[3], v[4]<<4 | v[5], v[6]<<4 | v[7]}, nil
	}
	return Color{}, fmt.Errorf("%w: colour %q", ErrInvalidInput, s)
}

// MustHex is like Hex but panics on malformed input. Intended for constants.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex formats the colour as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// NRGBA converts to the standard library colour type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// MarshalText encodes the colour as a hex string.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a hex string.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := Hex(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) bytes() [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}

// ptr returns a pointer to a copy of c.
func (c Color) ptr() *Color {
	return &c
}
