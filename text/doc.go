// Package text measures and rasterizes single-line text for the editor.
//
// Fonts are grouped into families of four variants (regular, bold, italic,
// bold italic) held in a [Bank]. The default bank carries the Go font
// families; any family the bank does not know falls back to Go, and
// "monospace"-style names map to Go Mono.
//
// Shaping uses the HarfBuzz port in github.com/go-text/typesetting, so kerning
// and ligatures are reflected in measured widths. Glyph outlines come from
// golang.org/x/image/font/sfnt and are filled with golang.org/x/image/vector.
//
// Example:
//
//	bank := text.DefaultBank()
//	style := text.Style{Family: "Arial", Size: 16, Bold: true}
//	w := bank.Measure("Hello", style)
//	_ = bank.Draw(img, "Hello", style, 10, 26, color.NRGBA{A: 255})
package text
