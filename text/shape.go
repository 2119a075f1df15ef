package text

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/f4ze/editor/internal/cache"
)

// Glyph is one positioned glyph. X and Y are pixel offsets from the pen
// origin on the baseline.
type Glyph struct {
	ID   uint16
	X, Y float64
}

// Run is a shaped line of text.
type Run struct {
	Glyphs    []Glyph
	Advance   float64
	Direction Direction
	face      *face
	size      float64
}

// Shape converts s into positioned glyphs in visual order. Runs are cached
// per string and style; the glyph slice is shared and must not be modified.
func (b *Bank) Shape(s string, st Style) (Run, error) {
	key := runKey{text: s, style: st}
	if run, ok := b.runs.Get(key); ok {
		return run, nil
	}
	run, err := b.shape(s, st)
	if err != nil {
		return Run{}, err
	}
	b.runs.Set(key, run)
	return run, nil
}

// CacheStats reports the shaped run cache counters.
func (b *Bank) CacheStats() cache.Stats {
	return b.runs.Stats()
}

func (b *Bank) shape(s string, st Style) (Run, error) {
	f, err := b.resolve(st)
	if err != nil {
		return Run{}, err
	}
	run := Run{Direction: DetectDirection(s), face: f, size: st.Size}
	if s == "" || st.Size <= 0 {
		return run, nil
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: run.Direction.shaping(),
		Face:      font.NewFace(f.shape),
		Size:      floatToFixed(st.Size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := b.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	b.shapers.Put(hb)

	run.Glyphs = make([]Glyph, len(out.Glyphs))
	pen := 0.0
	for i, g := range out.Glyphs {
		run.Glyphs[i] = Glyph{
			ID: uint16(g.GlyphID), //nolint:gosec // glyph ids of TrueType fonts fit in 16 bits
			X:  pen + fixedToFloat(g.XOffset),
			Y:  -fixedToFloat(g.YOffset),
		}
		pen += fixedToFloat(g.Advance)
	}
	run.Advance = pen
	return run, nil
}

// Measure returns the advance width of s in pixels, or 0 when no font can be
// resolved.
func (b *Bank) Measure(s string, st Style) float64 {
	run, err := b.Shape(s, st)
	if err != nil {
		return 0
	}
	return run.Advance
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
