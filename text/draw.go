package text

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"

	"github.com/f4ze/editor/internal/blend"
)

// Draw fills s onto dst with the pen starting at (x, baseline).
func (b *Bank) Draw(dst *image.NRGBA, s string, st Style, x, baseline float64, col color.NRGBA) error {
	run, err := b.Shape(s, st)
	if err != nil {
		return err
	}
	return run.Draw(dst, x, baseline, col)
}

// Draw fills the run's glyph outlines onto dst. Coverage from the rasterizer
// scales the colour's alpha before source-over compositing.
func (r Run) Draw(dst *image.NRGBA, x, baseline float64, col color.NRGBA) error {
	if len(r.Glyphs) == 0 || col.A == 0 {
		return nil
	}

	// Generous box around the line; glyphs rarely leave it.
	box := image.Rect(
		int(math.Floor(x-r.size)),
		int(math.Floor(baseline-1.5*r.size)),
		int(math.Ceil(x+r.Advance+r.size)),
		int(math.Ceil(baseline+r.size)),
	).Intersect(dst.Bounds())
	if box.Empty() {
		return nil
	}

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	ox := float32(x) - float32(box.Min.X)
	oy := float32(baseline) - float32(box.Min.Y)
	ppem := floatToFixed(r.size)
	var buf sfnt.Buffer
	for _, g := range r.Glyphs {
		segs, err := r.face.outline.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			continue // glyph without outline, e.g. a space
		}
		gx, gy := ox+float32(g.X), oy+float32(g.Y)
		open := false
		for _, seg := range segs {
			p := func(i int) (float32, float32) {
				return gx + float32(seg.Args[i].X)/64, gy + float32(seg.Args[i].Y)/64
			}
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					z.ClosePath()
				}
				z.MoveTo(p(0))
				open = true
			case sfnt.SegmentOpLineTo:
				z.LineTo(p(0))
			case sfnt.SegmentOpQuadTo:
				x1, y1 := p(0)
				x2, y2 := p(1)
				z.QuadTo(x1, y1, x2, y2)
			case sfnt.SegmentOpCubeTo:
				x1, y1 := p(0)
				x2, y2 := p(1)
				x3, y3 := p(2)
				z.CubeTo(x1, y1, x2, y2, x3, y3)
			}
		}
		if open {
			z.ClosePath()
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for my := 0; my < box.Dy(); my++ {
		for mx := 0; mx < box.Dx(); mx++ {
			cov := mask.Pix[my*mask.Stride+mx]
			if cov == 0 {
				continue
			}
			sa := byte((uint32(col.A)*uint32(cov) + 127) / 255)
			i := dst.PixOffset(box.Min.X+mx, box.Min.Y+my)
			p := dst.Pix[i : i+4 : i+4]
			p[0], p[1], p[2], p[3] = blend.Pixel(blend.SourceOver, col.R, col.G, col.B, sa, p[0], p[1], p[2], p[3])
		}
	}
	return nil
}
