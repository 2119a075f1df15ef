// Package raster paints coverage predicates onto RGBA8 buffers.
//
// A pixel is covered when its centre (x+0.5, y+0.5) satisfies the predicate.
// There is no anti-aliasing: output is a pure function of the geometry, so the
// same document always rasterizes to the same bytes.
package raster

import (
	"math"

	"github.com/f4ze/editor/internal/blend"
	"github.com/f4ze/editor/internal/geom"
)

// Canvas is a view over a non-premultiplied RGBA8 buffer.
type Canvas struct {
	Pix    []byte
	Width  int
	Height int
}

// Coverage reports whether a point is inside the painted region.
type Coverage func(p geom.Point) bool

// Paint composites col with mode onto every pixel inside bounds whose centre
// satisfies cov. Bounds are clipped to the canvas.
func (c Canvas) Paint(bounds geom.Rect, cov Coverage, col [4]byte, mode blend.Mode) {
	b := bounds.Normalize()
	x0 := max(0, int(math.Floor(b.X)))
	y0 := max(0, int(math.Floor(b.Y)))
	x1 := min(c.Width, int(math.Ceil(b.X+b.W))+1)
	y1 := min(c.Height, int(math.Ceil(b.Y+b.H))+1)
	for y := y0; y < y1; y++ {
		row := y * c.Width * 4
		for x := x0; x < x1; x++ {
			if !cov(geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}) {
				continue
			}
			i := row + x*4
			p := c.Pix[i : i+4 : i+4]
			p[0], p[1], p[2], p[3] = blend.Pixel(mode, col[0], col[1], col[2], col[3], p[0], p[1], p[2], p[3])
		}
	}
}

// FillRect covers pixels whose centre lies in the half-open box
// [x, x+w) x [y, y+h).
func (c Canvas) FillRect(r geom.Rect, col [4]byte, mode blend.Mode) {
	n := r.Normalize()
	c.Paint(n, func(p geom.Point) bool {
		return p.X >= n.X && p.X < n.X+n.W && p.Y >= n.Y && p.Y < n.Y+n.H
	}, col, mode)
}

// StrokeRect covers pixels within width/2 of the rectangle's outline.
func (c Canvas) StrokeRect(r geom.Rect, width float64, col [4]byte, mode blend.Mode) {
	hw := width / 2
	c.Paint(r.Inset(hw), func(p geom.Point) bool {
		return geom.RectOutlineDistance(p, r) <= hw
	}, col, mode)
}

// Polyline strokes the connected segments with round caps and joins. Each
// pixel is composited once even where segments overlap.
func (c Canvas) Polyline(pts []geom.Point, width float64, col [4]byte, mode blend.Mode) {
	if len(pts) == 0 || width <= 0 {
		return
	}
	hw := width / 2
	c.Paint(boundsOf(pts).Inset(hw), func(p geom.Point) bool {
		if len(pts) == 1 {
			return math.Hypot(p.X-pts[0].X, p.Y-pts[0].Y) <= hw
		}
		for i := 1; i < len(pts); i++ {
			if geom.SegmentDistance(p, pts[i-1], pts[i]) <= hw {
				return true
			}
		}
		return false
	}, col, mode)
}

// Segment strokes a-b with butt caps.
func (c Canvas) Segment(a, b geom.Point, width float64, col [4]byte, mode blend.Mode) {
	if width <= 0 {
		return
	}
	hw := width / 2
	c.Paint(boundsOf([]geom.Point{a, b}).Inset(hw), func(p geom.Point) bool {
		return geom.OnButtSegment(p, a, b, hw)
	}, col, mode)
}

// DashedRect strokes the outline with an on/off dash pattern. The dash phase
// carries across corners, starting at the top-left.
func (c Canvas) DashedRect(r geom.Rect, width, on, off float64, col [4]byte) {
	n := r.Normalize()
	corners := []geom.Point{
		{X: n.X, Y: n.Y},
		{X: n.X + n.W, Y: n.Y},
		{X: n.X + n.W, Y: n.Y + n.H},
		{X: n.X, Y: n.Y + n.H},
		{X: n.X, Y: n.Y},
	}
	period := on + off
	phase := 0.0
	for i := 1; i < len(corners); i++ {
		a, b := corners[i-1], corners[i]
		length := math.Hypot(b.X-a.X, b.Y-a.Y)
		if length == 0 {
			continue
		}
		for s := -phase; s < length; s += period {
			start := math.Max(0, s)
			end := math.Min(length, s+on)
			if end <= start {
				continue
			}
			c.Segment(lerp(a, b, start/length), lerp(a, b, end/length), width, col, blend.SourceOver)
		}
		phase = math.Mod(phase+length, period)
	}
}

func lerp(a, b geom.Point, t float64) geom.Point {
	return geom.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func boundsOf(pts []geom.Point) geom.Rect {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return geom.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
