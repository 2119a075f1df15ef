// Package geom holds the shape geometry shared by the renderer and the
// hit-tester. Every predicate here is evaluated against a single point, so the
// rasterizer samples it at pixel centres and the hit-tester at pointer
// positions; both agree on what is inside.
package geom

import "math"

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box. W and H may be negative; use Normalize before
// containment checks.
type Rect struct {
	X, Y, W, H float64
}

// Normalize returns the rectangle with non-negative extent covering the same
// area.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	n := r.Normalize()
	return p.X >= n.X && p.X <= n.X+n.W && p.Y >= n.Y && p.Y <= n.Y+n.H
}

// Inset grows (d > 0) or shrinks (d < 0) the normalized rectangle on all sides.
func (r Rect) Inset(d float64) Rect {
	n := r.Normalize()
	return Rect{X: n.X - d, Y: n.Y - d, W: n.W + 2*d, H: n.H + 2*d}
}

// Circle is the disc inscribed in a shape's bounding box.
type Circle struct {
	CX, CY, R float64
}

// CircleOf returns the circle for the box: centred in the box, radius half the
// larger absolute side.
func CircleOf(r Rect) Circle {
	return Circle{
		CX: r.X + r.W/2,
		CY: r.Y + r.H/2,
		R:  math.Max(math.Abs(r.W), math.Abs(r.H)) / 2,
	}
}

// Contains reports whether p is within the radius.
func (c Circle) Contains(p Point) bool {
	return math.Hypot(p.X-c.CX, p.Y-c.CY) <= c.R
}

// OutlineDistance is the distance from p to the circle's outline.
func (c Circle) OutlineDistance(p Point) float64 {
	return math.Abs(math.Hypot(p.X-c.CX, p.Y-c.CY) - c.R)
}

// Triangle has its apex at the top centre of the box and its base along the
// bottom edge.
type Triangle struct {
	A, B, C Point
}

// TriangleOf returns the triangle for the box.
func TriangleOf(r Rect) Triangle {
	return Triangle{
		A: Point{X: r.X + r.W/2, Y: r.Y},
		B: Point{X: r.X, Y: r.Y + r.H},
		C: Point{X: r.X + r.W, Y: r.Y + r.H},
	}
}

// Area returns the signed area.
func (t Triangle) Area() float64 {
	return 0.5 * (-t.B.Y*t.C.X + t.A.Y*(-t.B.X+t.C.X) + t.A.X*(t.B.Y-t.C.Y) + t.B.X*t.C.Y)
}

// Contains reports whether p is strictly inside the triangle. Points on an
// edge or vertex are outside, and a degenerate triangle contains nothing.
func (t Triangle) Contains(p Point) bool {
	area := t.Area()
	sign := 1.0
	if area < 0 {
		sign = -1
	}
	s := (t.A.Y*t.C.X - t.A.X*t.C.Y + (t.C.Y-t.A.Y)*p.X + (t.A.X-t.C.X)*p.Y) * sign
	u := (t.A.X*t.B.Y - t.A.Y*t.B.X + (t.A.Y-t.B.Y)*p.X + (t.B.X-t.A.X)*p.Y) * sign
	return s > 0 && u > 0 && s+u < 2*area*sign
}

// OutlineDistance is the distance from p to the nearest edge.
func (t Triangle) OutlineDistance(p Point) float64 {
	return math.Min(SegmentDistance(p, t.A, t.B), math.Min(SegmentDistance(p, t.B, t.C), SegmentDistance(p, t.C, t.A)))
}

// RectOutlineDistance is the distance from p to the nearest edge of r.
func RectOutlineDistance(p Point, r Rect) float64 {
	n := r.Normalize()
	tl := Point{X: n.X, Y: n.Y}
	tr := Point{X: n.X + n.W, Y: n.Y}
	br := Point{X: n.X + n.W, Y: n.Y + n.H}
	bl := Point{X: n.X, Y: n.Y + n.H}
	d := SegmentDistance(p, tl, tr)
	d = math.Min(d, SegmentDistance(p, tr, br))
	d = math.Min(d, SegmentDistance(p, br, bl))
	return math.Min(d, SegmentDistance(p, bl, tl))
}

// SegmentDistance returns the distance from p to the closed segment a-b.
func SegmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// OnButtSegment reports whether p lies within half-width hw of segment a-b,
// without extending past either endpoint.
func OnButtSegment(p, a, b Point, hw float64) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return false
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	if t < 0 || t > 1 {
		return false
	}
	return math.Abs((p.X-a.X)*dy-(p.Y-a.Y)*dx)/math.Sqrt(l2) <= hw
}
