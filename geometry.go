package editor

import "github.com/f4ze/editor/internal/geom"

// Point is a position in canvas pixels.
type Point = geom.Point

// Rect is an axis-aligned box in canvas pixels. Width and height may be
// negative; Normalize flips them.
type Rect = geom.Rect

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}
