package editor

import "github.com/f4ze/editor/internal/geom"

// HitTest reports whether p lies on obj. It uses the same geometry the
// compositor fills: rectangles and lines by their box, circles by radius,
// triangles strictly inside, text by its measured line box.
func HitTest(obj Object, p Point, m TextMeasurer) bool {
	switch o := obj.(type) {
	case *Shape:
		switch o.Kind {
		case Circle:
			return geom.CircleOf(o.Box()).Contains(p)
		case Triangle:
			return geom.TriangleOf(o.Box()).Contains(p)
		default:
			return o.Box().Contains(p)
		}
	case *Text:
		return ObjectBounds(o, m).Contains(p)
	}
	return false
}
