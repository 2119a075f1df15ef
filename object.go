package editor

import (
	"fmt"

	"github.com/f4ze/editor/text"
)

// ShapeKind is the geometry of a Shape.
type ShapeKind uint8

const (
	Rectangle ShapeKind = iota
	Circle
	Triangle
	Line
)

var shapeNames = [...]string{"rectangle", "circle", "triangle", "line"}

// String returns the persisted name.
func (k ShapeKind) String() string {
	if int(k) < len(shapeNames) {
		return shapeNames[k]
	}
	return "unknown"
}

// ParseShapeKind maps a persisted name to a ShapeKind.
func ParseShapeKind(s string) (ShapeKind, error) {
	for i, n := range shapeNames {
		if n == s {
			return ShapeKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: shape %q", ErrInvalidInput, s)
}

// Object is a vector object placed on a layer: *Shape or *Text.
// Objects are compared by identity.
type Object interface {
	// Origin returns the object's anchor point.
	Origin() Point
	// Translate moves the object by (dx, dy).
	Translate(dx, dy float64)

	cloneObject() Object
	// transform maps the object through a canvas transform.
	transform(t canvasTransform, m TextMeasurer)
}

// TextMeasurer measures the advance width of a line of text.
type TextMeasurer interface {
	Measure(s string, style text.Style) float64
}

// Shape is a geometric vector object. Its box is (X, Y, Width, Height);
// Width and Height may be negative for lines drawn up or left.
type Shape struct {
	Kind          ShapeKind
	X, Y          float64
	Width, Height float64
	// Fill and Stroke are nil when the shape is not filled or stroked.
	Fill      *Color
	Stroke    *Color
	LineWidth float64
}

// Origin returns (X, Y).
func (s *Shape) Origin() Point { return Point{X: s.X, Y: s.Y} }

// Translate moves the shape.
func (s *Shape) Translate(dx, dy float64) {
	s.X += dx
	s.Y += dy
}

// Box returns the shape's rectangle as stored.
func (s *Shape) Box() Rect {
	return Rect{X: s.X, Y: s.Y, W: s.Width, H: s.Height}
}

// Normalize flips negative extents for the closed shapes. Lines keep their
// direction.
func (s *Shape) Normalize() {
	if s.Kind == Line {
		return
	}
	r := s.Box().Normalize()
	s.X, s.Y, s.Width, s.Height = r.X, r.Y, r.W, r.H
}

func (s *Shape) cloneObject() Object {
	c := *s
	if s.Fill != nil {
		c.Fill = s.Fill.ptr()
	}
	if s.Stroke != nil {
		c.Stroke = s.Stroke.ptr()
	}
	return &c
}

// Text is a single line of text. (X, Y) is the top-left of the line box; the
// baseline sits FontSize below Y.
type Text struct {
	Content    string
	X, Y       float64
	FontFamily string
	FontSize   float64
	Color      Color
	Bold       bool
	Italic     bool
	Underline  bool
}

// Origin returns (X, Y).
func (t *Text) Origin() Point { return Point{X: t.X, Y: t.Y} }

// Translate moves the text.
func (t *Text) Translate(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

// Style returns the font style used to measure and draw the text.
func (t *Text) Style() text.Style {
	return text.Style{Family: t.FontFamily, Size: t.FontSize, Bold: t.Bold, Italic: t.Italic}
}

// Baseline returns the y coordinate glyphs sit on.
func (t *Text) Baseline() float64 { return t.Y + t.FontSize }

func (t *Text) cloneObject() Object {
	c := *t
	return &c
}

// ObjectBounds returns the normalized box used for hit-testing and the
// selection decoration.
func ObjectBounds(obj Object, m TextMeasurer) Rect {
	switch o := obj.(type) {
	case *Shape:
		return o.Box().Normalize()
	case *Text:
		w := 0.0
		if m != nil {
			w = m.Measure(o.Content, o.Style())
		}
		return Rect{X: o.X, Y: o.Y, W: w, H: o.FontSize}
	}
	return Rect{}
}

// validateObject rejects objects the renderer cannot place.
func validateObject(obj Object) error {
	switch o := obj.(type) {
	case *Shape:
		if o == nil {
			return fmt.Errorf("%w: nil shape", ErrInvalidInput)
		}
		if int(o.Kind) >= len(shapeNames) {
			return fmt.Errorf("%w: shape kind %d", ErrInvalidInput, o.Kind)
		}
		if o.LineWidth < 0 {
			return fmt.Errorf("%w: negative line width", ErrInvalidInput)
		}
	case *Text:
		if o == nil {
			return fmt.Errorf("%w: nil text", ErrInvalidInput)
		}
		if o.Content == "" {
			return fmt.Errorf("%w: empty text", ErrInvalidInput)
		}
		if o.FontSize <= 0 {
			return fmt.Errorf("%w: font size %v", ErrInvalidInput, o.FontSize)
		}
	case nil:
		return fmt.Errorf("%w: nil object", ErrInvalidInput)
	}
	return nil
}
