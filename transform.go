package editor

// transformKind enumerates the whole-canvas transforms applied to objects.
type transformKind uint8

const (
	rotateCW transformKind = iota
	rotateCCW
	flipHorizontal
	flipVertical
	scaleCanvas
)

// canvasTransform maps points of a w x h canvas to the transformed canvas.
type canvasTransform struct {
	kind   transformKind
	w, h   float64
	sx, sy float64
}

func (t canvasTransform) point(p Point) Point {
	switch t.kind {
	case rotateCW:
		return Point{X: t.h - p.Y, Y: p.X}
	case rotateCCW:
		return Point{X: p.Y, Y: t.w - p.X}
	case flipHorizontal:
		return Point{X: t.w - p.X, Y: p.Y}
	case flipVertical:
		return Point{X: p.X, Y: t.h - p.Y}
	case scaleCanvas:
		return Point{X: p.X * t.sx, Y: p.Y * t.sy}
	}
	return p
}

// transform maps a shape's geometry. Closed shapes keep an upright box
// spanning the mapped corners; lines map both endpoints. Line width is not
// scaled.
func (s *Shape) transform(t canvasTransform, _ TextMeasurer) {
	a := t.point(Point{X: s.X, Y: s.Y})
	b := t.point(Point{X: s.X + s.Width, Y: s.Y + s.Height})
	s.X, s.Y = a.X, a.Y
	s.Width, s.Height = b.X-a.X, b.Y-a.Y
	s.Normalize()
}

// transform keeps text upright. Scaling moves the anchor; rotations and flips
// move the line box so its centre lands on the mapped centre. Font size is
// not scaled.
func (tx *Text) transform(t canvasTransform, m TextMeasurer) {
	if t.kind == scaleCanvas {
		p := t.point(tx.Origin())
		tx.X, tx.Y = p.X, p.Y
		return
	}
	box := ObjectBounds(tx, m)
	c := t.point(Point{X: box.X + box.W/2, Y: box.Y + box.H/2})
	tx.X, tx.Y = c.X-box.W/2, c.Y-box.H/2
}
