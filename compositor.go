package editor

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/f4ze/editor/internal/blend"
	"github.com/f4ze/editor/internal/geom"
	"github.com/f4ze/editor/text"
)

// Selection decoration geometry.
const (
	selectionPadding = 5
	selectionWidth   = 2
	selectionDash    = 5
	handleSize       = 8
	underlineOffset  = 3
)

// TextRenderer measures and draws text. *text.Bank implements it.
type TextRenderer interface {
	TextMeasurer
	Draw(dst *image.NRGBA, s string, style text.Style, x, baseline float64, col color.NRGBA) error
}

// Compositor flattens documents into surfaces.
type Compositor struct {
	text TextRenderer
}

// NewCompositor returns a compositor drawing text with tr, or with the
// default font bank when tr is nil.
func NewCompositor(tr TextRenderer) *Compositor {
	if tr == nil {
		tr = text.DefaultBank()
	}
	return &Compositor{text: tr}
}

// Measurer returns the text measurer used for object bounds.
func (c *Compositor) Measurer() TextMeasurer { return c.text }

// CompositeOptions tunes a composite.
type CompositeOptions struct {
	// Background, when set, fills the output before any layer is drawn.
	Background *Color
	// Selection, when set, is outlined with the selection decoration.
	Selection Object
}

// Composite flattens the visible layers of doc bottom to top.
func (c *Compositor) Composite(doc *Document, opts CompositeOptions) *Surface {
	out := newSurface(doc.width, doc.height)
	if opts.Background != nil {
		out.Clear(*opts.Background)
	}
	for _, l := range doc.layers {
		if !l.Visible {
			continue
		}
		out.DrawOver(c.RenderLayer(l), 0, 0)
	}
	if opts.Selection != nil {
		c.DrawSelection(out, opts.Selection)
	}
	return out
}

// RenderLayer returns the layer as it is composited: its raster with the
// objects drawn on top and the adjustments applied to both.
func (c *Compositor) RenderLayer(l *Layer) *Surface {
	s := l.Surface.Clone()
	for _, obj := range l.Objects {
		c.DrawObject(s, obj)
	}
	l.Adjustments.Apply(s)
	return s
}

// DrawObject rasterizes one object onto dst.
func (c *Compositor) DrawObject(dst *Surface, obj Object) {
	switch o := obj.(type) {
	case *Shape:
		drawShape(dst, o)
	case *Text:
		c.drawText(dst, o)
	}
}

func drawShape(dst *Surface, s *Shape) {
	cv := dst.canvas()
	box := s.Box()
	hw := s.LineWidth / 2
	stroke := s.Stroke != nil && s.LineWidth > 0

	switch s.Kind {
	case Rectangle:
		if s.Fill != nil {
			cv.FillRect(box, s.Fill.bytes(), blend.SourceOver)
		}
		if stroke {
			cv.StrokeRect(box, s.LineWidth, s.Stroke.bytes(), blend.SourceOver)
		}
	case Circle:
		circle := geom.CircleOf(box)
		bounds := Rect{X: circle.CX - circle.R, Y: circle.CY - circle.R, W: 2 * circle.R, H: 2 * circle.R}
		if s.Fill != nil {
			cv.Paint(bounds, circle.Contains, s.Fill.bytes(), blend.SourceOver)
		}
		if stroke {
			cv.Paint(bounds.Inset(hw), func(p Point) bool {
				return circle.OutlineDistance(p) <= hw
			}, s.Stroke.bytes(), blend.SourceOver)
		}
	case Triangle:
		tri := geom.TriangleOf(box)
		if s.Fill != nil {
			cv.Paint(box, tri.Contains, s.Fill.bytes(), blend.SourceOver)
		}
		if stroke {
			cv.Paint(box.Inset(hw), func(p Point) bool {
				return tri.OutlineDistance(p) <= hw
			}, s.Stroke.bytes(), blend.SourceOver)
		}
	case Line:
		if stroke {
			cv.Segment(Point{X: s.X, Y: s.Y}, Point{X: s.X + s.Width, Y: s.Y + s.Height},
				s.LineWidth, s.Stroke.bytes(), blend.SourceOver)
		}
	}
}

func (c *Compositor) drawText(dst *Surface, t *Text) {
	if err := c.text.Draw(dst.nrgba(), t.Content, t.Style(), t.X, t.Baseline(), t.Color.NRGBA()); err != nil {
		Logger().Debug("text draw failed", slog.String("font", t.Style().FontString()), slog.Any("err", err))
		return
	}
	if t.Underline {
		w := c.text.Measure(t.Content, t.Style())
		y := t.Baseline() + underlineOffset
		dst.canvas().Segment(Point{X: t.X, Y: y}, Point{X: t.X + w, Y: y}, 1, t.Color.bytes(), blend.SourceOver)
	}
}

// DrawSelection draws the dashed selection box and the four corner handles
// around obj.
func (c *Compositor) DrawSelection(dst *Surface, obj Object) {
	box := ObjectBounds(obj, c.text).Inset(selectionPadding)
	cv := dst.canvas()
	cv.DashedRect(box, selectionWidth, selectionDash, selectionDash, SelectionBlue.bytes())

	half := float64(handleSize) / 2
	for _, corner := range []Point{
		{X: box.X, Y: box.Y},
		{X: box.X + box.W, Y: box.Y},
		{X: box.X, Y: box.Y + box.H},
		{X: box.X + box.W, Y: box.Y + box.H},
	} {
		h := Rect{X: corner.X - half, Y: corner.Y - half, W: handleSize, H: handleSize}
		cv.FillRect(h, White.bytes(), blend.SourceOver)
		cv.StrokeRect(h, 1, SelectionBlue.bytes(), blend.SourceOver)
	}
}
