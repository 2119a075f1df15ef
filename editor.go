package editor

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"strings"

	imgcodec "github.com/f4ze/editor/internal/image"
)

// Editor owns the live document and its undo history. Every mutating method
// validates its arguments first, then changes the document and records a
// checkpoint; a method that returns an error changes nothing.
//
// Editor is not safe for concurrent use.
type Editor struct {
	doc     *Document
	history *History
	comp    *Compositor
	codec   ImageCodec
	opts    options

	// moving is set while the selected object has been translated but the
	// move has not been checkpointed yet.
	moving bool
}

// New creates an editor with a blank document.
func New(opts ...Option) (*Editor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	doc, err := NewDocument(o.width, o.height, o.background)
	if err != nil {
		return nil, err
	}
	e := &Editor{
		doc:     doc,
		history: NewHistory(o.historyCapacity),
		comp:    NewCompositor(o.text),
		codec:   o.codec,
		opts:    o,
	}
	if e.codec == nil {
		e.codec = DefaultCodec{}
	}
	e.history.Reset(doc)
	return e, nil
}

// Document returns the live document. Mutate it only through the editor.
func (e *Editor) Document() *Document { return e.doc }

// History returns the undo history.
func (e *Editor) History() *History { return e.history }

// Compositor returns the compositor used for rendering.
func (e *Editor) Compositor() *Compositor { return e.comp }

// Measurer returns the text measurer used for hit-testing.
func (e *Editor) Measurer() TextMeasurer { return e.comp.text }

func (e *Editor) checkpoint(op string) {
	e.moving = false
	if n := e.history.Checkpoint(e.doc); n > 0 {
		Logger().Debug("history full, evicted oldest", slog.Int("evicted", n))
	}
	Logger().Debug("checkpoint", slog.String("op", op),
		slog.Int("entries", e.history.Len()), slog.Int("cursor", e.history.Cursor()))
}

// replace swaps in a new document and resets history to it.
func (e *Editor) replace(doc *Document, reason string) {
	e.doc = doc
	e.moving = false
	e.history.Reset(doc)
	Logger().Info("document replaced", slog.String("reason", reason),
		slog.Int("width", doc.width), slog.Int("height", doc.height), slog.Int("layers", len(doc.layers)))
}

// NewCanvas replaces the document with a blank one.
func (e *Editor) NewCanvas(width, height int, bg Color) error {
	doc, err := NewDocument(width, height, bg)
	if err != nil {
		return err
	}
	e.replace(doc, "new canvas")
	return nil
}

// ImportImage decodes r and replaces the document with it.
func (e *Editor) ImportImage(r io.Reader) error {
	img, err := e.codec.Decode(r)
	if err != nil {
		return err
	}
	return e.ImportDecoded(img)
}

// ImportDecoded replaces the document with img drawn over a white
// background. Images larger than the import bound on either axis are scaled
// down uniformly.
func (e *Editor) ImportDecoded(img image.Image) error {
	b := img.Bounds()
	if err := checkDimensions(b.Dx(), b.Dy()); err != nil {
		return err
	}
	w, h := imgcodec.FitWithin(b.Dx(), b.Dy(), e.opts.maxImport)
	doc, err := NewDocument(w, h, White)
	if err != nil {
		return err
	}
	var src image.Image = img
	if w != b.Dx() || h != b.Dy() {
		src = imgcodec.Scale(img, w, h, e.opts.interpolation.codec())
		Logger().Debug("import scaled", slog.Int("from_w", b.Dx()), slog.Int("from_h", b.Dy()),
			slog.Int("to_w", w), slog.Int("to_h", h))
	}
	s, err := FromImage(src)
	if err != nil {
		return err
	}
	doc.layers[0].Surface.DrawOver(s, 0, 0)
	e.replace(doc, "import")
	return nil
}

// AddLayer adds a transparent layer on top and makes it current. An empty
// name is replaced by "Layer N".
func (e *Editor) AddLayer(name string) (*Layer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Layer %d", len(e.doc.layers)+1)
	}
	l := e.doc.AddLayer(name)
	e.checkpoint("add layer")
	return l, nil
}

// DeleteLayer removes a layer.
func (e *Editor) DeleteLayer(id int) error {
	if err := e.doc.DeleteLayer(id); err != nil {
		return err
	}
	e.checkpoint("delete layer")
	return nil
}

// SetCurrentLayer selects the layer tools act on. It is not checkpointed.
func (e *Editor) SetCurrentLayer(id int) error {
	e.CommitMove()
	return e.doc.SetCurrentLayer(id)
}

// SetLayerVisible shows or hides a layer.
func (e *Editor) SetLayerVisible(id int, visible bool) error {
	l, err := e.doc.Layer(id)
	if err != nil {
		return err
	}
	if l.Visible == visible {
		return nil
	}
	l.Visible = visible
	e.checkpoint("layer visibility")
	return nil
}

// RenameLayer changes a layer's name.
func (e *Editor) RenameLayer(id int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty layer name", ErrInvalidInput)
	}
	l, err := e.doc.Layer(id)
	if err != nil {
		return err
	}
	l.Name = name
	e.checkpoint("rename layer")
	return nil
}

// FillLayer paints the whole raster of a layer with c.
func (e *Editor) FillLayer(id int, c Color) error {
	l, err := e.doc.Layer(id)
	if err != nil {
		return err
	}
	l.Surface.FillRect(Rect{W: float64(e.doc.width), H: float64(e.doc.height)}, c)
	e.checkpoint("fill layer")
	return nil
}

// AddObject appends obj to the current layer and selects it. Closed shapes
// are normalized to a positive box. An object already on any layer is
// rejected unchanged.
func (e *Editor) AddObject(obj Object) error {
	if err := validateObject(obj); err != nil {
		return err
	}
	for _, l := range e.doc.layers {
		if l.Contains(obj) {
			return fmt.Errorf("%w: object already on layer %d", ErrInvalidInput, l.ID)
		}
	}
	if s, ok := obj.(*Shape); ok {
		s.Normalize()
	}
	l := e.doc.CurrentLayer()
	l.Objects = append(l.Objects, obj)
	e.doc.selected = obj
	e.checkpoint("add object")
	return nil
}

// SelectAt performs a select-tool click: a click outside the current
// selection clears it, then with nothing selected the top-most object under
// p is selected. It returns the resulting selection.
func (e *Editor) SelectAt(p Point) Object {
	e.CommitMove()
	m := e.Measurer()
	if sel := e.doc.Selected(); sel != nil && !HitTest(sel, p, m) {
		e.doc.selected = nil
	}
	if e.doc.Selected() == nil {
		e.doc.selected = e.doc.CurrentLayer().ObjectAt(p, m)
	}
	return e.doc.Selected()
}

// Select selects obj, which must be on the current layer.
func (e *Editor) Select(obj Object) error {
	e.CommitMove()
	return e.doc.Select(obj)
}

// ClearSelection deselects.
func (e *Editor) ClearSelection() {
	e.CommitMove()
	e.doc.selected = nil
}

// Selected returns the selected object, or nil.
func (e *Editor) Selected() Object { return e.doc.Selected() }

// DeleteSelected removes the selected object from the current layer.
func (e *Editor) DeleteSelected() error {
	sel := e.doc.Selected()
	if sel == nil {
		return ErrNoSelection
	}
	e.doc.CurrentLayer().removeObject(sel)
	e.doc.selected = nil
	e.checkpoint("delete object")
	return nil
}

// MoveSelected translates the selected object. Moves accumulate until
// CommitMove records them as one checkpoint.
func (e *Editor) MoveSelected(dx, dy float64) error {
	sel := e.doc.Selected()
	if sel == nil {
		return ErrNoSelection
	}
	sel.Translate(dx, dy)
	e.moving = true
	return nil
}

// CommitMove checkpoints a pending move. It reports whether one was pending.
func (e *Editor) CommitMove() bool {
	if !e.moving {
		return false
	}
	e.checkpoint("move object")
	return true
}

// UpdateSelectedText edits the selected text object in place.
func (e *Editor) UpdateSelectedText(edit func(t *Text)) error {
	t, ok := e.doc.Selected().(*Text)
	if !ok {
		return ErrNoSelection
	}
	before := *t
	edit(t)
	if err := validateObject(t); err != nil {
		*t = before
		return err
	}
	e.checkpoint("edit text")
	return nil
}

// SetAdjustment changes one tonal slider on the current layer.
func (e *Editor) SetAdjustment(kind Adjustment, value int) error {
	return e.SetAdjustments(e.doc.CurrentLayer().Adjustments.With(kind, value))
}

// SetFilter changes the current layer's filter.
func (e *Editor) SetFilter(f Filter) error {
	a := e.doc.CurrentLayer().Adjustments
	a.Filter = f
	return e.SetAdjustments(a)
}

// SetAdjustments replaces the current layer's adjustments.
func (e *Editor) SetAdjustments(a Adjustments) error {
	if err := a.Validate(); err != nil {
		return err
	}
	e.doc.CurrentLayer().Adjustments = a
	e.checkpoint("adjust")
	return nil
}

// Stroke paints a brush stroke through pts onto the current layer, or
// erases along it when erase is set.
func (e *Editor) Stroke(pts []Point, c Color, width float64, erase bool) error {
	if len(pts) == 0 {
		return fmt.Errorf("%w: empty stroke", ErrInvalidInput)
	}
	if width <= 0 {
		return fmt.Errorf("%w: brush size %v", ErrInvalidInput, width)
	}
	op := OpSourceOver
	if erase {
		op = OpDestinationOut
	}
	e.doc.CurrentLayer().Surface.StrokePolyline(pts, c, width, op)
	if erase {
		e.checkpoint("erase")
	} else {
		e.checkpoint("brush")
	}
	return nil
}

// FloodFill fills the region of the current layer around p with c. A fill
// that changes nothing is not checkpointed.
func (e *Editor) FloodFill(p Point, c Color) FillResult {
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	res := e.doc.CurrentLayer().Surface.FloodFill(x, y, c, e.opts.fillTolerance, e.opts.fillLimit)
	Logger().Debug("flood fill", slog.Int("x", x), slog.Int("y", y),
		slog.Int("filled", res.Filled), slog.Int("visited", res.Visited))
	if res.Truncated {
		Logger().Warn("flood fill truncated", slog.Int("limit", e.opts.fillLimit))
	}
	if res.Filled > 0 {
		e.checkpoint("fill")
	}
	return res
}

// PickColor returns the displayed colour at p, without the selection
// decoration.
func (e *Editor) PickColor(p Point) Color {
	return e.Flatten(nil).Pixel(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// CropTo crops every layer to r and shifts all objects by r's origin. The
// box is normalized; its origin is floored and its size truncated.
func (e *Editor) CropTo(r Rect) error {
	n := r.Normalize()
	x, y := int(math.Floor(n.X)), int(math.Floor(n.Y))
	w, h := int(n.W), int(n.H)
	if err := checkDimensions(w, h); err != nil {
		return err
	}
	layers := make([]*Surface, len(e.doc.layers))
	for i, l := range e.doc.layers {
		s, err := l.Surface.Crop(x, y, w, h)
		if err != nil {
			return err
		}
		layers[i] = s
	}
	for i, l := range e.doc.layers {
		l.Surface = layers[i]
		for _, obj := range l.Objects {
			obj.Translate(-float64(x), -float64(y))
		}
	}
	e.doc.width, e.doc.height = w, h
	e.checkpoint("crop")
	return nil
}

// Rotate90 turns the canvas a quarter turn. Objects follow.
func (e *Editor) Rotate90(clockwise bool) error {
	t := canvasTransform{kind: rotateCCW, w: float64(e.doc.width), h: float64(e.doc.height)}
	if clockwise {
		t.kind = rotateCW
	}
	for _, l := range e.doc.layers {
		l.Surface = l.Surface.Rotate90(clockwise)
	}
	e.transformObjects(t)
	e.doc.width, e.doc.height = e.doc.height, e.doc.width
	e.checkpoint("rotate")
	return nil
}

// FlipAxis mirrors the canvas left-right when horizontal, top-bottom otherwise.
func (e *Editor) FlipAxis(horizontal bool) error {
	t := canvasTransform{kind: flipVertical, w: float64(e.doc.width), h: float64(e.doc.height)}
	if horizontal {
		t.kind = flipHorizontal
	}
	for _, l := range e.doc.layers {
		l.Surface = l.Surface.Flip(horizontal)
	}
	e.transformObjects(t)
	e.checkpoint("flip")
	return nil
}

// ResizeCanvas resamples every layer to width x height and scales object
// positions and sizes. Line widths and font sizes are kept.
func (e *Editor) ResizeCanvas(width, height int) error {
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	resized := make([]*Surface, len(e.doc.layers))
	for i, l := range e.doc.layers {
		s, err := l.Surface.Resize(width, height, e.opts.interpolation)
		if err != nil {
			return err
		}
		resized[i] = s
	}
	t := canvasTransform{
		kind: scaleCanvas,
		sx:   float64(width) / float64(e.doc.width),
		sy:   float64(height) / float64(e.doc.height),
	}
	for i, l := range e.doc.layers {
		l.Surface = resized[i]
	}
	e.transformObjects(t)
	e.doc.width, e.doc.height = width, height
	e.checkpoint("resize")
	return nil
}

func (e *Editor) transformObjects(t canvasTransform) {
	m := e.Measurer()
	for _, l := range e.doc.layers {
		for _, obj := range l.Objects {
			obj.transform(t, m)
		}
	}
}

// Undo restores the previous state. It reports false when there is none.
func (e *Editor) Undo() bool {
	e.CommitMove()
	snap, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.restore(snap)
	return true
}

// Redo re-applies the next state. It reports false when there is none.
func (e *Editor) Redo() bool {
	e.CommitMove()
	snap, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.restore(snap)
	return true
}

func (e *Editor) restore(snap *Snapshot) {
	e.doc = snap.Document()
	e.moving = false
}

// Render composites the document for display, selection decoration included.
func (e *Editor) Render() *Surface {
	return e.comp.Composite(e.doc, CompositeOptions{Selection: e.doc.Selected()})
}

// Flatten composites the visible layers over bg, or over transparency when
// bg is nil.
func (e *Editor) Flatten(bg *Color) *Surface {
	return e.comp.Composite(e.doc, CompositeOptions{Background: bg})
}

// Export flattens the document and encodes it to w. Formats without alpha
// are flattened over white.
func (e *Editor) Export(w io.Writer, f Format) error {
	var bg *Color
	if !f.HasAlpha() {
		bg = White.ptr()
	}
	return e.codec.Encode(w, e.Flatten(bg), f)
}

// ExportBytes is Export into memory.
func (e *Editor) ExportBytes(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Export(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
