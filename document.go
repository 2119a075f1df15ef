package editor

import (
	"fmt"
	"slices"
)

// Default canvas.
const (
	DefaultWidth  = 800
	DefaultHeight = 600

	// BackgroundName is the name of the layer every document starts with.
	BackgroundName = "Background"
)

// Document is the full editable state: canvas size, the layer stack, the
// current layer and the selection.
//
// The layer at index 0 is the background layer. The current layer always
// resolves to a layer in the stack.
type Document struct {
	width, height int
	layers        []*Layer
	currentID     int
	nextID        int
	selected      Object
}

// NewDocument creates a document with a single background layer filled
// with bg.
func NewDocument(width, height int, bg Color) (*Document, error) {
	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	s.Clear(bg)
	d := &Document{width: width, height: height, nextID: 1}
	d.pushLayer(BackgroundName, s, true)
	return d, nil
}

// Width returns the canvas width.
func (d *Document) Width() int { return d.width }

// Height returns the canvas height.
func (d *Document) Height() int { return d.height }

// Layers returns the stack bottom to top. The slice is a copy; the layers
// are the document's own.
func (d *Document) Layers() []*Layer {
	return slices.Clone(d.layers)
}

// LayerCount returns the number of layers.
func (d *Document) LayerCount() int { return len(d.layers) }

// Layer looks a layer up by id.
func (d *Document) Layer(id int) (*Layer, error) {
	for _, l := range d.layers {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrLayerNotFound, id)
}

func (d *Document) layerIndex(id int) int {
	return slices.IndexFunc(d.layers, func(l *Layer) bool { return l.ID == id })
}

// CurrentLayer returns the layer tools act on.
func (d *Document) CurrentLayer() *Layer {
	if i := d.layerIndex(d.currentID); i >= 0 {
		return d.layers[i]
	}
	return d.layers[0]
}

// Selected returns the selected object if it still belongs to the current
// layer, or nil.
func (d *Document) Selected() Object {
	if d.selected != nil && d.CurrentLayer().Contains(d.selected) {
		return d.selected
	}
	return nil
}

// Select marks obj as selected. obj must be on the current layer; nil
// clears the selection.
func (d *Document) Select(obj Object) error {
	if obj == nil {
		d.selected = nil
		return nil
	}
	if !d.CurrentLayer().Contains(obj) {
		return fmt.Errorf("%w: object is not on the current layer", ErrInvalidInput)
	}
	d.selected = obj
	return nil
}

// pushLayer appends a layer on top and makes it current.
func (d *Document) pushLayer(name string, s *Surface, background bool) *Layer {
	l := &Layer{
		ID:         d.nextID,
		Name:       name,
		Surface:    s,
		Visible:    true,
		Background: background,
	}
	d.nextID++
	d.layers = append(d.layers, l)
	d.currentID = l.ID
	return l
}

// AddLayer appends a transparent layer on top and makes it current.
func (d *Document) AddLayer(name string) *Layer {
	return d.pushLayer(name, newSurface(d.width, d.height), false)
}

// DeleteLayer removes a layer. The background layer and the last remaining
// layer cannot be deleted. When the current layer is removed the layer
// below it becomes current.
func (d *Document) DeleteLayer(id int) error {
	i := d.layerIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrLayerNotFound, id)
	}
	if len(d.layers) <= 1 {
		return ErrLastLayer
	}
	if d.layers[i].Background {
		return ErrBackgroundLayer
	}
	wasCurrent := d.currentID == id
	d.layers = slices.Delete(d.layers, i, i+1)
	if wasCurrent {
		d.currentID = d.layers[max(0, i-1)].ID
		d.selected = nil
	}
	return nil
}

// SetCurrentLayer selects the layer tools act on and clears the selection.
func (d *Document) SetCurrentLayer(id int) error {
	if d.layerIndex(id) < 0 {
		return fmt.Errorf("%w: id %d", ErrLayerNotFound, id)
	}
	if id != d.currentID {
		d.selected = nil
	}
	d.currentID = id
	return nil
}

// Clone returns a deep copy of the document with the selection cleared.
func (d *Document) Clone() *Document {
	c := &Document{
		width:     d.width,
		height:    d.height,
		layers:    make([]*Layer, len(d.layers)),
		currentID: d.currentID,
		nextID:    d.nextID,
	}
	for i, l := range d.layers {
		c.layers[i] = l.Clone()
	}
	return c
}

// Equal reports whether two documents hold the same persisted state: size,
// current layer, and every layer's pixels, objects and settings.
func (d *Document) Equal(o *Document) bool {
	if d.width != o.width || d.height != o.height || d.currentID != o.currentID || len(d.layers) != len(o.layers) {
		return false
	}
	for i, l := range d.layers {
		m := o.layers[i]
		if l.ID != m.ID || l.Name != m.Name || l.Visible != m.Visible || l.Background != m.Background ||
			l.Adjustments != m.Adjustments || !l.Surface.Equal(m.Surface) || len(l.Objects) != len(m.Objects) {
			return false
		}
		for j := range l.Objects {
			if !objectsEqual(l.Objects[j], m.Objects[j]) {
				return false
			}
		}
	}
	return true
}

func objectsEqual(a, b Object) bool {
	switch x := a.(type) {
	case *Shape:
		y, ok := b.(*Shape)
		if !ok {
			return false
		}
		return x.Kind == y.Kind && x.X == y.X && x.Y == y.Y && x.Width == y.Width && x.Height == y.Height &&
			x.LineWidth == y.LineWidth && colorPtrEqual(x.Fill, y.Fill) && colorPtrEqual(x.Stroke, y.Stroke)
	case *Text:
		y, ok := b.(*Text)
		return ok && *x == *y
	}
	return false
}

func colorPtrEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// validate checks the structural invariants of a document built from
// outside data.
func (d *Document) validate() error {
	if err := checkDimensions(d.width, d.height); err != nil {
		return err
	}
	if len(d.layers) == 0 {
		return fmt.Errorf("%w: document has no layers", ErrInvalidInput)
	}
	seen := make(map[int]bool, len(d.layers))
	for i, l := range d.layers {
		if seen[l.ID] {
			return fmt.Errorf("%w: duplicate layer id %d", ErrInvalidInput, l.ID)
		}
		seen[l.ID] = true
		if l.Background != (i == 0) {
			return fmt.Errorf("%w: background layer must be the bottom layer", ErrInvalidInput)
		}
		if l.Surface == nil || l.Surface.width != d.width || l.Surface.height != d.height {
			return fmt.Errorf("%w: layer %d surface does not match the canvas", ErrInvalidInput, l.ID)
		}
		if err := l.Adjustments.Validate(); err != nil {
			return err
		}
	}
	return nil
}
