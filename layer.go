package editor

import "slices"

// Layer is one level of the document stack.
type Layer struct {
	// ID is unique within the document and never reused.
	ID      int
	Name    string
	Surface *Surface
	Visible bool
	// Objects are drawn in order; the last is on top.
	Objects     []Object
	Background  bool
	Adjustments Adjustments
}

// Clone returns a deep copy: pixels, objects and adjustments.
func (l *Layer) Clone() *Layer {
	c := *l
	c.Surface = l.Surface.Clone()
	c.Objects = make([]Object, len(l.Objects))
	for i, o := range l.Objects {
		c.Objects[i] = o.cloneObject()
	}
	return &c
}

// IndexOf returns the position of obj in the layer, or -1.
func (l *Layer) IndexOf(obj Object) int {
	return slices.IndexFunc(l.Objects, func(o Object) bool { return o == obj })
}

// Contains reports whether obj belongs to the layer.
func (l *Layer) Contains(obj Object) bool {
	return obj != nil && l.IndexOf(obj) >= 0
}

// ObjectAt returns the top-most object under p, or nil.
func (l *Layer) ObjectAt(p Point, m TextMeasurer) Object {
	for i := len(l.Objects) - 1; i >= 0; i-- {
		if HitTest(l.Objects[i], p, m) {
			return l.Objects[i]
		}
	}
	return nil
}

func (l *Layer) removeObject(obj Object) bool {
	i := l.IndexOf(obj)
	if i < 0 {
		return false
	}
	l.Objects = slices.Delete(l.Objects, i, i+1)
	return true
}
