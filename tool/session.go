package tool

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	editor "github.com/f4ze/editor"
)

// Gesture thresholds below which a drag is treated as a click.
const (
	minShapeExtent = 5
	minCropExtent  = 10
	shapeLineWidth = 2
)

// Session dispatches gestures for one editor. It is not safe for concurrent
// use.
type Session struct {
	ed       *editor.Editor
	tool     Tool
	settings Settings

	state  State
	anchor editor.Point
	last   editor.Point
	points []editor.Point
}

// NewSession returns a session with the select tool and default settings.
func NewSession(ed *editor.Editor) *Session {
	return &Session{ed: ed, tool: Select, settings: DefaultSettings()}
}

// Editor returns the editor the session drives.
func (s *Session) Editor() *editor.Editor { return s.ed }

// Tool returns the active tool.
func (s *Session) Tool() Tool { return s.tool }

// State returns the gesture state.
func (s *Session) State() State { return s.state }

// Settings returns a copy of the current settings.
func (s *Session) Settings() Settings { return s.settings }

// SetSettings replaces all settings.
func (s *Session) SetSettings(st Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if _, err := editor.ParseShapeKind(st.Shape.String()); err != nil {
		return err
	}
	s.settings = st
	return nil
}

// SelectTool activates the named tool. A gesture in progress is finished
// as if the pointer had left the canvas, and pending text is dropped.
func (s *Session) SelectTool(name string) error {
	t, err := Parse(name)
	if err != nil {
		return err
	}
	s.setTool(t)
	return nil
}

func (s *Session) setTool(t Tool) {
	s.PointerLeave()
	s.state = Idle
	s.tool = t
	editor.Logger().Debug("tool selected", slog.String("tool", t.String()))
}

// SetShapeKind chooses what the shape tool draws.
func (s *Session) SetShapeKind(name string) error {
	k, err := editor.ParseShapeKind(strings.ToLower(name))
	if err != nil {
		return err
	}
	s.settings.Shape = k
	return nil
}

// SetPrimary sets the fill, brush and text colour.
func (s *Session) SetPrimary(c editor.Color) { s.settings.Primary = c }

// SetSecondary sets the shape stroke colour.
func (s *Session) SetSecondary(c editor.Color) { s.settings.Secondary = c }

// SwapColors exchanges primary and secondary.
func (s *Session) SwapColors() {
	s.settings.Primary, s.settings.Secondary = s.settings.Secondary, s.settings.Primary
}

// SetBrushSize sets the brush and eraser diameter.
func (s *Session) SetBrushSize(size float64) error {
	if size <= 0 {
		return fmt.Errorf("%w: brush size %v", editor.ErrInvalidInput, size)
	}
	s.settings.BrushSize = size
	return nil
}

// SetFont sets the family and size for new text. A selected text object is
// updated too.
func (s *Session) SetFont(family string, size float64) error {
	st := s.settings
	st.FontFamily, st.FontSize = family, size
	if err := st.Validate(); err != nil {
		return err
	}
	s.settings = st
	return s.updateSelectedText(func(t *editor.Text) {
		t.FontFamily, t.FontSize = family, size
	})
}

// SetTextStyle sets bold, italic and underline for new text. A selected text
// object is updated too.
func (s *Session) SetTextStyle(bold, italic, underline bool) error {
	s.settings.Bold, s.settings.Italic, s.settings.Underline = bold, italic, underline
	return s.updateSelectedText(func(t *editor.Text) {
		t.Bold, t.Italic, t.Underline = bold, italic, underline
	})
}

func (s *Session) updateSelectedText(edit func(*editor.Text)) error {
	if _, ok := s.ed.Selected().(*editor.Text); !ok {
		return nil
	}
	return s.ed.UpdateSelectedText(edit)
}

// PointerDown starts a gesture at (x, y) in canvas coordinates.
func (s *Session) PointerDown(x, y float64) error {
	p := editor.Pt(x, y)
	s.anchor, s.last = p, p
	s.points = s.points[:0]
	s.state = Idle

	switch s.tool {
	case Brush, Eraser:
		s.points = append(s.points, p)
		s.state = Dragging
	case Shape, Crop:
		s.state = Dragging
	case Move:
		if s.ed.Selected() == nil {
			s.ed.SelectAt(p)
		}
		s.state = Dragging
	case Select:
		s.ed.SelectAt(p)
	case Text:
		s.state = PendingText
	case Fill:
		s.ed.FloodFill(p, s.settings.Primary)
	case Eyedropper:
		c := s.ed.PickColor(p)
		c.A = 255
		s.settings.Primary = c
	}
	return nil
}

// PointerMove extends the gesture in progress.
func (s *Session) PointerMove(x, y float64) error {
	if s.state != Dragging {
		return nil
	}
	p := editor.Pt(x, y)
	switch s.tool {
	case Brush, Eraser:
		s.points = append(s.points, p)
	case Move:
		err := s.ed.MoveSelected(p.X-s.last.X, p.Y-s.last.Y)
		if err != nil && !errors.Is(err, editor.ErrNoSelection) {
			return err
		}
	}
	s.last = p
	return nil
}

// PointerUp completes the gesture at (x, y).
func (s *Session) PointerUp(x, y float64) error {
	if s.state != Dragging {
		return nil
	}
	s.state = Idle
	p := editor.Pt(x, y)

	switch s.tool {
	case Brush, Eraser:
		return s.finishStroke()
	case Shape:
		w, h := p.X-s.anchor.X, p.Y-s.anchor.Y
		if math.Abs(w) <= minShapeExtent && math.Abs(h) <= minShapeExtent {
			return nil
		}
		return s.ed.AddObject(s.shape(w, h))
	case Crop:
		w, h := math.Abs(p.X-s.anchor.X), math.Abs(p.Y-s.anchor.Y)
		if w <= minCropExtent || h <= minCropExtent {
			return nil
		}
		return s.ed.CropTo(editor.Rect{X: math.Min(s.anchor.X, p.X), Y: math.Min(s.anchor.Y, p.Y), W: w, H: h})
	case Move:
		s.ed.CommitMove()
	}
	return nil
}

// PointerLeave ends a drag that leaves the canvas. Strokes and moves are
// kept; shape and crop drags are abandoned.
func (s *Session) PointerLeave() {
	if s.state != Dragging {
		return
	}
	s.state = Idle
	switch s.tool {
	case Brush, Eraser:
		if err := s.finishStroke(); err != nil {
			editor.Logger().Warn("stroke dropped", slog.String("err", err.Error()))
		}
	case Move:
		s.ed.CommitMove()
	}
	s.points = s.points[:0]
}

func (s *Session) finishStroke() error {
	pts := s.points
	s.points = nil
	// A click without movement paints nothing.
	if len(pts) < 2 {
		return nil
	}
	return s.ed.Stroke(pts, s.settings.Primary, s.settings.BrushSize, s.tool == Eraser)
}

func (s *Session) shape(w, h float64) *editor.Shape {
	fill, stroke := s.settings.Primary, s.settings.Secondary
	return &editor.Shape{
		Kind:      s.settings.Shape,
		X:         s.anchor.X,
		Y:         s.anchor.Y,
		Width:     w,
		Height:    h,
		Fill:      &fill,
		Stroke:    &stroke,
		LineWidth: shapeLineWidth,
	}
}

// PendingText returns where a text placement started, if one is pending.
func (s *Session) PendingText() (editor.Point, bool) {
	return s.anchor, s.state == PendingText
}

// CommitText places a text object at (x, y) with the current font settings
// and selects it. Empty content is rejected.
func (s *Session) CommitText(x, y float64, content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: empty text", editor.ErrInvalidInput)
	}
	t := &editor.Text{
		Content:    content,
		X:          x,
		Y:          y,
		FontFamily: s.settings.FontFamily,
		FontSize:   s.settings.FontSize,
		Color:      s.settings.Primary,
		Bold:       s.settings.Bold,
		Italic:     s.settings.Italic,
		Underline:  s.settings.Underline,
	}
	if err := s.ed.AddObject(t); err != nil {
		return err
	}
	if s.state == PendingText {
		s.state = Idle
	}
	return nil
}

// CommitPendingText places content at the pending text anchor.
func (s *Session) CommitPendingText(content string) error {
	p, ok := s.PendingText()
	if !ok {
		return fmt.Errorf("%w: no text placement pending", editor.ErrInvalidInput)
	}
	return s.CommitText(p.X, p.Y, content)
}

// CancelText drops a pending text placement.
func (s *Session) CancelText() {
	if s.state == PendingText {
		s.state = Idle
	}
}

// Key is a key press. Name is the key as typed ("z", "Delete").
type Key struct {
	Name  string
	Ctrl  bool
	Shift bool
}

// HandleKey applies a keyboard shortcut and reports whether the key was
// bound.
func (s *Session) HandleKey(k Key) (bool, error) {
	name := strings.ToLower(k.Name)
	if k.Ctrl {
		switch {
		case name == "z" && k.Shift, name == "y":
			s.ed.Redo()
			return true, nil
		case name == "z":
			s.ed.Undo()
			return true, nil
		}
		return false, nil
	}
	switch name {
	case "delete", "backspace":
		if s.ed.Selected() == nil {
			return true, nil
		}
		return true, s.ed.DeleteSelected()
	}
	if t, ok := Shortcut(name); ok {
		s.setTool(t)
		return true, nil
	}
	return false, nil
}
