// Package tool turns pointer and keyboard gestures into editor operations.
//
// A Session holds the state the editor itself does not: the active tool,
// colour and brush settings, and the gesture in progress.
package tool

import (
	"fmt"
	"strings"

	editor "github.com/f4ze/editor"
)

// Tool is an interactive tool.
type Tool uint8

const (
	Select Tool = iota
	Move
	Brush
	Eraser
	Shape
	Text
	Crop
	Fill
	Eyedropper
)

var toolNames = [...]string{"select", "move", "brush", "eraser", "shape", "text", "crop", "fill", "eyedropper"}

func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", t)
}

// Parse maps a tool name to a Tool.
func Parse(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("%w: tool %q", editor.ErrInvalidInput, name)
}

var shortcuts = map[string]Tool{
	"v": Select,
	"m": Move,
	"b": Brush,
	"e": Eraser,
	"t": Text,
	"c": Crop,
	"i": Eyedropper,
	"f": Fill,
}

// Shortcut returns the tool bound to an unmodified key.
func Shortcut(key string) (Tool, bool) {
	t, ok := shortcuts[strings.ToLower(key)]
	return t, ok
}

// State is the gesture state of a Session.
type State uint8

const (
	Idle State = iota
	Dragging
	PendingText
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case PendingText:
		return "pending-text"
	}
	return fmt.Sprintf("State(%d)", s)
}

// Settings are the user-chosen parameters tools draw with.
type Settings struct {
	Primary   editor.Color
	Secondary editor.Color
	BrushSize float64
	Shape     editor.ShapeKind

	FontFamily string
	FontSize   float64
	Bold       bool
	Italic     bool
	Underline  bool
}

// DefaultSettings returns black on white, a 5px brush and 16px Arial.
func DefaultSettings() Settings {
	return Settings{
		Primary:    editor.Black,
		Secondary:  editor.White,
		BrushSize:  5,
		Shape:      editor.Rectangle,
		FontFamily: "Arial",
		FontSize:   16,
	}
}

// Validate checks the numeric settings.
func (s Settings) Validate() error {
	if s.BrushSize <= 0 {
		return fmt.Errorf("%w: brush size %v", editor.ErrInvalidInput, s.BrushSize)
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("%w: font size %v", editor.ErrInvalidInput, s.FontSize)
	}
	if strings.TrimSpace(s.FontFamily) == "" {
		return fmt.Errorf("%w: empty font family", editor.ErrInvalidInput)
	}
	return nil
}
