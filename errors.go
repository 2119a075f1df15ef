package editor

import (
	"errors"
	"fmt"
)

// Sentinel errors. Operations wrap them with context; test with errors.Is.
var (
	// ErrInvalidInput reports a malformed argument: non-positive dimensions,
	// empty text, an out-of-range adjustment, an unknown name.
	ErrInvalidInput = errors.New("editor: invalid input")

	// ErrUnsupportedFile is returned when imported bytes are not an image.
	ErrUnsupportedFile = errors.New("editor: unsupported file")

	// ErrLayerNotFound is returned for an unknown layer id.
	ErrLayerNotFound = errors.New("editor: layer not found")

	// ErrLastLayer is returned when deleting the only layer.
	ErrLastLayer = errors.New("editor: cannot delete the last layer")

	// ErrBackgroundLayer is returned when deleting the background layer.
	ErrBackgroundLayer = errors.New("editor: cannot delete the background layer")

	// ErrNoSelection is returned by operations on the selected object when
	// nothing is selected.
	ErrNoSelection = errors.New("editor: no object selected")

	// ErrPersistence reports a failed save or load. The document is left
	// unchanged.
	ErrPersistence = errors.New("editor: persistence failed")
)

// DimensionError is returned for canvas or surface sizes that are not
// positive.
type DimensionError struct {
	Width, Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("editor: invalid dimensions %dx%d", e.Width, e.Height)
}

// Unwrap makes DimensionError match ErrInvalidInput.
func (e *DimensionError) Unwrap() error { return ErrInvalidInput }

func checkDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return &DimensionError{Width: w, Height: h}
	}
	return nil
}
