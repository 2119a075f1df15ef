package editor

import (
	"fmt"

	"github.com/f4ze/editor/internal/filter"
)

// Filter is a whole-layer filter applied after the tonal adjustments.
type Filter uint8

const (
	FilterNone Filter = iota
	FilterGrayscale
	FilterSepia
	FilterInvert
	FilterBlur
)

// String returns the persisted name.
func (f Filter) String() string {
	return filter.Kind(f).String()
}

// ParseFilter maps a persisted name to a Filter. The empty name is none.
func ParseFilter(s string) (Filter, error) {
	k, ok := filter.ParseKind(s)
	if !ok {
		return FilterNone, fmt.Errorf("%w: filter %q", ErrInvalidInput, s)
	}
	return Filter(k), nil
}

// MarshalText encodes the filter name.
func (f Filter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes a filter name.
func (f *Filter) UnmarshalText(b []byte) error {
	v, err := ParseFilter(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Adjustment names one of the tonal sliders.
type Adjustment uint8

const (
	Brightness Adjustment = iota
	Contrast
	Saturation
)

// String returns the slider name.
func (a Adjustment) String() string {
	switch a {
	case Brightness:
		return "brightness"
	case Contrast:
		return "contrast"
	case Saturation:
		return "saturation"
	}
	return "unknown"
}

// ParseAdjustment maps a slider name to an Adjustment.
func ParseAdjustment(s string) (Adjustment, error) {
	for _, a := range []Adjustment{Brightness, Contrast, Saturation} {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: adjustment %q", ErrInvalidInput, s)
}

// Adjustment limits.
const (
	MinAdjustment = -100
	MaxAdjustment = 100
)

// Adjustments are a layer's pixel adjustments. Tonal values are in
// [-100, 100]; the zero value changes nothing.
type Adjustments struct {
	Brightness int    `json:"brightness"`
	Contrast   int    `json:"contrast"`
	Saturation int    `json:"saturation"`
	Filter     Filter `json:"filter"`
}

// IsZero reports whether the adjustments leave pixels unchanged.
func (a Adjustments) IsZero() bool {
	return a == Adjustments{}
}

// Validate checks every value is in range.
func (a Adjustments) Validate() error {
	for _, v := range [...]struct {
		name  string
		value int
	}{{"brightness", a.Brightness}, {"contrast", a.Contrast}, {"saturation", a.Saturation}} {
		if v.value < MinAdjustment || v.value > MaxAdjustment {
			return fmt.Errorf("%w: %s %d outside [%d, %d]", ErrInvalidInput, v.name, v.value, MinAdjustment, MaxAdjustment)
		}
	}
	if a.Filter > FilterBlur {
		return fmt.Errorf("%w: filter %d", ErrInvalidInput, a.Filter)
	}
	return nil
}

// With returns a copy with one slider changed.
func (a Adjustments) With(kind Adjustment, value int) Adjustments {
	switch kind {
	case Brightness:
		a.Brightness = value
	case Contrast:
		a.Contrast = value
	case Saturation:
		a.Saturation = value
	}
	return a
}

// Apply runs the adjustment pipeline over s in place.
func (a Adjustments) Apply(s *Surface) {
	filter.Apply(s.pix, filter.Params{
		Brightness: float64(a.Brightness),
		Contrast:   float64(a.Contrast),
		Saturation: float64(a.Saturation),
		Filter:     filter.Kind(a.Filter),
	})
}
