package editor

import (
	"fmt"
	"strings"

	imgcodec "github.com/f4ze/editor/internal/image"
)

// Interpolation selects the resampling kernel for Resize.
type Interpolation uint8

const (
	InterpNearest Interpolation = iota
	InterpBilinear
	InterpCatmullRom
)

var interpolationNames = [...]string{"nearest", "bilinear", "catmull-rom"}

func (m Interpolation) String() string {
	if int(m) < len(interpolationNames) {
		return interpolationNames[m]
	}
	return fmt.Sprintf("Interpolation(%d)", m)
}

// ParseInterpolation accepts "nearest", "bilinear" or "catmull-rom".
func ParseInterpolation(s string) (Interpolation, error) {
	for i, n := range interpolationNames {
		if strings.EqualFold(s, n) {
			return Interpolation(i), nil
		}
	}
	return InterpNearest, fmt.Errorf("%w: interpolation %q", ErrInvalidInput, s)
}

func (m Interpolation) codec() imgcodec.Interpolation {
	switch m {
	case InterpBilinear:
		return imgcodec.Bilinear
	case InterpCatmullRom:
		return imgcodec.CatmullRom
	default:
		return imgcodec.Nearest
	}
}

// Crop returns a new w x h surface holding the region at (x, y). Any part of
// the region outside s reads as transparent.
func (s *Surface) Crop(x, y, w, h int) (*Surface, error) {
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}
	out := newSurface(w, h)
	out.CopyFrom(s, -x, -y)
	return out, nil
}

// Resize resamples the whole surface into a new w x h surface.
func (s *Surface) Resize(w, h int, interp Interpolation) (*Surface, error) {
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}
	if w == s.width && h == s.height {
		return s.Clone(), nil
	}
	scaled := imgcodec.Scale(s.nrgba(), w, h, interp.codec())
	out := newSurface(w, h)
	copy(out.pix, scaled.Pix)
	return out, nil
}

// Rotate90 returns the surface turned a quarter turn, clockwise or
// counter-clockwise. Width and height swap.
func (s *Surface) Rotate90(clockwise bool) *Surface {
	out := newSurface(s.height, s.width)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			nx, ny := s.height-1-y, x
			if !clockwise {
				nx, ny = y, s.width-1-x
			}
			si := (y*s.width + x) * 4
			di := (ny*out.width + nx) * 4
			copy(out.pix[di:di+4], s.pix[si:si+4])
		}
	}
	return out
}

// Flip returns a mirrored copy: left-right when horizontal, top-bottom
// otherwise.
func (s *Surface) Flip(horizontal bool) *Surface {
	out := newSurface(s.width, s.height)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			nx, ny := s.width-1-x, y
			if !horizontal {
				nx, ny = x, s.height-1-y
			}
			si := (y*s.width + x) * 4
			di := (ny*s.width + nx) * 4
			copy(out.pix[di:di+4], s.pix[si:si+4])
		}
	}
	return out
}
