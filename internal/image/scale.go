package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation selects the resampling kernel.
type Interpolation uint8

const (
	Nearest Interpolation = iota
	Bilinear
	CatmullRom
)

// String returns a human-readable name.
func (m Interpolation) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	case CatmullRom:
		return "catmull-rom"
	default:
		return "unknown"
	}
}

func (m Interpolation) scaler() draw.Scaler {
	switch m {
	case Bilinear:
		return draw.BiLinear
	case CatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Scale resamples the whole of src into a new w x h image.
func Scale(src image.Image, w, h int, m Interpolation) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	m.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// FitWithin returns the largest size with the aspect ratio of w x h whose
// sides are both at most limit. Sizes already within the limit are returned
// unchanged. Results are floored and never below 1.
func FitWithin(w, h, limit int) (int, int) {
	if limit <= 0 || (w <= limit && h <= limit) {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}
