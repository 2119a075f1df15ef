package filter

import "math"

// Kind names a whole-layer filter.
type Kind uint8

const (
	None Kind = iota
	Grayscale
	Sepia
	Invert
	Blur
)

var kindNames = [...]string{"none", "grayscale", "sepia", "invert", "blur"}

// String returns the persisted name of the filter.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a persisted name to a Kind. An empty name is None.
func ParseKind(s string) (Kind, bool) {
	if s == "" {
		return None, true
	}
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return None, false
}

// Params configures one pass of the pipeline. Brightness, Contrast and
// Saturation are in [-100, 100]; zero leaves the stage out.
type Params struct {
	Brightness float64
	Contrast   float64
	Saturation float64
	Filter     Kind
}

// IsIdentity reports whether Apply would leave every buffer unchanged.
func (p Params) IsIdentity() bool {
	return p.Brightness == 0 && p.Contrast == 0 && p.Saturation == 0 && p.Filter == None
}

// Apply runs the pipeline over pix in place.
func Apply(pix []byte, p Params) {
	if p.IsIdentity() {
		return
	}
	if p.Brightness != 0 || p.Contrast != 0 || p.Saturation != 0 {
		tonal(pix, p)
	}
	switch p.Filter {
	case Grayscale:
		GrayscaleMatrix.Apply(pix)
	case Sepia:
		SepiaMatrix.Apply(pix)
	case Invert:
		InvertMatrix.Apply(pix)
	case Blur:
		boxBlurStream(pix)
	}
}

func tonal(pix []byte, p Params) {
	delta := p.Brightness * 2.55
	factor := ContrastFactor(p.Contrast)
	sat := 1 + p.Saturation/100

	for i := 0; i+3 < len(pix); i += 4 {
		r, g, b := float64(pix[i]), float64(pix[i+1]), float64(pix[i+2])
		if p.Brightness != 0 {
			r, g, b = roundClamp(r+delta), roundClamp(g+delta), roundClamp(b+delta)
		}
		if p.Contrast != 0 {
			r = roundClamp(factor*(r-128) + 128)
			g = roundClamp(factor*(g-128) + 128)
			b = roundClamp(factor*(b-128) + 128)
		}
		if p.Saturation != 0 {
			avg := (r + g + b) / 3
			r = roundClamp(avg + (r-avg)*sat)
			g = roundClamp(avg + (g-avg)*sat)
			b = roundClamp(avg + (b-avg)*sat)
		}
		pix[i], pix[i+1], pix[i+2] = byte(r), byte(g), byte(b)
	}
}

// ContrastFactor is the standard 259-based contrast curve for c in
// [-100, 100].
func ContrastFactor(c float64) float64 {
	return 259 * (c + 100) / (100 * (259 - c))
}

// boxBlurStream averages each interior pixel with its stream neighbours. The
// previous neighbour has already been blurred when it is read.
func boxBlurStream(pix []byte) {
	for i := 4; i+7 < len(pix); i += 4 {
		for c := 0; c < 3; c++ {
			sum := float64(pix[i-4+c]) + float64(pix[i+c]) + float64(pix[i+4+c])
			pix[i+c] = clampByte(sum / 3)
		}
	}
}

// roundClamp rounds half to even, the way a clamped byte array stores floats.
func roundClamp(v float64) float64 {
	v = math.RoundToEven(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampByte(v float64) byte {
	return byte(roundClamp(v))
}
