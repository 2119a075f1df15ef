package filter

// ColorMatrix is a 4x5 colour transformation in row-major order:
//
//	[R']   [m00 m01 m02 m03 m04]   [R]
//	[G'] = [m10 m11 m12 m13 m14] * [G]
//	[B']   [m20 m21 m22 m23 m24]   [B]
//	[A']   [m30 m31 m32 m33 m34]   [A]
//	                               [1]
//
// Channels are in [0, 255] during the transform. The alpha row is ignored:
// adjustments never touch alpha.
type ColorMatrix [20]float64

// Identity passes colours through unchanged.
var Identity = ColorMatrix{
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
}

// GrayscaleMatrix maps every channel to 0.3R + 0.59G + 0.11B.
var GrayscaleMatrix = ColorMatrix{
	0.3, 0.59, 0.11, 0, 0,
	0.3, 0.59, 0.11, 0, 0,
	0.3, 0.59, 0.11, 0, 0,
	0, 0, 0, 1, 0,
}

// SepiaMatrix is the classic Microsoft sepia tone.
var SepiaMatrix = ColorMatrix{
	0.393, 0.769, 0.189, 0, 0,
	0.349, 0.686, 0.168, 0, 0,
	0.272, 0.534, 0.131, 0, 0,
	0, 0, 0, 1, 0,
}

// InvertMatrix maps each channel c to 255 - c.
var InvertMatrix = ColorMatrix{
	-1, 0, 0, 0, 255,
	0, -1, 0, 0, 255,
	0, 0, -1, 0, 255,
	0, 0, 0, 1, 0,
}

// Transform applies the matrix to one pixel and returns clamped channels.
func (m *ColorMatrix) Transform(r, g, b, a byte) (byte, byte, byte) {
	fr, fg, fb, fa := float64(r), float64(g), float64(b), float64(a)
	nr := m[0]*fr + m[1]*fg + m[2]*fb + m[3]*fa + m[4]
	ng := m[5]*fr + m[6]*fg + m[7]*fb + m[8]*fa + m[9]
	nb := m[10]*fr + m[11]*fg + m[12]*fb + m[13]*fa + m[14]
	return clampByte(nr), clampByte(ng), clampByte(nb)
}

// Apply transforms every pixel of pix in place.
func (m *ColorMatrix) Apply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2] = m.Transform(pix[i], pix[i+1], pix[i+2], pix[i+3])
	}
}
