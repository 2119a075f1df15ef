// Package blend implements the Porter-Duff operators used by the editor.
//
// Pixels are non-premultiplied RGBA8, the layout of every layer surface. Each
// operator premultiplies internally, composites, and divides the colour back
// out so buffers never leave the non-premultiplied domain.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects a compositing operator.
type Mode uint8

const (
	// SourceOver draws the source on top: S + D*(1-Sa).
	SourceOver Mode = iota
	// DestinationOut erases the destination by the source alpha: D*(1-Sa).
	DestinationOut
	// Copy replaces the destination with the source.
	Copy
)

// String returns the canvas-style operator name.
func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "source-over"
	case DestinationOut:
		return "destination-out"
	case Copy:
		return "copy"
	default:
		return "unknown"
	}
}

// Pixel composites one source pixel onto one destination pixel with mode m.
func Pixel(m Mode, sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	switch m {
	case DestinationOut:
		return dr, dg, db, mulDiv255(da, inv255(sa))
	case Copy:
		return sr, sg, sb, sa
	default:
		return sourceOver(sr, sg, sb, sa, dr, dg, db, da)
	}
}

// sourceOver is S + D*(1-Sa) evaluated on non-premultiplied inputs.
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	switch sa {
	case 255:
		return sr, sg, sb, 255
	case 0:
		return dr, dg, db, da
	}
	// Destination weight in alpha units: Da*(1-Sa).
	dw := uint32(mulDiv255(da, inv255(sa)))
	ao := uint32(sa) + dw
	if ao == 0 {
		return 0, 0, 0, 0
	}
	ch := func(s, d byte) byte {
		v := (uint32(s)*uint32(sa) + uint32(d)*dw + ao/2) / ao
		if v > 255 {
			v = 255
		}
		return byte(v)
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db), byte(ao)
}

// Over composites the whole of src onto dst in place. The slices hold RGBA8
// pixels and must have equal length.
func Over(dst, src []byte) {
	Buffer(SourceOver, dst, src)
}

// Buffer composites src onto dst in place with mode m.
func Buffer(m Mode, dst, src []byte) {
	n := min(len(dst), len(src))
	for i := 0; i+3 < n; i += 4 {
		dst[i], dst[i+1], dst[i+2], dst[i+3] = Pixel(m,
			src[i], src[i+1], src[i+2], src[i+3],
			dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}
