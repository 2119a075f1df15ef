package editor

import (
	"bytes"
	"image"
	"image/color"

	"github.com/f4ze/editor/internal/blend"
	imgcodec "github.com/f4ze/editor/internal/image"
	"github.com/f4ze/editor/internal/raster"
)

// Surface is a fixed-size RGBA8 pixel buffer, non-premultiplied, row-major.
// Its size never changes; operations that resize return a new Surface.
type Surface struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel
}

// NewSurface allocates a transparent surface.
func NewSurface(width, height int) (*Surface, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// newSurface is NewSurface for sizes already validated.
func newSurface(width, height int) *Surface {
	return &Surface{width: width, height: height, pix: make([]uint8, width*height*4)}
}

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.height }

// Pix returns the raw RGBA bytes. The slice aliases the surface.
func (s *Surface) Pix() []uint8 { return s.pix }

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Pixel returns the colour at (x, y). Out-of-bounds reads are transparent.
func (s *Surface) Pixel(x, y int) Color {
	if !s.inBounds(x, y) {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return Color{s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3]}
}

// SetPixel replaces the colour at (x, y). Out-of-bounds writes are ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	i := (y*s.width + x) * 4
	s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3] = c.R, c.G, c.B, c.A
}

// Clear fills the entire surface with a colour, replacing what was there.
func (s *Surface) Clear(c Color) {
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// Clone returns a deep copy.
func (s *Surface) Clone() *Surface {
	return &Surface{width: s.width, height: s.height, pix: bytes.Clone(s.pix)}
}

// Equal reports whether both surfaces have the same size and bytes.
func (s *Surface) Equal(o *Surface) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.width == o.width && s.height == o.height && bytes.Equal(s.pix, o.pix)
}

// DrawOver composites src source-over onto s with src's origin at (dx, dy).
// Parts of src outside s are dropped.
func (s *Surface) DrawOver(src *Surface, dx, dy int) {
	s.draw(src, dx, dy, blend.SourceOver)
}

// CopyFrom replaces the pixels of s covered by src placed at (dx, dy).
func (s *Surface) CopyFrom(src *Surface, dx, dy int) {
	s.draw(src, dx, dy, blend.Copy)
}

func (s *Surface) draw(src *Surface, dx, dy int, mode blend.Mode) {
	x0, x1 := max(0, dx), min(s.width, dx+src.width)
	y0, y1 := max(0, dy), min(s.height, dy+src.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for y := y0; y < y1; y++ {
		d := s.pix[(y*s.width+x0)*4 : (y*s.width+x1)*4]
		o := src.pix[((y-dy)*src.width+x0-dx)*4 : ((y-dy)*src.width+x1-dx)*4]
		if mode == blend.Copy {
			copy(d, o)
			continue
		}
		blend.Buffer(mode, d, o)
	}
}

// ToImage returns a copy of the pixels as an *image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// nrgba wraps the surface's own buffer without copying. Drawing into it
// draws into the surface.
func (s *Surface) nrgba() *image.NRGBA {
	return &image.NRGBA{Pix: s.pix, Stride: s.width * 4, Rect: image.Rect(0, 0, s.width, s.height)}
}

func (s *Surface) canvas() raster.Canvas {
	return raster.Canvas{Pix: s.pix, Width: s.width, Height: s.height}
}

// FromImage copies any image into a new surface anchored at the origin.
func FromImage(img image.Image) (*Surface, error) {
	b := img.Bounds()
	if err := checkDimensions(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	n := imgcodec.ToNRGBA(img)
	s := newSurface(b.Dx(), b.Dy())
	copy(s.pix, n.Pix)
	return s, nil
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.Pixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
