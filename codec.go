package editor

import (
	"errors"
	"fmt"
	"image"
	"io"

	imgcodec "github.com/f4ze/editor/internal/image"
)

// Format identifies an encoded image format.
type Format = imgcodec.Format

// Supported formats.
const (
	FormatPNG  = imgcodec.FormatPNG
	FormatJPEG = imgcodec.FormatJPEG
	FormatWebP = imgcodec.FormatWebP
	FormatBMP  = imgcodec.FormatBMP
	FormatTIFF = imgcodec.FormatTIFF
	FormatGIF  = imgcodec.FormatGIF
)

// ErrUnsupportedFormat is returned when a codec cannot encode a format.
var ErrUnsupportedFormat = imgcodec.ErrUnsupportedFormat

// ParseFormat accepts a format name, MIME type or file extension.
func ParseFormat(s string) (Format, error) {
	f, err := imgcodec.ParseFormat(s)
	if err != nil {
		return 0, fmt.Errorf("%w: format %q", ErrInvalidInput, s)
	}
	return f, nil
}

// ImageCodec decodes imported files and encodes exports.
type ImageCodec interface {
	Decode(r io.Reader) (image.Image, error)
	Encode(w io.Writer, img image.Image, f Format) error
}

// DefaultCodec decodes PNG, JPEG, GIF, WebP, BMP and TIFF and encodes PNG,
// JPEG, BMP and TIFF.
type DefaultCodec struct {
	// JPEGQuality is 1-100; zero selects the encoder default.
	JPEGQuality int
}

// Decode implements ImageCodec. Input that is not an image yields
// ErrUnsupportedFile.
func (c DefaultCodec) Decode(r io.Reader) (image.Image, error) {
	img, err := imgcodec.Decode(r)
	if err != nil {
		if errors.Is(err, imgcodec.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFile, err)
		}
		return nil, err
	}
	return img, nil
}

// Encode implements ImageCodec.
func (c DefaultCodec) Encode(w io.Writer, img image.Image, f Format) error {
	return imgcodec.Encode(w, img, f, &imgcodec.EncodeOptions{Quality: c.JPEGQuality})
}
