package image

import (
	"path/filepath"
	"strings"
)

// Format identifies an encoded image format.
type Format uint8

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatWebP
	FormatBMP
	FormatTIFF
	FormatGIF
)

var formatInfo = [...]struct {
	name string
	mime string
	ext  string
}{
	FormatPNG:  {"png", "image/png", ".png"},
	FormatJPEG: {"jpeg", "image/jpeg", ".jpg"},
	FormatWebP: {"webp", "image/webp", ".webp"},
	FormatBMP:  {"bmp", "image/bmp", ".bmp"},
	FormatTIFF: {"tiff", "image/tiff", ".tiff"},
	FormatGIF:  {"gif", "image/gif", ".gif"},
}

// String returns the short format name.
func (f Format) String() string {
	if int(f) < len(formatInfo) {
		return formatInfo[f].name
	}
	return "unknown"
}

// MIME returns the media type.
func (f Format) MIME() string {
	if int(f) < len(formatInfo) {
		return formatInfo[f].mime
	}
	return "application/octet-stream"
}

// Ext returns the canonical file extension, dot included.
func (f Format) Ext() string {
	if int(f) < len(formatInfo) {
		return formatInfo[f].ext
	}
	return ""
}

// HasAlpha reports whether the encoder preserves transparency.
func (f Format) HasAlpha() bool {
	return f != FormatJPEG
}

// ParseFormat accepts a format name ("png", "jpg"), a MIME type or a file
// extension.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, ".")
	s = strings.TrimPrefix(s, "image/")
	switch s {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "gif":
		return FormatGIF, nil
	}
	return 0, ErrUnsupportedFormat
}

// FormatForPath derives the format from a file name's extension.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
