// Package image is the editor's image codec.
//
// It decodes PNG, JPEG, GIF, WebP, BMP and TIFF into non-premultiplied
// *image.NRGBA buffers, encodes PNG, JPEG, BMP and TIFF, converts to and from
// base64 data URLs, and resamples with golang.org/x/image/draw.
package image
