package editor

import "time"

// DefaultMaxImportDimension bounds imported images on both axes.
const DefaultMaxImportDimension = 2000

// Option configures an Editor during creation.
//
// Example:
//
//	ed, err := editor.New(
//	    editor.WithCanvasSize(1024, 768),
//	    editor.WithHistoryCapacity(50),
//	)
type Option func(*options)

type options struct {
	width, height   int
	background      Color
	historyCapacity int
	fillTolerance   int
	fillLimit       int
	maxImport       int
	interpolation   Interpolation
	text            TextRenderer
	codec           ImageCodec
	projectName     string
	now             func() time.Time
}

func defaultOptions() options {
	return options{
		width:           DefaultWidth,
		height:          DefaultHeight,
		background:      White,
		historyCapacity: DefaultHistoryCapacity,
		fillTolerance:   DefaultFillTolerance,
		fillLimit:       DefaultFillLimit,
		maxImport:       DefaultMaxImportDimension,
		interpolation:   InterpBilinear,
		projectName:     DefaultProjectName,
		now:             time.Now,
	}
}

// WithCanvasSize sets the size of the initial document.
func WithCanvasSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithBackground sets the fill of the initial background layer.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithHistoryCapacity bounds the undo history.
func WithHistoryCapacity(n int) Option {
	return func(o *options) {
		o.historyCapacity = n
	}
}

// WithFloodFill sets the per-channel tolerance and the visited pixel limit
// of the fill tool.
func WithFloodFill(tolerance, limit int) Option {
	return func(o *options) {
		o.fillTolerance, o.fillLimit = tolerance, limit
	}
}

// WithMaxImportDimension bounds imported images. Zero disables the bound.
func WithMaxImportDimension(n int) Option {
	return func(o *options) {
		o.maxImport = n
	}
}

// WithInterpolation selects the kernel used by import scaling and canvas
// resizes.
func WithInterpolation(m Interpolation) Option {
	return func(o *options) {
		o.interpolation = m
	}
}

// WithTextRenderer replaces the default font bank.
func WithTextRenderer(tr TextRenderer) Option {
	return func(o *options) {
		o.text = tr
	}
}

// WithCodec replaces the image codec used for import and export.
func WithCodec(c ImageCodec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithProjectName sets the name written into saved projects.
func WithProjectName(name string) Option {
	return func(o *options) {
		o.projectName = name
	}
}

// WithClock sets the time source for project timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
