package raster

import (
	"testing"

	"github.com/f4ze/editor/internal/blend"
	"github.com/f4ze/editor/internal/geom"
)

var red = [4]byte{255, 0, 0, 255}

func newCanvas(w, h int) Canvas {
	return Canvas{Pix: make([]byte, w*h*4), Width: w, Height: h}
}

func (c Canvas) alpha(x, y int) byte {
	return c.Pix[(y*c.Width+x)*4+3]
}

func covered(c Canvas) int {
	n := 0
	for i := 3; i < len(c.Pix); i += 4 {
		if c.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestFillRect(t *testing.T) {
	c := newCanvas(10, 10)
	c.FillRect(geom.Rect{X: 2, Y: 3, W: 4, H: 2}, red, blend.SourceOver)
	if got := covered(c); got != 8 {
		t.Errorf("covered = %d, want 8", got)
	}
	if c.alpha(2, 3) != 255 || c.alpha(5, 4) != 255 {
		t.Error("expected corners inside")
	}
	if c.alpha(6, 3) != 0 || c.alpha(2, 5) != 0 {
		t.Error("far edges are exclusive")
	}
}

func TestFillRectClipped(t *testing.T) {
	c := newCanvas(4, 4)
	c.FillRect(geom.Rect{X: -10, Y: -10, W: 100, H: 100}, red, blend.SourceOver)
	if got := covered(c); got != 16 {
		t.Errorf("covered = %d, want 16", got)
	}
}

func TestStrokeRect(t *testing.T) {
	c := newCanvas(20, 20)
	c.StrokeRect(geom.Rect{X: 5, Y: 5, W: 10, H: 10}, 2, red, blend.SourceOver)
	if c.alpha(10, 10) != 0 {
		t.Error("interior should be empty")
	}
	if c.alpha(5, 10) != 255 || c.alpha(4, 10) != 255 {
		t.Error("left edge should be stroked on both sides")
	}
	if c.alpha(2, 10) != 0 {
		t.Error("pixel far outside should be empty")
	}
}

func TestPolylineRoundCap(t *testing.T) {
	c := newCanvas(20, 20)
	c.Polyline([]geom.Point{{X: 5, Y: 10}, {X: 15, Y: 10}}, 4, red, blend.SourceOver)
	if c.alpha(3, 10) != 255 {
		t.Error("round cap should extend past the start point")
	}
	if c.alpha(10, 13) != 0 {
		t.Error("pixel outside the stroke width should be empty")
	}
}

func TestPolylineSinglePoint(t *testing.T) {
	c := newCanvas(10, 10)
	c.Polyline([]geom.Point{{X: 5, Y: 5}}, 4, red, blend.SourceOver)
	if c.alpha(5, 5) != 255 {
		t.Error("single point should paint a dot")
	}
}

func TestPolylineCompositesOnce(t *testing.T) {
	c := newCanvas(20, 20)
	half := [4]byte{0, 0, 0, 128}
	c.Polyline([]geom.Point{{X: 5, Y: 10}, {X: 10, Y: 10}, {X: 5, Y: 10}}, 4, half, blend.SourceOver)
	if a := c.alpha(7, 10); a != 128 {
		t.Errorf("overlapping segments alpha = %d, want 128", a)
	}
}

func TestSegmentButtCap(t *testing.T) {
	c := newCanvas(20, 20)
	c.Segment(geom.Point{X: 5, Y: 10}, geom.Point{X: 15, Y: 10}, 2, red, blend.SourceOver)
	if c.alpha(10, 9) != 255 {
		t.Error("segment body should be covered")
	}
	if c.alpha(3, 10) != 0 {
		t.Error("butt cap should not extend past the start point")
	}
}

func TestDestinationOutErases(t *testing.T) {
	c := newCanvas(10, 10)
	c.FillRect(geom.Rect{W: 10, H: 10}, red, blend.SourceOver)
	c.Polyline([]geom.Point{{X: 5, Y: 5}}, 2, [4]byte{0, 0, 0, 255}, blend.DestinationOut)
	if c.alpha(5, 5) != 0 {
		t.Error("eraser should clear alpha")
	}
	if c.alpha(0, 0) != 255 {
		t.Error("eraser should leave other pixels")
	}
}

func TestDashedRect(t *testing.T) {
	c := newCanvas(40, 10)
	c.DashedRect(geom.Rect{X: 0, Y: 2, W: 30, H: 6}, 2, 5, 5, red)
	if c.alpha(2, 2) != 255 {
		t.Error("first dash should be drawn")
	}
	if c.alpha(7, 2) != 0 {
		t.Error("first gap should be empty")
	}
	if c.alpha(12, 2) != 255 {
		t.Error("second dash should be drawn")
	}
}
