package editor

import "testing"

var red = RGB(255, 0, 0)

func mustEditor(t *testing.T, opts ...Option) *Editor {
	t.Helper()
	ed, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ed
}

func TestCompositeDeterministic(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(120, 80))
	if _, err := ed.AddLayer("shapes"); err != nil {
		t.Fatal(err)
	}
	for _, obj := range []Object{
		&Shape{Kind: Rectangle, X: 5, Y: 5, Width: 30, Height: 20, Fill: red.ptr(), Stroke: Black.ptr(), LineWidth: 2},
		&Shape{Kind: Circle, X: 40, Y: 10, Width: 30, Height: 30, Fill: RGB(0, 128, 0).ptr()},
		&Shape{Kind: Triangle, X: 80, Y: 10, Width: 30, Height: 30, Stroke: Black.ptr(), LineWidth: 3},
		&Text{Content: "F4ZE", X: 10, Y: 50, FontFamily: "Arial", FontSize: 16, Color: Black, Underline: true},
	} {
		if err := ed.AddObject(obj); err != nil {
			t.Fatal(err)
		}
	}
	if err := ed.SetAdjustment(Saturation, 40); err != nil {
		t.Fatal(err)
	}

	a, b := ed.Render(), ed.Render()
	if !a.Equal(b) {
		t.Error("two renders of the same document differ")
	}
	restored := ed.History().Current().Document()
	if !ed.Compositor().Composite(restored, CompositeOptions{}).Equal(ed.Flatten(nil)) {
		t.Error("render of a restored snapshot differs")
	}
}

func TestCompositeLayers(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(20, 20))
	top, _ := ed.AddLayer("top")
	if err := ed.AddObject(&Shape{Kind: Rectangle, X: 0, Y: 0, Width: 10, Height: 10, Fill: red.ptr()}); err != nil {
		t.Fatal(err)
	}

	out := ed.Flatten(nil)
	if got := out.Pixel(5, 5); got != red {
		t.Errorf("covered pixel = %v, want red", got)
	}
	if got := out.Pixel(15, 15); got != White {
		t.Errorf("uncovered pixel = %v, want white", got)
	}

	if err := ed.SetLayerVisible(top.ID, false); err != nil {
		t.Fatal(err)
	}
	if got := ed.Flatten(nil).Pixel(5, 5); got != White {
		t.Errorf("hidden layer drawn: pixel = %v", got)
	}
}

func TestCompositeBackground(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(4, 4))
	bg := ed.Document().Layers()[0]
	if err := ed.SetLayerVisible(bg.ID, false); err != nil {
		t.Fatal(err)
	}
	if got := ed.Flatten(nil).Pixel(1, 1); got != Transparent {
		t.Errorf("pixel = %v, want transparent", got)
	}
	if got := ed.Flatten(Black.ptr()).Pixel(1, 1); got != Black {
		t.Errorf("pixel = %v, want black", got)
	}
}

func TestSelectionDecoration(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(60, 60))
	if err := ed.AddObject(&Shape{Kind: Rectangle, X: 10, Y: 10, Width: 20, Height: 20, Fill: red.ptr()}); err != nil {
		t.Fatal(err)
	}
	// The box is padded to (5, 5, 30, 30); dashes along the top edge run
	// [5,10) [15,20) [25,30).
	out := ed.Render()
	if got := out.Pixel(17, 5); got != SelectionBlue {
		t.Errorf("dash pixel = %v, want selection blue", got)
	}
	if got := out.Pixel(12, 5); got != White {
		t.Errorf("gap pixel = %v, want white", got)
	}
	if got := out.Pixel(5, 5); got != White {
		t.Errorf("handle centre = %v, want white", got)
	}
	if got := ed.Flatten(nil).Pixel(17, 5); got != White {
		t.Errorf("Flatten drew the selection: %v", got)
	}
}

func TestHitTestShapes(t *testing.T) {
	m := NewCompositor(nil).Measurer()
	tests := []struct {
		name string
		obj  Object
		p    Point
		want bool
	}{
		{"circle centre", &Shape{Kind: Circle, Width: 100, Height: 100}, Pt(50, 50), true},
		{"circle corner", &Shape{Kind: Circle, Width: 100, Height: 100}, Pt(0, 0), false},
		{"circle uses larger side", &Shape{Kind: Circle, Width: 100, Height: 20}, Pt(50, 55), true},
		{"rect edge", &Shape{Kind: Rectangle, X: 10, Y: 10, Width: 10, Height: 10}, Pt(20, 20), true},
		{"rect outside", &Shape{Kind: Rectangle, X: 10, Y: 10, Width: 10, Height: 10}, Pt(21, 20), false},
		{"triangle inside", &Shape{Kind: Triangle, Width: 100, Height: 100}, Pt(50, 60), true},
		{"triangle corner", &Shape{Kind: Triangle, Width: 100, Height: 100}, Pt(5, 5), false},
		{"triangle apex", &Shape{Kind: Triangle, Width: 100, Height: 100}, Pt(50, 0), false},
		{"line box", &Shape{Kind: Line, X: 50, Y: 50, Width: -40, Height: -40}, Pt(20, 30), true},
		{"text box", &Text{Content: "Hello", X: 0, Y: 0, FontFamily: "Go", FontSize: 20}, Pt(5, 10), true},
		{"text below", &Text{Content: "Hello", X: 0, Y: 0, FontFamily: "Go", FontSize: 20}, Pt(5, 21), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTest(tt.obj, tt.p, m); got != tt.want {
				t.Errorf("HitTest(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTextRendersInk(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(80, 30))
	if err := ed.AddObject(&Text{Content: "WW", X: 2, Y: 2, FontFamily: "Go", FontSize: 20, Color: Black}); err != nil {
		t.Fatal(err)
	}
	out := ed.Flatten(nil)
	dark := 0
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			if out.Pixel(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("text drew no ink")
	}
}
