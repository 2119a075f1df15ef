package editor

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestNewCanvasRectangleUndoRedo(t *testing.T) {
	ed := mustEditor(t)
	if err := ed.NewCanvas(800, 600, White); err != nil {
		t.Fatal(err)
	}
	blank := ed.Flatten(nil)

	rect := &Shape{Kind: Rectangle, X: 100, Y: 100, Width: 200, Height: 150, Fill: red.ptr(), Stroke: Black.ptr(), LineWidth: 2}
	if err := ed.AddObject(rect); err != nil {
		t.Fatal(err)
	}
	drawn := ed.Flatten(nil)
	if got := drawn.Pixel(200, 175); got != red {
		t.Fatalf("inside pixel = %v, want red", got)
	}
	if ed.History().Len() != 2 || ed.History().Cursor() != 1 {
		t.Fatalf("history len=%d cursor=%d, want 2/1", ed.History().Len(), ed.History().Cursor())
	}

	if !ed.Undo() {
		t.Fatal("Undo() = false")
	}
	if n := len(ed.Document().CurrentLayer().Objects); n != 0 {
		t.Errorf("objects after undo = %d, want 0", n)
	}
	if !ed.Flatten(nil).Equal(blank) {
		t.Error("undo did not restore the blank canvas")
	}
	if ed.Undo() {
		t.Error("Undo() past the first state = true")
	}

	if !ed.Redo() {
		t.Fatal("Redo() = false")
	}
	if !ed.Flatten(nil).Equal(drawn) {
		t.Error("redo did not restore the rectangle")
	}
	if ed.Redo() {
		t.Error("Redo() past the newest state = true")
	}
}

func TestAddLayerNames(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(4, 4))
	l, err := ed.AddLayer("  ")
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "Layer 2" {
		t.Errorf("Name = %q, want Layer 2", l.Name)
	}
	if err := ed.RenameLayer(l.ID, "Ink"); err != nil {
		t.Fatal(err)
	}
	if err := ed.RenameLayer(l.ID, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("RenameLayer(empty) = %v, want ErrInvalidInput", err)
	}
	got, _ := ed.Document().Layer(l.ID)
	if got.Name != "Ink" {
		t.Errorf("Name = %q, want Ink", got.Name)
	}
}

func TestFailedOperationsDoNotCheckpoint(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(10, 10))
	bg := ed.Document().CurrentLayer()

	checks := []struct {
		name string
		err  error
		want error
	}{
		{"delete background", ed.DeleteLayer(bg.ID), ErrLastLayer},
		{"delete unknown", ed.DeleteLayer(42), ErrLayerNotFound},
		{"adjust out of range", ed.SetAdjustment(Brightness, 101), ErrInvalidInput},
		{"empty text", ed.AddObject(&Text{FontSize: 12}), ErrInvalidInput},
		{"nil object", ed.AddObject(nil), ErrInvalidInput},
		{"move nothing", ed.MoveSelected(1, 1), ErrNoSelection},
		{"delete nothing", ed.DeleteSelected(), ErrNoSelection},
		{"empty stroke", ed.Stroke(nil, Black, 5, false), ErrInvalidInput},
		{"crop degenerate", ed.CropTo(Rect{W: 0.5, H: 4}), ErrInvalidInput},
		{"resize zero", ed.ResizeCanvas(0, 5), ErrInvalidInput},
		{"canvas zero", ed.NewCanvas(5, 0, White), ErrInvalidInput},
	}
	for _, c := range checks {
		if !errors.Is(c.err, c.want) {
			t.Errorf("%s: err = %v, want %v", c.name, c.err, c.want)
		}
	}
	if ed.History().Len() != 1 {
		t.Errorf("history len = %d, want 1", ed.History().Len())
	}
}

func TestAddObjectRejectsPlacedObject(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(40, 40))
	bg := ed.Document().CurrentLayer()

	// Loaded projects may hold shapes with negative extents.
	placed := &Shape{Kind: Rectangle, X: 30, Y: 30, Width: -10, Height: -10, Fill: red.ptr()}
	bg.Objects = append(bg.Objects, placed)

	if err := ed.AddObject(placed); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("re-add on same layer: err = %v, want ErrInvalidInput", err)
	}
	if _, err := ed.AddLayer("top"); err != nil {
		t.Fatal(err)
	}
	entries := ed.History().Len()
	if err := ed.AddObject(placed); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("add to second layer: err = %v, want ErrInvalidInput", err)
	}
	if placed.X != 30 || placed.Width != -10 {
		t.Errorf("rejected object was changed: %+v", placed)
	}
	if n := len(ed.Document().CurrentLayer().Objects); n != 0 {
		t.Errorf("top layer has %d objects, want 0", n)
	}
	if ed.History().Len() != entries {
		t.Errorf("history len = %d, want %d", ed.History().Len(), entries)
	}
}

func TestDeleteLayerThroughEditor(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(4, 4))
	bg := ed.Document().CurrentLayer()
	l2, _ := ed.AddLayer("")
	l3, _ := ed.AddLayer("")

	if err := ed.DeleteLayer(bg.ID); !errors.Is(err, ErrBackgroundLayer) {
		t.Errorf("DeleteLayer(background) = %v, want ErrBackgroundLayer", err)
	}
	if err := ed.DeleteLayer(l3.ID); err != nil {
		t.Fatal(err)
	}
	if ed.Document().CurrentLayer().ID != l2.ID {
		t.Error("layer below the deleted one is not current")
	}
	if !ed.Undo() || ed.Document().LayerCount() != 3 {
		t.Error("undo did not restore the deleted layer")
	}
}

func TestBrightnessClamps(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(4, 4))
	if err := ed.FillLayer(ed.Document().CurrentLayer().ID, RGB(250, 250, 250)); err != nil {
		t.Fatal(err)
	}
	if err := ed.SetAdjustment(Brightness, 100); err != nil {
		t.Fatal(err)
	}
	if got := ed.Flatten(nil).Pixel(2, 2); got != White {
		t.Errorf("pixel = %v, want #ffffff", got)
	}
	// Adjustments are applied on composite; the raster is untouched.
	if got := ed.Document().CurrentLayer().Surface.Pixel(2, 2); got != RGB(250, 250, 250) {
		t.Errorf("raster = %v, want #fafafa", got)
	}

	if err := ed.SetFilter(FilterInvert); err != nil {
		t.Fatal(err)
	}
	if got := ed.Flatten(nil).Pixel(2, 2); got != Black {
		t.Errorf("inverted pixel = %v, want black", got)
	}
}

func TestCropTranslatesEverything(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(100, 80))
	ed.Document().CurrentLayer().Surface.SetPixel(25, 15, red)
	if _, err := ed.AddLayer("shapes"); err != nil {
		t.Fatal(err)
	}
	shape := &Shape{Kind: Rectangle, X: 30, Y: 30, Width: 10, Height: 10, Fill: Black.ptr()}
	if err := ed.AddObject(shape); err != nil {
		t.Fatal(err)
	}

	// Negative extent is normalized; the origin is floored.
	if err := ed.CropTo(Rect{X: 70.7, Y: 50.2, W: -50.5, H: -40}); err != nil {
		t.Fatal(err)
	}
	doc := ed.Document()
	if doc.Width() != 50 || doc.Height() != 40 {
		t.Fatalf("size = %dx%d, want 50x40", doc.Width(), doc.Height())
	}
	for _, l := range doc.Layers() {
		if l.Surface.Width() != 50 || l.Surface.Height() != 40 {
			t.Errorf("layer %q is %dx%d", l.Name, l.Surface.Width(), l.Surface.Height())
		}
	}
	if got := doc.Layers()[0].Surface.Pixel(5, 5); got != red {
		t.Errorf("cropped pixel = %v, want red", got)
	}
	if shape.X != 10 || shape.Y != 20 {
		t.Errorf("shape at (%v, %v), want (10, 20)", shape.X, shape.Y)
	}
}

func TestRotateFlipResize(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(100, 80))
	shape := &Shape{Kind: Rectangle, X: 10, Y: 20, Width: 30, Height: 10}
	if err := ed.AddObject(shape); err != nil {
		t.Fatal(err)
	}

	if err := ed.Rotate90(true); err != nil {
		t.Fatal(err)
	}
	if w, h := ed.Document().Width(), ed.Document().Height(); w != 80 || h != 100 {
		t.Fatalf("rotated size = %dx%d, want 80x100", w, h)
	}
	if shape.X != 50 || shape.Y != 10 || shape.Width != 10 || shape.Height != 30 {
		t.Errorf("rotated shape = %+v", shape)
	}

	if err := ed.Rotate90(false); err != nil {
		t.Fatal(err)
	}
	if shape.X != 10 || shape.Y != 20 || shape.Width != 30 || shape.Height != 10 {
		t.Errorf("rotated back = %+v", shape)
	}

	if err := ed.FlipAxis(true); err != nil {
		t.Fatal(err)
	}
	if shape.X != 60 || shape.Y != 20 {
		t.Errorf("flipped shape at (%v, %v), want (60, 20)", shape.X, shape.Y)
	}

	if err := ed.ResizeCanvas(50, 160); err != nil {
		t.Fatal(err)
	}
	if shape.X != 30 || shape.Y != 40 || shape.Width != 15 || shape.Height != 20 {
		t.Errorf("resized shape = %+v", shape)
	}
	if got := ed.Document().Layers()[0].Surface.Width(); got != 50 {
		t.Errorf("layer width = %d, want 50", got)
	}
}

func TestSelectAtAndMove(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(100, 100))
	low := &Shape{Kind: Rectangle, X: 0, Y: 0, Width: 50, Height: 50}
	high := &Shape{Kind: Rectangle, X: 25, Y: 25, Width: 50, Height: 50}
	for _, s := range []*Shape{low, high} {
		if err := ed.AddObject(s); err != nil {
			t.Fatal(err)
		}
	}

	if got := ed.SelectAt(Pt(90, 90)); got != nil {
		t.Errorf("SelectAt(empty) = %v, want nil", got)
	}
	if got := ed.SelectAt(Pt(30, 30)); got != high {
		t.Error("SelectAt did not return the top-most object")
	}
	// Clicking inside the current selection keeps it even where another
	// object is on top.
	if err := ed.Select(low); err != nil {
		t.Fatal(err)
	}
	if got := ed.SelectAt(Pt(30, 30)); got != low {
		t.Error("click inside the selection changed it")
	}

	n := ed.History().Len()
	for range 3 {
		if err := ed.MoveSelected(2, 1); err != nil {
			t.Fatal(err)
		}
	}
	if ed.History().Len() != n {
		t.Error("uncommitted move was checkpointed")
	}
	if !ed.CommitMove() || ed.CommitMove() {
		t.Error("CommitMove should report exactly one pending move")
	}
	if low.X != 6 || low.Y != 3 || ed.History().Len() != n+1 {
		t.Errorf("low at (%v, %v), history %d", low.X, low.Y, ed.History().Len())
	}
}

func TestUpdateSelectedText(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(50, 50))
	txt := &Text{Content: "a", FontFamily: "Go", FontSize: 12, Color: Black}
	if err := ed.AddObject(txt); err != nil {
		t.Fatal(err)
	}
	if err := ed.UpdateSelectedText(func(t *Text) { t.Content = "" }); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty edit = %v, want ErrInvalidInput", err)
	}
	if txt.Content != "a" {
		t.Errorf("rejected edit applied: %q", txt.Content)
	}
	if err := ed.UpdateSelectedText(func(t *Text) { t.Bold = true }); err != nil || !txt.Bold {
		t.Errorf("bold edit: err=%v bold=%v", err, txt.Bold)
	}
}

func TestFloodFillCheckpoints(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(20, 20))
	if res := ed.FloodFill(Pt(3, 3), White); res.Filled != 0 {
		t.Errorf("same-colour fill filled %d", res.Filled)
	}
	if ed.History().Len() != 1 {
		t.Error("no-op fill was checkpointed")
	}
	res := ed.FloodFill(Pt(3.9, 3.2), red)
	if res.Filled != 400 || res.Truncated {
		t.Errorf("fill = %+v, want 400 filled", res)
	}
	if ed.History().Len() != 2 {
		t.Error("fill was not checkpointed")
	}
	if got := ed.PickColor(Pt(19, 19)); got != red {
		t.Errorf("PickColor = %v, want red", got)
	}
}

func TestFloodFillLimitOption(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(40, 40), WithFloodFill(10, 100))
	res := ed.FloodFill(Pt(0, 0), red)
	if !res.Truncated {
		t.Errorf("fill = %+v, want truncated", res)
	}
}

func TestImportDecoded(t *testing.T) {
	ed := mustEditor(t, WithMaxImportDimension(100))
	src := image.NewNRGBA(image.Rect(0, 0, 400, 100))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	if err := ed.ImportDecoded(src); err != nil {
		t.Fatal(err)
	}
	doc := ed.Document()
	if doc.Width() != 100 || doc.Height() != 25 {
		t.Fatalf("size = %dx%d, want 100x25", doc.Width(), doc.Height())
	}
	if got := doc.CurrentLayer().Surface.Pixel(50, 12); got != White {
		t.Errorf("transparent source over white = %v, want white", got)
	}
	if ed.History().Len() != 1 {
		t.Errorf("history len = %d, want 1 after import", ed.History().Len())
	}
}

func TestImportImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	src.SetNRGBA(2, 1, color.NRGBA{B: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	ed := mustEditor(t)
	if err := ed.ImportImage(&buf); err != nil {
		t.Fatal(err)
	}
	if got := ed.Document().CurrentLayer().Surface.Pixel(2, 1); got != RGB(0, 0, 255) {
		t.Errorf("pixel = %v, want blue", got)
	}

	err := ed.ImportImage(strings.NewReader("definitely not an image"))
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("ImportImage(text) = %v, want ErrUnsupportedFile", err)
	}
	if ed.Document().Width() != 3 {
		t.Error("failed import replaced the document")
	}
}

func TestExport(t *testing.T) {
	ed := mustEditor(t, WithCanvasSize(8, 8))
	bg := ed.Document().CurrentLayer()
	if err := ed.SetLayerVisible(bg.ID, false); err != nil {
		t.Fatal(err)
	}

	data, err := ed.ExportBytes(FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := img.At(3, 3).RGBA(); a != 0 {
		t.Errorf("png alpha = %d, want 0", a)
	}

	data, err = ed.ExportBytes(FormatJPEG)
	if err != nil {
		t.Fatal(err)
	}
	img, _, err = image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b, _ := img.At(3, 3).RGBA(); r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("jpeg pixel = %d,%d,%d, want white", r>>8, g>>8, b>>8)
	}

	if _, err := ed.ExportBytes(FormatWebP); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("webp export = %v, want ErrUnsupportedFormat", err)
	}
}
