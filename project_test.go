package editor

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/f4ze/editor/store"
	"github.com/f4ze/editor/store/memory"
)

func projectFixture(t *testing.T) *Editor {
	t.Helper()
	clock := func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	ed := mustEditor(t, WithCanvasSize(40, 30), WithClock(clock))

	ed.Document().CurrentLayer().Surface.SetPixel(1, 2, red)
	hidden, _ := ed.AddLayer("hidden")
	if err := ed.SetLayerVisible(hidden.ID, false); err != nil {
		t.Fatal(err)
	}
	if _, err := ed.AddLayer("objects"); err != nil {
		t.Fatal(err)
	}
	for _, obj := range []Object{
		&Shape{Kind: Triangle, X: 1, Y: 1, Width: 10, Height: 8, Fill: Color{10, 20, 30, 128}.ptr(), LineWidth: 2},
		&Shape{Kind: Line, X: 30, Y: 5, Width: -20, Height: 10, Stroke: Black.ptr(), LineWidth: 3},
		&Text{Content: "hi", X: 3, Y: 4, FontFamily: "Go Mono", FontSize: 11, Color: red, Italic: true, Underline: true},
	} {
		if err := ed.AddObject(obj); err != nil {
			t.Fatal(err)
		}
	}
	if err := ed.SetAdjustments(Adjustments{Brightness: -20, Contrast: 15, Saturation: 5, Filter: FilterSepia}); err != nil {
		t.Fatal(err)
	}
	return ed
}

func TestProjectRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := memory.New(0)
	ed := projectFixture(t)

	if err := ed.Save(ctx, st, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	keys, _ := st.List(ctx)
	if len(keys) != 1 || keys[0] != DefaultStoreKey {
		t.Errorf("keys = %v, want [%s]", keys, DefaultStoreKey)
	}

	other := mustEditor(t)
	if err := other.Load(ctx, st, DefaultStoreKey); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !other.Document().Equal(ed.Document()) {
		t.Error("loaded document differs from the saved one")
	}
	if !other.Flatten(nil).Equal(ed.Flatten(nil)) {
		t.Error("loaded document renders differently")
	}
	if other.History().Len() != 1 {
		t.Errorf("history after load = %d, want 1", other.History().Len())
	}
	if other.Selected() != nil {
		t.Error("load kept a selection")
	}

	// New layers keep getting fresh ids.
	l, _ := other.AddLayer("")
	for _, old := range ed.Document().Layers() {
		if old.ID == l.ID {
			t.Errorf("new layer reused id %d", l.ID)
		}
	}
}

func TestProjectFormat(t *testing.T) {
	ed := projectFixture(t)
	data, err := EncodeProject(ed.Document(), DefaultProjectName, time.Unix(0, 0))
	if err != nil {
		t.Fatal(err)
	}

	var raw struct {
		Name         string `json:"name"`
		CanvasWidth  int    `json:"canvasWidth"`
		CanvasHeight int    `json:"canvasHeight"`
		Layers       []struct {
			ImageData    string                   `json:"imageData"`
			IsBackground bool                     `json:"isBackground"`
			Objects      []map[string]interface{} `json:"objects"`
			Adjustments  map[string]interface{}   `json:"adjustments"`
		} `json:"layers"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw.Name != DefaultProjectName || raw.CanvasWidth != 40 || raw.CanvasHeight != 30 {
		t.Errorf("header = %q %dx%d", raw.Name, raw.CanvasWidth, raw.CanvasHeight)
	}
	if len(raw.Layers) != 3 || !raw.Layers[0].IsBackground || raw.Layers[1].IsBackground {
		t.Fatalf("layers = %+v", raw.Layers)
	}
	if !strings.HasPrefix(raw.Layers[0].ImageData, "data:image/png;base64,") {
		t.Errorf("imageData = %.30q", raw.Layers[0].ImageData)
	}

	objs := raw.Layers[2].Objects
	if objs[0]["type"] != "shape" || objs[0]["shape"] != "triangle" || objs[0]["fill"] != "#0a141e80" || objs[0]["stroke"] != nil {
		t.Errorf("shape record = %v", objs[0])
	}
	if objs[2]["type"] != "text" || objs[2]["text"] != "hi" || objs[2]["color"] != "#ff0000" {
		t.Errorf("text record = %v", objs[2])
	}
	if adj := raw.Layers[2].Adjustments; adj["filter"] != "sepia" || adj["brightness"] != float64(-20) {
		t.Errorf("adjustments = %v", adj)
	}
	for i, l := range raw.Layers {
		if l.Adjustments == nil {
			t.Errorf("layer %d has no adjustments key", i)
		}
	}
	want := map[string]interface{}{"brightness": float64(0), "contrast": float64(0), "saturation": float64(0), "filter": "none"}
	if !reflect.DeepEqual(raw.Layers[0].Adjustments, want) {
		t.Errorf("plain layer adjustments = %v, want %v", raw.Layers[0].Adjustments, want)
	}
}

func TestReadProjectInfo(t *testing.T) {
	ed := projectFixture(t)
	date := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	data, err := EncodeProject(ed.Document(), "demo", date)
	if err != nil {
		t.Fatal(err)
	}
	info, err := ReadProjectInfo(data)
	if err != nil {
		t.Fatal(err)
	}
	if info.Name != "demo" || !info.Date.Equal(date) || info.Width != 40 || len(info.Layers) != 3 {
		t.Errorf("info = %+v", info)
	}
}

func TestDecodeLegacyProject(t *testing.T) {
	// Projects written before adjustments existed have no adjustments and no
	// background flag.
	const legacy = `{
		"name": "old", "date": "2020-01-01T00:00:00Z",
		"canvasWidth": 4, "canvasHeight": 3,
		"layers": [
			{"id": 7, "name": "Background", "visible": true, "imageData": "", "objects": []},
			{"id": 3, "name": "Ink", "visible": true, "imageData": "",
			 "objects": [{"type": "shape", "shape": "circle", "x": 0, "y": 0, "width": 2, "height": 2,
			              "fill": "#00ff00", "stroke": null, "lineWidth": 2}]}
		]
	}`
	doc, err := DecodeProject(context.Background(), []byte(legacy))
	if err != nil {
		t.Fatal(err)
	}
	layers := doc.Layers()
	if !layers[0].Background || layers[1].Background {
		t.Error("bottom layer should be the background")
	}
	if doc.CurrentLayer().ID != 3 {
		t.Errorf("current = %d, want the top layer", doc.CurrentLayer().ID)
	}
	s := layers[1].Objects[0].(*Shape)
	if s.Kind != Circle || *s.Fill != RGB(0, 255, 0) || s.Stroke != nil {
		t.Errorf("shape = %+v", s)
	}
	if l := doc.AddLayer("new"); l.ID != 8 {
		t.Errorf("next id = %d, want 8", l.ID)
	}
}

func TestDecodeProjectLenientDate(t *testing.T) {
	for _, date := range []string{`""`, `"yesterday"`, `12`, `null`} {
		data := `{"name": "n", "date": ` + date + `, "canvasWidth": 2, "canvasHeight": 2,
			"layers": [{"id": 1, "name": "Background", "visible": true, "imageData": "", "objects": [],
			            "adjustments": {"brightness": 5}}]}`
		info, err := ReadProjectInfo([]byte(data))
		if err != nil {
			t.Errorf("ReadProjectInfo(date %s): %v", date, err)
			continue
		}
		if !info.Date.IsZero() {
			t.Errorf("date %s decoded as %v, want zero", date, info.Date)
		}
		doc, err := DecodeProject(context.Background(), []byte(data))
		if err != nil {
			t.Errorf("DecodeProject(date %s): %v", date, err)
			continue
		}
		if got := doc.Layers()[0].Adjustments; got != (Adjustments{Brightness: 5}) {
			t.Errorf("partial adjustments = %+v", got)
		}
	}
}

func TestDecodeProjectErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{`},
		{"no layers", `{"canvasWidth": 4, "canvasHeight": 4, "layers": []}`},
		{"zero size", `{"canvasWidth": 0, "canvasHeight": 4, "layers": [{"id": 1}]}`},
		{"bad image", `{"canvasWidth": 4, "canvasHeight": 4, "layers": [{"id": 1, "imageData": "data:image/png;base64,AAAA"}]}`},
		{"late background", `{"canvasWidth": 4, "canvasHeight": 4, "layers": [{"id": 1}, {"id": 2, "isBackground": true}]}`},
		{"duplicate ids", `{"canvasWidth": 4, "canvasHeight": 4, "layers": [{"id": 1}, {"id": 1}]}`},
		{"unknown object", `{"canvasWidth": 4, "canvasHeight": 4, "layers": [{"id": 1, "objects": [{"type": "blob"}]}]}`},
		{"empty text", `{"canvasWidth": 4, "canvasHeight": 4, "layers": [{"id": 1, "objects": [{"type": "text", "text": "", "fontSize": 9}]}]}`},
		{"bad adjustment", `{"canvasWidth": 4, "canvasHeight": 4, "layers": [{"id": 1, "adjustments": {"brightness": 500}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProject(context.Background(), []byte(tt.json))
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("DecodeProject() err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestDecodeProjectCancelled(t *testing.T) {
	ed := projectFixture(t)
	data, err := EncodeProject(ed.Document(), "x", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := DecodeProject(ctx, data); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestLoadFailuresKeepDocument(t *testing.T) {
	ctx := context.Background()
	ed := projectFixture(t)
	before := ed.Document()

	err := ed.Load(ctx, memory.New(0), "missing")
	if !errors.Is(err, ErrPersistence) || !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Load(missing) = %v", err)
	}

	st := memory.New(0)
	if err := st.Put(ctx, "broken", []byte(`{"layers":`)); err != nil {
		t.Fatal(err)
	}
	if err := ed.Load(ctx, st, "broken"); !errors.Is(err, ErrPersistence) {
		t.Errorf("Load(broken) = %v, want ErrPersistence", err)
	}
	if ed.Document() != before {
		t.Error("failed load replaced the document")
	}
}

func TestSaveQuota(t *testing.T) {
	ed := projectFixture(t)
	err := ed.Save(context.Background(), memory.New(16), "tiny")
	if !errors.Is(err, ErrPersistence) || !errors.Is(err, store.ErrQuotaExceeded) {
		t.Errorf("Save over quota = %v", err)
	}
}
