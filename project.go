package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/f4ze/editor/internal/image"
	"github.com/f4ze/editor/store"
)

// Project defaults.
const (
	DefaultProjectName = "F4ZE Editor Project"
	DefaultStoreKey    = "f4zeEditorProject"
)

type projectFile struct {
	Name         string        `json:"name"`
	Date         projectDate   `json:"date"`
	CanvasWidth  int           `json:"canvasWidth"`
	CanvasHeight int           `json:"canvasHeight"`
	Layers       []layerRecord `json:"layers"`
}

type layerRecord struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Visible      bool           `json:"visible"`
	ImageData    string         `json:"imageData"`
	Objects      []objectRecord `json:"objects"`
	IsBackground bool           `json:"isBackground"`
	Adjustments  Adjustments    `json:"adjustments"`
}

// projectDate is the informational save time. Values that are missing or
// not RFC 3339 strings decode as the zero time.
type projectDate time.Time

func (d projectDate) MarshalJSON() ([]byte, error) {
	return time.Time(d).MarshalJSON()
}

func (d *projectDate) UnmarshalJSON(b []byte) error {
	var s string
	if json.Unmarshal(b, &s) != nil {
		*d = projectDate{}
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t = time.Time{}
	}
	*d = projectDate(t)
	return nil
}

// objectRecord carries one object tagged by its "type" field.
type objectRecord struct {
	Object
}

type shapeRecord struct {
	Type      string  `json:"type"`
	Shape     string  `json:"shape"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Fill      *Color  `json:"fill"`
	Stroke    *Color  `json:"stroke"`
	LineWidth float64 `json:"lineWidth"`
}

type textRecord struct {
	Type       string  `json:"type"`
	Text       string  `json:"text"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	FontFamily string  `json:"fontFamily"`
	FontSize   float64 `json:"fontSize"`
	Color      Color   `json:"color"`
	Bold       bool    `json:"bold"`
	Italic     bool    `json:"italic"`
	Underline  bool    `json:"underline"`
}

const (
	typeShape = "shape"
	typeText  = "text"
)

func (r objectRecord) MarshalJSON() ([]byte, error) {
	switch o := r.Object.(type) {
	case *Shape:
		return json.Marshal(shapeRecord{
			Type: typeShape, Shape: o.Kind.String(),
			X: o.X, Y: o.Y, Width: o.Width, Height: o.Height,
			Fill: o.Fill, Stroke: o.Stroke, LineWidth: o.LineWidth,
		})
	case *Text:
		return json.Marshal(textRecord{
			Type: typeText, Text: o.Content, X: o.X, Y: o.Y,
			FontFamily: o.FontFamily, FontSize: o.FontSize, Color: o.Color,
			Bold: o.Bold, Italic: o.Italic, Underline: o.Underline,
		})
	default:
		return nil, fmt.Errorf("editor: cannot encode object %T", r.Object)
	}
}

func (r *objectRecord) UnmarshalJSON(b []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	switch head.Type {
	case typeShape:
		var s shapeRecord
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		kind, err := ParseShapeKind(s.Shape)
		if err != nil {
			return err
		}
		r.Object = &Shape{
			Kind: kind, X: s.X, Y: s.Y, Width: s.Width, Height: s.Height,
			Fill: s.Fill, Stroke: s.Stroke, LineWidth: s.LineWidth,
		}
	case typeText:
		t := textRecord{Color: Black}
		if err := json.Unmarshal(b, &t); err != nil {
			return err
		}
		r.Object = &Text{
			Content: t.Text, X: t.X, Y: t.Y,
			FontFamily: t.FontFamily, FontSize: t.FontSize, Color: t.Color,
			Bold: t.Bold, Italic: t.Italic, Underline: t.Underline,
		}
	default:
		return fmt.Errorf("%w: object type %q", ErrInvalidInput, head.Type)
	}
	return nil
}

// EncodeProject serializes doc with every layer's raster as a PNG data URL.
func EncodeProject(doc *Document, name string, date time.Time) ([]byte, error) {
	p := projectFile{
		Name:         name,
		Date:         projectDate(date.UTC()),
		CanvasWidth:  doc.width,
		CanvasHeight: doc.height,
		Layers:       make([]layerRecord, len(doc.layers)),
	}
	for i, l := range doc.layers {
		data, err := image.EncodeDataURL(l.Surface.nrgba(), image.FormatPNG)
		if err != nil {
			return nil, fmt.Errorf("encode layer %d: %w", l.ID, err)
		}
		rec := layerRecord{
			ID:           l.ID,
			Name:         l.Name,
			Visible:      l.Visible,
			ImageData:    data,
			Objects:      make([]objectRecord, len(l.Objects)),
			IsBackground: l.Background,
			Adjustments:  l.Adjustments,
		}
		for j, obj := range l.Objects {
			rec.Objects[j] = objectRecord{obj}
		}
		p.Layers[i] = rec
	}
	return json.Marshal(p)
}

// ProjectInfo is the project header, read without decoding any image.
type ProjectInfo struct {
	Name          string
	Date          time.Time
	Width, Height int
	Layers        []string
}

// ReadProjectInfo parses the header of an encoded project.
func ReadProjectInfo(data []byte) (ProjectInfo, error) {
	var p projectFile
	if err := json.Unmarshal(data, &p); err != nil {
		return ProjectInfo{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	info := ProjectInfo{Name: p.Name, Date: time.Time(p.Date), Width: p.CanvasWidth, Height: p.CanvasHeight}
	for _, l := range p.Layers {
		info.Layers = append(info.Layers, l.Name)
	}
	return info, nil
}

// DecodeProject rebuilds a document from EncodeProject output. Layer images
// are decoded concurrently; the document is assembled once all of them
// succeed. The top layer becomes current.
func DecodeProject(ctx context.Context, data []byte) (*Document, error) {
	var p projectFile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := checkDimensions(p.CanvasWidth, p.CanvasHeight); err != nil {
		return nil, err
	}
	if len(p.Layers) == 0 {
		return nil, fmt.Errorf("%w: project has no layers", ErrInvalidInput)
	}

	surfaces, err := decodeLayers(ctx, p)
	if err != nil {
		return nil, err
	}

	doc := &Document{width: p.CanvasWidth, height: p.CanvasHeight, layers: make([]*Layer, len(p.Layers))}
	maxID := 0
	for i, rec := range p.Layers {
		if rec.IsBackground && i != 0 {
			return nil, fmt.Errorf("%w: layer %d is marked background above the bottom", ErrInvalidInput, rec.ID)
		}
		// Missing adjustment keys decode as zero values.
		l := &Layer{
			ID:          rec.ID,
			Name:        rec.Name,
			Surface:     surfaces[i],
			Visible:     rec.Visible,
			Background:  i == 0,
			Objects:     make([]Object, 0, len(rec.Objects)),
			Adjustments: rec.Adjustments,
		}
		for _, o := range rec.Objects {
			if err := validateObject(o.Object); err != nil {
				return nil, fmt.Errorf("layer %d: %w", rec.ID, err)
			}
			l.Objects = append(l.Objects, o.Object)
		}
		doc.layers[i] = l
		maxID = max(maxID, rec.ID)
	}
	doc.nextID = maxID + 1
	doc.currentID = doc.layers[len(doc.layers)-1].ID
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeLayers decodes every layer's data URL in its own goroutine. Images
// are drawn onto canvas-sized surfaces at the origin; an empty data URL
// leaves the layer transparent.
func decodeLayers(ctx context.Context, p projectFile) ([]*Surface, error) {
	surfaces := make([]*Surface, len(p.Layers))
	errs := make([]error, len(p.Layers))

	var wg sync.WaitGroup
	for i, rec := range p.Layers {
		wg.Go(func() {
			if ctx.Err() != nil {
				return
			}
			s := newSurface(p.CanvasWidth, p.CanvasHeight)
			if rec.ImageData != "" {
				img, err := image.DecodeDataURL(rec.ImageData)
				if err != nil {
					errs[i] = fmt.Errorf("%w: layer %d image: %w", ErrInvalidInput, rec.ID, err)
					return
				}
				b := img.Bounds()
				if b.Dx() != p.CanvasWidth || b.Dy() != p.CanvasHeight {
					Logger().Warn("layer image does not match canvas",
						slog.Int("layer", rec.ID), slog.Int("width", b.Dx()), slog.Int("height", b.Dy()))
				}
				s.CopyFrom(&Surface{width: b.Dx(), height: b.Dy(), pix: img.Pix}, 0, 0)
			}
			surfaces[i] = s
		})
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return surfaces, nil
}

// Save writes the document to st under key, or DefaultStoreKey when key is
// empty.
func (e *Editor) Save(ctx context.Context, st store.Store, key string) error {
	if key == "" {
		key = DefaultStoreKey
	}
	e.CommitMove()
	data, err := EncodeProject(e.doc, e.opts.projectName, e.opts.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := st.Put(ctx, key, data); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	Logger().Info("project saved", slog.String("key", key), slog.Int("bytes", len(data)))
	return nil
}

// Load replaces the document with the project stored under key. On any
// failure the current document is kept.
func (e *Editor) Load(ctx context.Context, st store.Store, key string) error {
	if key == "" {
		key = DefaultStoreKey
	}
	data, err := st.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	doc, err := DecodeProject(ctx, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	e.replace(doc, "load")
	Logger().Info("project loaded", slog.String("key", key), slog.Int("layers", len(doc.layers)))
	return nil
}
