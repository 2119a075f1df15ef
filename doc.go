// Package editor is the core of the F4ZE layered raster image editor.
//
// # Overview
//
// A [Document] is a stack of [Layer] values over a fixed-size canvas. Each
// layer owns an RGBA8 [Surface] for painted pixels, an ordered list of vector
// objects ([Shape] and [Text]) drawn on top of the raster, and a set of
// [Adjustments] (brightness, contrast, saturation and a filter). The bottom
// layer is the background; it always exists and cannot be deleted.
//
// # Quick Start
//
//	ed, err := editor.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	red := editor.RGB(255, 0, 0)
//	_ = ed.AddObject(&editor.Shape{
//	    Kind: editor.Rectangle, X: 10, Y: 10, Width: 100, Height: 50,
//	    Fill: &red, LineWidth: 2,
//	})
//	ed.Undo()
//	ed.Redo()
//
//	f, _ := os.Create("out.png")
//	defer f.Close()
//	_ = ed.Export(f, editor.FormatPNG)
//
// # Compositing
//
// A [Compositor] flattens the document bottom to top: for each visible layer
// it copies the raster, draws the layer's objects, runs the layer's
// adjustment pipeline, and composites the result source-over onto the output.
// The output depends only on document state, so compositing twice yields
// identical bytes.
//
// # History
//
// An [Editor] checkpoints the whole document after every successful
// mutation into a bounded [History] (20 entries by default). Undo and redo
// rebuild a fresh document from the stored snapshot; the selection is
// cleared on restore.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Editor, Document, Layer, Surface, Shape, Text, Compositor, History
//   - text: font bank, shaping and glyph rasterization
//   - tool: pointer gesture state machine for the interactive tools
//   - store, store/memory, store/sqlite: project persistence back ends
//   - config: TOML configuration
//   - Internal: blend (compositing), filter (adjustments), geom (shape
//     geometry), raster (coverage painting), image (codecs and resampling)
package editor
