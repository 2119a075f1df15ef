package tool

import (
	editor "github.com/f4ze/editor"
)

var cropShade = editor.Color{A: 128}

// Preview renders the display composite with the gesture in progress drawn
// on top: the live brush stroke, the shape being dragged, or the crop box
// with everything outside it dimmed.
func (s *Session) Preview() *editor.Surface {
	out := s.ed.Render()
	if s.state != Dragging {
		return out
	}
	w, h := s.last.X-s.anchor.X, s.last.Y-s.anchor.Y

	switch s.tool {
	case Brush:
		if len(s.points) > 1 {
			out.StrokePolyline(s.points, s.settings.Primary, s.settings.BrushSize, editor.OpSourceOver)
		}
	case Eraser:
		// The eraser previews in white; the layer itself is cleared on commit.
		if len(s.points) > 1 {
			out.StrokePolyline(s.points, editor.White, s.settings.BrushSize, editor.OpSourceOver)
		}
	case Shape:
		s.ed.Compositor().DrawObject(out, s.shape(w, h))
	case Crop:
		box := editor.Rect{X: s.anchor.X, Y: s.anchor.Y, W: w, H: h}.Normalize()
		out.StrokeDashedRect(box, 2, 5, 5, editor.Black)

		cw, ch := float64(out.Width()), float64(out.Height())
		for _, r := range []editor.Rect{
			{X: 0, Y: 0, W: cw, H: max(0, box.Y)},
			{X: 0, Y: box.Y, W: max(0, box.X), H: box.H},
			{X: box.X + box.W, Y: box.Y, W: max(0, cw-(box.X+box.W)), H: box.H},
			{X: 0, Y: box.Y + box.H, W: cw, H: max(0, ch-(box.Y+box.H))},
		} {
			out.FillRect(r, cropShade)
		}
	}
	return out
}
