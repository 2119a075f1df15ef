package editor

import (
	"bytes"

	"github.com/f4ze/editor/internal/blend"
)

// CompositeOp selects how painted pixels combine with the surface.
type CompositeOp uint8

const (
	// OpSourceOver paints on top of existing pixels.
	OpSourceOver CompositeOp = iota
	// OpDestinationOut erases existing pixels by the paint's alpha.
	OpDestinationOut
)

func (op CompositeOp) mode() blend.Mode {
	if op == OpDestinationOut {
		return blend.DestinationOut
	}
	return blend.SourceOver
}

// Flood fill defaults.
const (
	DefaultFillTolerance = 10
	DefaultFillLimit     = 500_000
)

// FillResult reports what a flood fill did.
type FillResult struct {
	// Filled is the number of pixels recoloured.
	Filled int
	// Visited is the number of distinct in-bounds pixels examined.
	Visited int
	// Truncated is set when the visit limit stopped the fill early.
	Truncated bool
}

// FillRect paints the pixels whose centres lie inside r.
func (s *Surface) FillRect(r Rect, c Color) {
	s.canvas().FillRect(r, c.bytes(), blend.SourceOver)
}

// StrokeDashedRect outlines r with an on/off dash pattern starting at the
// top-left corner.
func (s *Surface) StrokeDashedRect(r Rect, width, on, off float64, c Color) {
	s.canvas().DashedRect(r, width, on, off, c.bytes())
}

// StrokeLine paints a segment of the given width with round caps.
func (s *Surface) StrokeLine(p0, p1 Point, c Color, width float64, op CompositeOp) {
	s.StrokePolyline([]Point{p0, p1}, c, width, op)
}

// StrokePolyline paints connected segments with round caps and joins.
// Every covered pixel is composited once.
func (s *Surface) StrokePolyline(pts []Point, c Color, width float64, op CompositeOp) {
	s.canvas().Polyline(pts, width, c.bytes(), op.mode())
}

// FloodFill recolours the 4-connected region around (x, y) whose pixels
// differ from the seed's colour by at most tolerance on every channel.
//
// At most limit distinct pixels are examined; beyond that the fill stops and
// reports Truncated. The fill works on a private copy and is committed in one
// step. A seed out of bounds, or already exactly c, changes nothing.
func (s *Surface) FloodFill(x, y int, c Color, tolerance, limit int) FillResult {
	var res FillResult
	if !s.inBounds(x, y) {
		return res
	}
	seed := s.Pixel(x, y)
	if seed == c {
		return res
	}

	work := bytes.Clone(s.pix)
	visited := make([]bool, s.width*s.height)
	stack := [][2]int{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cx, cy := p[0], p[1]
		if !s.inBounds(cx, cy) {
			continue
		}
		idx := cy*s.width + cx
		if visited[idx] {
			continue
		}
		visited[idx] = true
		res.Visited++

		i := idx * 4
		if similar(work[i:i+4], seed, tolerance) {
			work[i], work[i+1], work[i+2], work[i+3] = c.R, c.G, c.B, c.A
			res.Filled++
			stack = append(stack, [2]int{cx + 1, cy}, [2]int{cx - 1, cy}, [2]int{cx, cy + 1}, [2]int{cx, cy - 1})
		}

		if limit > 0 && res.Visited > limit {
			res.Truncated = true
			break
		}
	}
	copy(s.pix, work)
	return res
}

func similar(p []uint8, c Color, tol int) bool {
	return absDiff(p[0], c.R) <= tol && absDiff(p[1], c.G) <= tol &&
		absDiff(p[2], c.B) <= tol && absDiff(p[3], c.A) <= tol
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
