package geom

import (
	"math"
	"testing"
)

func TestRectNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"positive", Rect{10, 20, 30, 40}, Rect{10, 20, 30, 40}},
		{"negative width", Rect{40, 20, -30, 40}, Rect{10, 20, 30, 40}},
		{"negative both", Rect{40, 60, -30, -40}, Rect{10, 20, 30, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 10, -20, 20}
	if !r.Contains(Point{0, 15}) {
		t.Error("Contains(0,15) = false, want true")
	}
	if !r.Contains(Point{-10, 10}) {
		t.Error("edge point should be inside")
	}
	if r.Contains(Point{11, 15}) {
		t.Error("Contains(11,15) = true, want false")
	}
}

func TestCircleOf(t *testing.T) {
	c := CircleOf(Rect{0, 0, 100, 100})
	if c.CX != 50 || c.CY != 50 || c.R != 50 {
		t.Fatalf("CircleOf = %+v, want centre (50,50) r=50", c)
	}
	if !c.Contains(Point{50, 50}) {
		t.Error("centre should be inside")
	}
	if c.Contains(Point{0, 0}) {
		t.Error("corner (0,0) should be outside")
	}

	wide := CircleOf(Rect{0, 0, 100, 20})
	if wide.R != 50 {
		t.Errorf("R = %v, want 50 (max side / 2)", wide.R)
	}
}

func TestTriangleContains(t *testing.T) {
	tri := TriangleOf(Rect{0, 0, 100, 100})
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"centroid", Point{50, 66}, true},
		{"apex", Point{50, 0}, false},
		{"bottom-left corner", Point{0, 100}, false},
		{"top-left corner", Point{5, 5}, false},
		{"near base", Point{50, 99}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTriangleDegenerate(t *testing.T) {
	tri := TriangleOf(Rect{0, 0, 100, 0})
	if tri.Contains(Point{50, 0}) {
		t.Error("degenerate triangle should contain nothing")
	}
}

func TestSegmentDistance(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}
	if d := SegmentDistance(Point{5, 3}, a, b); d != 3 {
		t.Errorf("SegmentDistance = %v, want 3", d)
	}
	if d := SegmentDistance(Point{13, 4}, a, b); math.Abs(d-5) > 1e-9 {
		t.Errorf("SegmentDistance past end = %v, want 5", d)
	}
}

func TestOnButtSegment(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}
	if !OnButtSegment(Point{5, 0.5}, a, b, 1) {
		t.Error("point near middle should be on the segment")
	}
	if OnButtSegment(Point{10.5, 0}, a, b, 1) {
		t.Error("butt cap should not extend past the endpoint")
	}
}
