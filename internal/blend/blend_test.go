package blend

import "testing"

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * max", 255, 255, 255},
		{"255 * 128", 255, 128, 128},
		{"128 * 128", 128, 128, 64},
		{"100 * 100", 100, 100, 39},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDiv255(tt.a, tt.b); got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name     string
		src, dst [4]byte
		want     [4]byte
	}{
		{"opaque source replaces", [4]byte{255, 0, 0, 255}, [4]byte{0, 0, 255, 255}, [4]byte{255, 0, 0, 255}},
		{"transparent source keeps", [4]byte{255, 0, 0, 0}, [4]byte{0, 0, 255, 255}, [4]byte{0, 0, 255, 255}},
		{"onto transparent", [4]byte{10, 20, 30, 128}, [4]byte{0, 0, 0, 0}, [4]byte{10, 20, 30, 128}},
		{"half over opaque white", [4]byte{0, 0, 0, 128}, [4]byte{255, 255, 255, 255}, [4]byte{127, 127, 127, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d := tt.src, tt.dst
			r, g, b, a := Pixel(SourceOver, s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
			if got := [4]byte{r, g, b, a}; got != tt.want {
				t.Errorf("SourceOver(%v, %v) = %v, want %v", s, d, got, tt.want)
			}
		})
	}
}

func TestDestinationOut(t *testing.T) {
	r, g, b, a := Pixel(DestinationOut, 0, 0, 0, 255, 10, 20, 30, 255)
	if a != 0 {
		t.Errorf("alpha = %d, want 0", a)
	}
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("colour changed to (%d,%d,%d)", r, g, b)
	}

	_, _, _, a = Pixel(DestinationOut, 0, 0, 0, 0, 10, 20, 30, 200)
	if a != 200 {
		t.Errorf("transparent eraser alpha = %d, want 200", a)
	}
}

func TestBuffer(t *testing.T) {
	dst := []byte{255, 255, 255, 255, 0, 0, 0, 0}
	src := []byte{0, 0, 0, 0, 1, 2, 3, 255}
	Over(dst, src)
	want := []byte{255, 255, 255, 255, 1, 2, 3, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestModeString(t *testing.T) {
	if SourceOver.String() != "source-over" || DestinationOut.String() != "destination-out" {
		t.Error("unexpected mode names")
	}
}
