package filter

import "testing"

func px(r, g, b, a byte) []byte { return []byte{r, g, b, a} }

func TestApplyIdentity(t *testing.T) {
	pix := []byte{10, 20, 30, 40, 250, 0, 128, 255}
	want := append([]byte(nil), pix...)
	Apply(pix, Params{})
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("identity changed pixels: %v, want %v", pix, want)
		}
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		name  string
		in    byte
		value float64
		want  byte
	}{
		{"clamps high", 250, 100, 255},
		{"clamps low", 5, -100, 0},
		{"half step", 100, 10, 126}, // 100 + 25.5 rounds to even
		{"zero", 77, 0, 77},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix := px(tt.in, tt.in, tt.in, 255)
			Apply(pix, Params{Brightness: tt.value})
			for c := 0; c < 3; c++ {
				if pix[c] != tt.want {
					t.Errorf("channel %d = %d, want %d", c, pix[c], tt.want)
				}
			}
			if pix[3] != 255 {
				t.Errorf("alpha = %d, want 255", pix[3])
			}
		})
	}
}

func TestContrast(t *testing.T) {
	pix := px(200, 128, 50, 90)
	Apply(pix, Params{Contrast: -100})
	for c := 0; c < 3; c++ {
		if pix[c] != 128 {
			t.Errorf("contrast -100 channel %d = %d, want 128", c, pix[c])
		}
	}
	if pix[3] != 90 {
		t.Errorf("alpha = %d, want 90", pix[3])
	}

	if f := ContrastFactor(0); f != 1 {
		t.Errorf("ContrastFactor(0) = %v, want 1", f)
	}
}

func TestSaturation(t *testing.T) {
	pix := px(200, 100, 0, 255)
	Apply(pix, Params{Saturation: -100})
	for c := 0; c < 3; c++ {
		if pix[c] != 100 {
			t.Errorf("desaturated channel %d = %d, want 100", c, pix[c])
		}
	}
}

func TestStageOrder(t *testing.T) {
	// Brightness saturates before contrast reads the value.
	pix := px(250, 250, 250, 255)
	Apply(pix, Params{Brightness: 100, Contrast: -100})
	if pix[0] != 128 {
		t.Errorf("R = %d, want 128", pix[0])
	}
}

func TestFilters(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		in   []byte
		want []byte
	}{
		{"grayscale", Grayscale, px(200, 100, 0, 255), px(119, 119, 119, 255)},
		{"invert", Invert, px(0, 100, 255, 7), px(255, 155, 0, 7)},
		{"sepia white clamps", Sepia, px(255, 255, 255, 255), px(255, 255, 239, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Apply(tt.in, Params{Filter: tt.kind})
			for i := range tt.want {
				if tt.in[i] != tt.want[i] {
					t.Errorf("got %v, want %v", tt.in, tt.want)
					break
				}
			}
		})
	}
}

func TestBlurStream(t *testing.T) {
	pix := []byte{
		0, 0, 0, 255,
		90, 90, 90, 255,
		0, 0, 0, 255,
	}
	Apply(pix, Params{Filter: Blur})
	if pix[0] != 0 || pix[8] != 0 {
		t.Errorf("edge pixels changed: %v", pix)
	}
	if pix[4] != 30 {
		t.Errorf("middle = %d, want 30", pix[4])
	}
	if pix[7] != 255 {
		t.Errorf("alpha = %d, want 255", pix[7])
	}
}

func TestBlurUsesBlurredPredecessor(t *testing.T) {
	pix := []byte{
		0, 0, 0, 0,
		90, 0, 0, 0,
		90, 0, 0, 0,
		0, 0, 0, 0,
	}
	Apply(pix, Params{Filter: Blur})
	// second: (0+90+90)/3 = 60, third: (60+90+0)/3 = 50
	if pix[4] != 60 || pix[8] != 50 {
		t.Errorf("got %d,%d, want 60,50", pix[4], pix[8])
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"none", "grayscale", "sepia", "invert", "blur"} {
		k, ok := ParseKind(name)
		if !ok || k.String() != name {
			t.Errorf("ParseKind(%q) = %v, %v", name, k, ok)
		}
	}
	if _, ok := ParseKind("emboss"); ok {
		t.Error("ParseKind(emboss) should fail")
	}
	if k, ok := ParseKind(""); !ok || k != None {
		t.Error("empty name should be None")
	}
}
