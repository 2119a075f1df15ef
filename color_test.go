package editor

import (
	"errors"
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#000000", Black},
		{"#ffffff", White},
		{"0099ff", SelectionBlue},
		{"#f00", RGB(255, 0, 0)},
		{"#f008", Color{255, 0, 0, 136}},
		{"#11223344", Color{0x11, 0x22, 0x33, 0x44}},
		{"#AbCdEf", RGB(0xab, 0xcd, 0xef)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex(tt.in)
			if err != nil {
				t.Fatalf("Hex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#ggg", "#123456789", "red"} {
		if _, err := Hex(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Hex(%q) err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestColorHexString(t *testing.T) {
	if got := RGB(0, 153, 255).Hex(); got != "#0099ff" {
		t.Errorf("Hex() = %q, want #0099ff", got)
	}
	if got := (Color{1, 2, 3, 4}).Hex(); got != "#01020304" {
		t.Errorf("Hex() = %q, want #01020304", got)
	}
}

func TestColorText(t *testing.T) {
	c := Color{10, 20, 30, 40}
	b, err := c.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var got Color
	if err := got.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 100, A: 200})
	if got.A != 200 || got.R != 127 {
		t.Errorf("FromColor = %+v, want un-premultiplied R=127 A=200", got)
	}
}
