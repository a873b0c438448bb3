package uikit

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHexSixDigits(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"000000", Color{0, 0, 0, 255}},
		{"FFFFFF", Color{255, 255, 255, 255}},
		{"E7E7E7", Color{0xE7, 0xE7, 0xE7, 255}},
		{"525252", Color{0x52, 0x52, 0x52, 255}},
		{"e3d800", Color{0xE3, 0xD8, 0x00, 255}},
		{"#ABABAB", Color{0xAB, 0xAB, 0xAB, 255}},
		{"123456", Color{0x12, 0x34, 0x56, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexEightDigits(t *testing.T) {
	got, err := ParseHex("11223344")
	if err != nil {
		t.Fatal(err)
	}
	if want := (Color{0x11, 0x22, 0x33, 0x44}); got != want {
		t.Errorf("ParseHex = %v, want %v", got, want)
	}
	if rgba := got.RGBA(100); rgba != (color.NRGBA{0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("RGBA(100) = %v, want parsed channels", rgba)
	}
	if rgba := got.RGBA(50); rgba != (color.NRGBA{0x11, 0x22, 0x33, 128}) {
		t.Errorf("RGBA(50) = %v, want alpha 128", rgba)
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "12345", "1234567", "123456789", "GGGGGG", "#12345G"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHex(in)
			if !errors.Is(err, ErrInvalidHex) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", in, err)
			}
		})
	}
}

func TestHexPanicsOnMalformed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Hex(\"xyz\") did not panic")
		}
	}()
	Hex("xyz")
}

func TestColorRGBAOpacity(t *testing.T) {
	c := Hex("52525280")
	tests := []struct {
		opacity int
		alpha   uint8
	}{
		{100, 0x80}, // stored alpha
		{50, 128},
		{20, 51},
		{0, 0},
		{99, 252},
	}
	for _, tt := range tests {
		got := c.RGBA(tt.opacity)
		if got.R != 0x52 || got.G != 0x52 || got.B != 0x52 {
			t.Errorf("RGBA(%d) changed channels: %v", tt.opacity, got)
		}
		if got.A != tt.alpha {
			t.Errorf("RGBA(%d).A = %d, want %d", tt.opacity, got.A, tt.alpha)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := Hex("e7e7e7").String(); got != "#E7E7E7FF" {
		t.Errorf("String() = %q", got)
	}
}
