package uikit

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color. Not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Black is the default background and stroke color.
var Black = Color{0, 0, 0, 255}

// ParseHex parses "RRGGBB" or "RRGGBBAA", with an optional leading '#'.
// Six digits produce an opaque color.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("%w: %q has %d digits", ErrInvalidHex, s, len(digits))
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	if len(digits) == 6 {
		return Color{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Hex is like ParseHex but panics on malformed input. Intended for color
// literals in palettes.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// RGBA returns the color at the given opacity percentage. At 100 the stored
// alpha is used; any other value replaces it with round(opacity/100*255).
func (c Color) RGBA(opacity int) color.NRGBA {
	if opacity == 100 {
		return color.NRGBA{c.R, c.G, c.B, c.A}
	}
	a := math.RoundToEven(float64(opacity) / 100 * 255)
	return color.NRGBA{c.R, c.G, c.B, uint8(max(0, min(a, 255)))}
}

// String returns the color as an 8-digit hex string.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
