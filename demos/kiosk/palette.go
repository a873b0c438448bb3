package main

import "github.com/phanxgames/uikit"

// Palette holds the kiosk's colors.
type Palette struct {
	Background uikit.Color // screens, tiles, text boxes
	Rule       uikit.Color // strokes, rules, labels
	TabBar     uikit.Color
	Accent     uikit.Color // counters and the selected function
	Status     uikit.Color
	Light      uikit.Color // clock text, scroll bar
}

// DefaultPalette returns the kiosk's grey and yellow scheme.
func DefaultPalette() Palette {
	return Palette{
		Background: uikit.Hex("E7E7E7"),
		Rule:       uikit.Hex("525252"),
		TabBar:     uikit.Hex("ABABAB"),
		Accent:     uikit.Hex("E3D800"),
		Status:     uikit.Hex("535353"),
		Light:      uikit.Hex("FFFFFF"),
	}
}
