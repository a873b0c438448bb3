package uikit

import "testing"

func TestEbitenSurfaceVisible(t *testing.T) {
	s := &ebitenSurface{bounds: Rect{Width: 200, Height: 100}, height: 100}
	tests := []struct {
		name   string
		r      Rect
		expect bool
	}{
		{"inside", Rect{10, 10, 20, 20}, true},
		{"straddles right edge", Rect{190, 10, 50, 20}, true},
		{"touches top edge", Rect{10, 100, 20, 20}, true},
		{"past right edge", Rect{201, 10, 20, 20}, false},
		{"below window", Rect{10, -50, 20, 20}, false},
		{"above window", Rect{10, 101, 20, 20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.visible(tt.r); got != tt.expect {
				t.Errorf("visible(%v) = %v, want %v", tt.r, got, tt.expect)
			}
		})
	}
}

func TestEbitenSurfaceSkipsTextWithoutFaces(t *testing.T) {
	s := &ebitenSurface{bounds: Rect{Width: 200, Height: 100}, height: 100}
	tb := &TextBlock{Content: "hello", Font: &Font{Family: "empty"}, Size: 12}
	// dst is nil: reaching the draw call would panic.
	s.DrawText(tb, 10, 10, Black.RGBA(100))
}
