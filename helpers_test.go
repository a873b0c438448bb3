package uikit

import (
	"context"
	"image/color"
)

// --- Recording surface ---

type drawOp struct {
	kind  string // "clear", "fill", "image", "text"
	rect  Rect
	color color.NRGBA
	path  string
	text  string
	x, y  float64
}

// recordSurface records every call. Images load only when listed in available.
type recordSurface struct {
	ops       []drawOp
	available map[string]bool
}

func (s *recordSurface) Clear() {
	s.ops = append(s.ops, drawOp{kind: "clear"})
}

func (s *recordSurface) FillRect(r Rect, c color.NRGBA) {
	s.ops = append(s.ops, drawOp{kind: "fill", rect: r, color: c})
}

func (s *recordSurface) DrawImage(path string, r Rect) bool {
	if !s.available[path] {
		return false
	}
	s.ops = append(s.ops, drawOp{kind: "image", rect: r, path: path})
	return true
}

func (s *recordSurface) DrawText(tb *TextBlock, x, y float64, c color.NRGBA) {
	s.ops = append(s.ops, drawOp{kind: "text", text: tb.Content, x: x, y: y, color: c})
}

// fills returns the rectangles of all fill operations in order.
func (s *recordSurface) fills() []Rect {
	var out []Rect
	for _, op := range s.ops {
		if op.kind == "fill" {
			out = append(out, op.rect)
		}
	}
	return out
}

// --- Fake platform ---

type fakePlatform struct {
	screens []Screen
	opened  []*Window
	runs    int
	openErr error
	runErr  error
}

func (p *fakePlatform) Screens() []Screen { return p.screens }

func (p *fakePlatform) Open(w *Window) error {
	if p.openErr != nil {
		return p.openErr
	}
	p.opened = append(p.opened, w)
	return nil
}

func (p *fakePlatform) Run(ctx context.Context) error {
	p.runs++
	return p.runErr
}

// --- Delegates ---

// loadCounter counts ViewDidLoad calls and optionally runs fn.
type loadCounter struct {
	loads int
	fn    func(vc *ViewController) error
}

func (d *loadCounter) ViewDidLoad(vc *ViewController) error {
	d.loads++
	if d.fn != nil {
		return d.fn(vc)
	}
	return nil
}

func rectEq(a, b Rect) bool {
	return a.X == b.X && a.Y == b.Y && a.Width == b.Width && a.Height == b.Height
}
