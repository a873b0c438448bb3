package uikit

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the drawing target views render into. All rectangles and points
// are in window coordinates (origin bottom-left, Y up).
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// FillRect fills r with c.
	FillRect(r Rect, c color.NRGBA)
	// DrawImage draws the bitmap at path scaled to r. It reports false, and
	// draws nothing, when the bitmap cannot be loaded.
	DrawImage(path string, r Rect) bool
	// DrawText draws tb.Content anchored at (x, y) according to tb's
	// alignment.
	DrawText(tb *TextBlock, x, y float64, c color.NRGBA)
}

// --- Ebitengine surface ---

// ebitenSurface renders onto an *ebiten.Image, possibly a sub-image of the
// screen. Y is flipped against the window height.
type ebitenSurface struct {
	dst    *ebiten.Image
	bounds Rect // window frame in window coordinates
	height float64
	ox, oy float64 // sub-image origin on the parent image
	images *imageCache
	logger *slog.Logger
}

func newEbitenSurface(dst *ebiten.Image, height float64, images *imageCache, logger *slog.Logger) *ebitenSurface {
	b := dst.Bounds()
	origin := b.Min
	return &ebitenSurface{
		dst:    dst,
		bounds: Rect{Width: float64(b.Dx()), Height: height},
		height: height,
		ox:     float64(origin.X),
		oy:     float64(origin.Y),
		images: images,
		logger: logger,
	}
}

// toImage converts a window-space rectangle into destination pixels.
func (s *ebitenSurface) toImage(r Rect) (x, y, w, h float64) {
	return s.ox + r.X, s.oy + s.height - r.Y - r.Height, r.Width, r.Height
}

// visible reports whether r touches the window at all. Views laid out past
// the window edge are skipped instead of submitted to the GPU.
func (s *ebitenSurface) visible(r Rect) bool {
	return s.bounds.Intersects(r)
}

func (s *ebitenSurface) Clear() {
	s.dst.Clear()
}

func (s *ebitenSurface) FillRect(r Rect, c color.NRGBA) {
	if r.Width <= 0 || r.Height <= 0 || c.A == 0 || !s.visible(r) {
		return
	}
	x, y, w, h := s.toImage(r)
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *ebitenSurface) DrawImage(path string, r Rect) bool {
	img := s.images.load(path, s.logger)
	if img == nil {
		return false
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return false
	}
	if !s.visible(r) {
		return true
	}
	x, y, w, h := s.toImage(r)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
	return true
}

func (s *ebitenSurface) DrawText(tb *TextBlock, x, y float64, c color.NRGBA) {
	if tb.Content == "" || tb.Font == nil {
		return
	}
	face := tb.Font.Face(tb.Style, tb.Size)
	if face == nil {
		return
	}
	m := face.Metrics()

	op := &text.DrawOptions{}
	op.GeoM.Translate(s.ox+x, s.oy+s.height-y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = m.HAscent + m.HDescent + m.HLineGap
	op.PrimaryAlign = textAlign(tb.HAlign)
	switch tb.VAlign {
	case VAlignTop:
		op.SecondaryAlign = text.AlignStart
	case VAlignCenter:
		op.SecondaryAlign = text.AlignCenter
	default:
		op.SecondaryAlign = text.AlignEnd
	}
	text.Draw(s.dst, tb.Content, face, op)
}

// textAlign maps a horizontal anchor to the text/v2 primary alignment.
func textAlign(a HAlign) text.Align {
	switch a {
	case HAlignCenter:
		return text.AlignCenter
	case HAlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// --- Image cache ---

// imageCache decodes each bitmap once. Paths that fail to load are
// remembered and logged once, then reported as missing on every draw.
type imageCache struct {
	images  map[string]*ebiten.Image
	missing map[string]bool
}

func newImageCache() *imageCache {
	return &imageCache{
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

// load returns the bitmap at path, or nil if it cannot be loaded.
func (c *imageCache) load(path string, logger *slog.Logger) *ebiten.Image {
	if img, ok := c.images[path]; ok {
		return img
	}
	if c.missing[path] {
		return nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		c.missing[path] = true
		if logger != nil {
			logger.Warn("image unavailable, drawing fallback", "path", path, "err", err)
		}
		return nil
	}
	c.images[path] = img
	return img
}
