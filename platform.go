package uikit

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Platform is the windowing collaborator: it reports displays, opens a
// surface per window, and runs the blocking loop that calls each window's
// Update, Draw and MousePress.
type Platform interface {
	Screens() []Screen
	Open(w *Window) error
	Run(ctx context.Context) error
}

// EbitenPlatform hosts windows in a single Ebitengine window. Windows are
// composited into one canvas at their positions relative to the top-left
// most window; the first window's title is used for the OS window.
type EbitenPlatform struct {
	windows []*Window
	images  *imageCache
	ctx     context.Context

	originX, originY float64
	canvasW, canvasH int

	cursorSet bool
	touchBuf  []ebiten.TouchID
	fps       fpsOverlay
}

var _ ebiten.Game = (*EbitenPlatform)(nil)

// NewEbitenPlatform creates a platform with an empty image cache.
func NewEbitenPlatform() *EbitenPlatform {
	return &EbitenPlatform{images: newImageCache()}
}

// Screens returns one Screen per connected monitor, primary first. Monitors
// do not report their desktop position, so X and Y are zero.
func (p *EbitenPlatform) Screens() []Screen {
	var screens []Screen
	primary := ebiten.Monitor()
	if primary != nil {
		w, h := primary.Size()
		screens = append(screens, Screen{Width: float64(w), Height: float64(h)})
	}
	for _, m := range ebiten.AppendMonitors(nil) {
		if m == primary {
			continue
		}
		w, h := m.Size()
		screens = append(screens, Screen{Width: float64(w), Height: float64(h)})
	}
	return screens
}

// Open adds w to the canvas and resizes the OS window to fit every window.
func (p *EbitenPlatform) Open(w *Window) error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("invalid window size %gx%g", w.Width, w.Height)
	}
	p.windows = append(p.windows, w)
	p.layoutCanvas()
	ebiten.SetWindowTitle(p.windows[0].Title)
	ebiten.SetWindowSize(p.canvasW, p.canvasH)
	ebiten.SetWindowPosition(int(p.originX), int(p.originY))
	return nil
}

// layoutCanvas recomputes the canvas origin and size from the open windows.
func (p *EbitenPlatform) layoutCanvas() {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, w := range p.windows {
		minX, minY = min(minX, w.X), min(minY, w.Y)
		maxX, maxY = max(maxX, w.X+w.Width), max(maxY, w.Y+w.Height)
	}
	p.originX, p.originY = minX, minY
	p.canvasW = int(math.Ceil(maxX - minX))
	p.canvasH = int(math.Ceil(maxY - minY))
}

// canvasRect returns w's pixel rectangle on the canvas.
func (p *EbitenPlatform) canvasRect(w *Window) image.Rectangle {
	x0 := int(w.X - p.originX)
	y0 := int(w.Y - p.originY)
	return image.Rect(x0, y0, x0+int(w.Width), y0+int(w.Height))
}

// Run blocks in the Ebitengine loop until the OS window closes or ctx is
// cancelled.
func (p *EbitenPlatform) Run(ctx context.Context) error {
	p.ctx = ctx
	if err := ebiten.RunGame(p); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (p *EbitenPlatform) Update() error {
	if p.ctx != nil && p.ctx.Err() != nil {
		return ebiten.Termination
	}
	if !p.cursorSet {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
		p.cursorSet = true
	}
	p.processInput()
	dt := 1.0 / float64(ebiten.TPS())
	for _, w := range p.windows {
		w.Update(dt)
	}
	if p.debugging() {
		p.fps.update(dt)
	}
	return nil
}

// debugging reports whether any window is in debug mode.
func (p *EbitenPlatform) debugging() bool {
	for _, w := range p.windows {
		if w.DebugMode() {
			return true
		}
	}
	return false
}

// Draw implements ebiten.Game. Each window draws into its own sub-image.
func (p *EbitenPlatform) Draw(screen *ebiten.Image) {
	for _, w := range p.windows {
		sub := screen.SubImage(p.canvasRect(w)).(*ebiten.Image)
		w.Draw(newEbitenSurface(sub, w.Height, p.images, w.logger))
		w.flushScreenshots(sub)
	}
	if p.debugging() {
		p.fps.draw(screen)
	}
}

// Layout implements ebiten.Game.
func (p *EbitenPlatform) Layout(outsideWidth, outsideHeight int) (int, int) {
	if p.canvasW == 0 || p.canvasH == 0 {
		return outsideWidth, outsideHeight
	}
	return p.canvasW, p.canvasH
}
