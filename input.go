package uikit

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mouseButtons maps Ebitengine buttons to uikit buttons in priority order.
var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	b  MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// processInput delivers every mouse button and touch that went down this
// tick. Touches are delivered as left-button presses.
func (p *EbitenPlatform) processInput() {
	mods := readModifiers()

	for _, mb := range mouseButtons {
		if !inpututil.IsMouseButtonJustPressed(mb.eb) {
			continue
		}
		x, y := ebiten.CursorPosition()
		p.dispatchPress(float64(x), float64(y), mb.b, mods)
	}

	p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		x, y := ebiten.TouchPosition(id)
		p.dispatchPress(float64(x), float64(y), MouseButtonLeft, mods)
	}
}

// dispatchPress converts a canvas pixel position into the coordinates of the
// window under it and delivers the press.
func (p *EbitenPlatform) dispatchPress(cx, cy float64, button MouseButton, mods KeyModifiers) {
	w, x, y := p.windowAt(cx, cy)
	if w == nil {
		return
	}
	w.MousePress(x, y, button, mods)
}

// windowAt finds the topmost window containing canvas point (cx, cy) and
// returns the point in that window's bottom-left-origin coordinates.
func (p *EbitenPlatform) windowAt(cx, cy float64) (*Window, float64, float64) {
	for i := len(p.windows) - 1; i >= 0; i-- {
		w := p.windows[i]
		r := p.canvasRect(w)
		lx := cx - float64(r.Min.X)
		ly := cy - float64(r.Min.Y)
		if lx < 0 || ly < 0 || lx >= w.Width || ly >= w.Height {
			continue
		}
		return w, lx, w.Height - ly
	}
	return nil, 0, 0
}
