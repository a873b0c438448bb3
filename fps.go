package uikit

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows the measured frame and tick rates in the top-left corner
// of the canvas while a window is in debug mode. The text is refreshed
// about twice a second.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

// fpsRefresh is the interval, in seconds, between overlay redraws.
const fpsRefresh = 0.5

func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.img != nil && o.elapsed < fpsRefresh {
		return
	}
	o.elapsed = 0
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fpsLabel(ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(dst *ebiten.Image) {
	if o.img != nil {
		dst.DrawImage(o.img, nil)
	}
}

func fpsLabel(fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}
