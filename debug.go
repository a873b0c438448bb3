package uikit

import (
	"image/color"
	"log/slog"
	"time"
)

// frameStats holds per-frame timing and draw-call metrics.
// Only populated when the window is in debug mode.
type frameStats struct {
	drawTime   time.Duration
	fills      int
	images     int
	imageMiss  int
	texts      int
	clearCalls int
}

// drawCalls returns the number of surface operations that produced pixels.
func (st frameStats) drawCalls() int {
	return st.fills + st.images + st.texts
}

// countingSurface forwards to another Surface and tallies each operation.
type countingSurface struct {
	Surface
	stats *frameStats
}

func (c *countingSurface) Clear() {
	c.stats.clearCalls++
	c.Surface.Clear()
}

func (c *countingSurface) FillRect(r Rect, col color.NRGBA) {
	c.stats.fills++
	c.Surface.FillRect(r, col)
}

func (c *countingSurface) DrawImage(path string, r Rect) bool {
	ok := c.Surface.DrawImage(path, r)
	if ok {
		c.stats.images++
	} else {
		c.stats.imageMiss++
	}
	return ok
}

func (c *countingSurface) DrawText(tb *TextBlock, x, y float64, col color.NRGBA) {
	c.stats.texts++
	c.Surface.DrawText(tb, x, y, col)
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame draw
// stats are logged at debug level and oversized subview lists are reported.
func (w *Window) SetDebugMode(enabled bool) {
	if w.debug == enabled {
		return
	}
	w.debug = enabled
	if enabled {
		debugWindows++
	} else {
		debugWindows--
	}
}

// DebugMode reports whether debug mode is enabled.
func (w *Window) DebugMode() bool {
	return w.debug
}

// debugWindows counts windows in debug mode. View operations have no
// Window pointer, so they check this instead.
var debugWindows int

// debugLog logs timing and draw-call stats for one frame.
func (w *Window) debugLog(stats frameStats) {
	if !w.debug {
		return
	}
	w.logger.Debug("frame",
		slog.String("window", w.Title),
		slog.Duration("draw", stats.drawTime),
		slog.Int("calls", stats.drawCalls()),
		slog.Int("fills", stats.fills),
		slog.Int("images", stats.images),
		slog.Int("image_fallbacks", stats.imageMiss),
		slog.Int("texts", stats.texts),
	)
}

// debugMaxSubviewCount is the subview count above which a warning is logged.
const debugMaxSubviewCount = 1000

func debugCheckSubviewCount(v *View) {
	if len(v.subviews) > debugMaxSubviewCount {
		slog.Warn("view has too many subviews",
			"view", v.Name, "count", len(v.subviews), "threshold", debugMaxSubviewCount)
	}
}
