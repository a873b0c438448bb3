package uikit

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// OpacityTween animates a view's Opacity toward a target percentage. Create
// one with TweenOpacity and either call Update yourself or hand it to
// Window.Animate, which advances it every tick.
type OpacityTween struct {
	tween  *gween.Tween
	target *View
	to     int
	Done   bool
}

// TweenOpacity creates a tween from v's current opacity to `to` over duration
// seconds. A non-positive duration applies the target immediately and
// returns a finished tween.
func TweenOpacity(v *View, to int, duration float32, fn ease.TweenFunc) *OpacityTween {
	to = max(0, min(to, 100))
	t := &OpacityTween{target: v, to: to}
	if duration <= 0 || v.Opacity == to {
		v.Opacity = to
		t.Done = true
		return t
	}
	if fn == nil {
		fn = ease.Linear
	}
	t.tween = gween.New(float32(v.Opacity), float32(to), duration, fn)
	return t
}

// Update advances the tween by dt seconds and writes the rounded value to
// the view. The final value is exactly the target.
func (t *OpacityTween) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	if finished {
		t.target.Opacity = t.to
		t.Done = true
		return
	}
	t.target.Opacity = int(math.Round(float64(val)))
}

// Animate registers a tween to be advanced by Update until it finishes. A
// tween already running on the same view is dropped, even when t finished
// on creation, so the latest request always owns the view's opacity.
func (w *Window) Animate(t *OpacityTween) {
	if t == nil {
		return
	}
	for i, old := range w.tweens {
		if old.target != t.target {
			continue
		}
		if t.Done {
			w.tweens = append(w.tweens[:i], w.tweens[i+1:]...)
		} else {
			w.tweens[i] = t
		}
		return
	}
	if !t.Done {
		w.tweens = append(w.tweens, t)
	}
}

// Animating reports whether any tween is still running.
func (w *Window) Animating() bool {
	return len(w.tweens) > 0
}

// updateTweens advances every registered tween and drops finished ones.
func (w *Window) updateTweens(dt float32) {
	if len(w.tweens) == 0 {
		return
	}
	live := w.tweens[:0]
	for _, t := range w.tweens {
		t.Update(dt)
		if !t.Done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(w.tweens); i++ {
		w.tweens[i] = nil
	}
	w.tweens = live
}
