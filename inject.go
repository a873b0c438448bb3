package uikit

// syntheticPress represents a single injected press in window coordinates.
type syntheticPress struct {
	x, y   float64
	button MouseButton
}

// InjectPress queues a left-button press at window coordinates (x, y). The
// press is delivered through MousePress on the next Update, exactly like a
// real one. One queued press is delivered per Update.
func (w *Window) InjectPress(x, y float64) {
	w.InjectPressButton(x, y, MouseButtonLeft)
}

// InjectPressButton is InjectPress with an explicit button.
func (w *Window) InjectPressButton(x, y float64, button MouseButton) {
	w.injectQueue = append(w.injectQueue, syntheticPress{x: x, y: y, button: button})
}

// PendingInjections returns the number of queued presses not yet delivered.
func (w *Window) PendingInjections() int {
	return len(w.injectQueue)
}

// processInjectedInput pops one press from the inject queue and feeds it
// through MousePress. Returns true if a press was consumed.
func (w *Window) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	w.MousePress(evt.x, evt.y, evt.button, 0)
	return true
}
