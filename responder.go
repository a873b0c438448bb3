package uikit

// PressContext carries press event data to a view's target.
type PressContext struct {
	View      *View
	X, Y      float64 // window coordinates of the press
	Button    MouseButton
	Modifiers KeyModifiers
}

// Target is the action a view runs when it is pressed.
type Target func(PressContext)

// Responder is the capability the window's hit test relies on: a box to test
// against and a way to deliver the press.
type Responder interface {
	HitBox() Rect
	Press(ctx PressContext) bool
}

var _ Responder = (*View)(nil)

// HitBox returns the view's frame.
func (v *View) HitBox() Rect {
	return v.Frame()
}

// Press invokes the view's press target. It reports whether a target was
// registered; a view without one swallows the press silently.
func (v *View) Press(ctx PressContext) bool {
	if v.target == nil {
		return false
	}
	ctx.View = v
	v.target(ctx)
	return true
}

// HasTarget reports whether a target is registered for presses.
func (v *View) HasTarget() bool {
	return v.target != nil
}

// AddTarget registers fn for event, replacing any previous target. Panics on
// an unknown event.
func (v *View) AddTarget(event Event, fn Target) {
	switch event {
	case EventPress:
		v.target = fn
	default:
		panic("uikit: unsupported event")
	}
}

// AddTarget registers action for event on v, bound to arg. The argument is
// captured per view when the target is added.
func AddTarget[T any](v *View, event Event, action func(T), arg T) {
	v.AddTarget(event, func(PressContext) {
		action(arg)
	})
}

// PresentOnPress makes a press on v present a controller built by factory
// from presenter. The factory runs on every press, never before one.
// Presentation errors are passed to onErr when it is non-nil.
func PresentOnPress(v *View, presenter *ViewController, factory func() *ViewController, onErr func(error)) {
	v.AddTarget(EventPress, func(PressContext) {
		if err := presenter.Present(factory()); err != nil && onErr != nil {
			onErr(err)
		}
	})
}
