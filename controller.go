package uikit

import "fmt"

// Delegate supplies a controller's behavior. ViewDidLoad is called whenever
// the controller is (re)loaded into a live window; it typically builds the
// screen's subviews and wires press targets.
type Delegate interface {
	ViewDidLoad(vc *ViewController) error
}

// DelegateFunc adapts a function to the Delegate interface.
type DelegateFunc func(vc *ViewController) error

// ViewDidLoad calls f(vc).
func (f DelegateFunc) ViewDidLoad(vc *ViewController) error {
	return f(vc)
}

// PresentHook is implemented by delegates that need to act before their
// controller presents another one.
type PresentHook interface {
	WillPresent(vc, child *ViewController)
}

// ViewController owns one root view and the ordered list of controllers it
// has presented. Window and parent are handles, not owners.
type ViewController struct {
	Name string

	view     *View
	delegate Delegate
	children []*ViewController

	// Resolved through reg; zero until attached.
	id     ControllerID
	window WindowID
	parent ControllerID
	reg    *registry
}

// NewViewController creates a detached controller with an empty root view.
// d may be nil for a controller with no behavior.
func NewViewController(name string, d Delegate) *ViewController {
	return &ViewController{
		Name:     name,
		view:     NewView(name, Rect{}, Black),
		delegate: d,
	}
}

// View returns the controller's root view.
func (vc *ViewController) View() *View {
	return vc.view
}

// ID returns the controller's handle, or 0 if it is not attached.
func (vc *ViewController) ID() ControllerID {
	return vc.id
}

// Children returns the presented controllers in presentation order. The
// returned slice MUST NOT be mutated by the caller.
func (vc *ViewController) Children() []*ViewController {
	return vc.children
}

// Parent returns the controller that presented vc, or nil.
func (vc *ViewController) Parent() *ViewController {
	if vc.reg == nil {
		return nil
	}
	return vc.reg.controller(vc.parent)
}

// Window returns the window vc belongs to, or nil if it is not attached.
func (vc *ViewController) Window() *Window {
	if vc.reg == nil {
		return nil
	}
	return vc.reg.window(vc.window)
}

// ViewDidLoad runs the delegate's ViewDidLoad. No-op without a delegate.
func (vc *ViewController) ViewDidLoad() error {
	if vc.delegate == nil {
		return nil
	}
	if err := vc.delegate.ViewDidLoad(vc); err != nil {
		return fmt.Errorf("%s: view did load: %w", vc.Name, err)
	}
	return nil
}

// Present attaches child under vc, stretches its root view to the window,
// makes it the window's active controller and reloads the window. vc keeps
// child in its Children list for drawing; nothing is ever removed from it.
// A controller already attached to the same window may be presented again:
// it is re-parented to vc and appended once more. The window's active
// controller changes even when loading fails.
//
// Panics if vc is not attached to a window, if child is vc, or if child
// belongs to another application.
func (vc *ViewController) Present(child *ViewController) error {
	w := vc.Window()
	if w == nil {
		panic("uikit: present from a view controller that is not attached to a window")
	}
	if child == nil {
		panic("uikit: cannot present nil view controller")
	}
	if child == vc {
		panic("uikit: view controller cannot present itself")
	}
	if hook, ok := vc.delegate.(PresentHook); ok {
		hook.WillPresent(vc, child)
	}
	switch child.reg {
	case nil:
		vc.reg.adopt(child, vc.window, vc.id)
	case vc.reg:
		child.window = vc.window
		child.parent = vc.id
	default:
		panic("uikit: view controller " + child.Name + " belongs to another application")
	}
	child.view.Width = w.Width
	child.view.Height = w.Height
	w.active = child.id
	vc.children = append(vc.children, child)
	w.logger.Debug("present", "from", vc.Name, "to", child.Name)
	return w.ViewDidLoad()
}
