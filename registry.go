package uikit

// ControllerID is a non-owning handle to a ViewController in a registry.
// The zero value means "none".
type ControllerID uint32

// WindowID is a non-owning handle to a Window in a registry.
// The zero value means "none".
type WindowID uint32

// registry is the arena that owns every attached window and controller.
// Controllers and windows refer to each other only through IDs resolved here,
// so no back-reference keeps anything alive on its own.
type registry struct {
	windows     []*Window
	controllers []*ViewController
}

func newRegistry() *registry {
	return &registry{}
}

// addWindow stores w and returns its handle.
func (r *registry) addWindow(w *Window) WindowID {
	r.windows = append(r.windows, w)
	id := WindowID(len(r.windows))
	w.id = id
	w.reg = r
	return id
}

// adopt stores vc and links it to its window and parent.
// Panics if vc already belongs to a registry.
func (r *registry) adopt(vc *ViewController, window WindowID, parent ControllerID) ControllerID {
	if vc == nil {
		panic("uikit: cannot attach nil view controller")
	}
	if vc.reg != nil {
		panic("uikit: view controller " + vc.Name + " is already attached")
	}
	r.controllers = append(r.controllers, vc)
	id := ControllerID(len(r.controllers))
	vc.id = id
	vc.reg = r
	vc.window = window
	vc.parent = parent
	return id
}

// controller resolves id, or returns nil for the zero handle.
func (r *registry) controller(id ControllerID) *ViewController {
	if id == 0 || int(id) > len(r.controllers) {
		return nil
	}
	return r.controllers[id-1]
}

// window resolves id, or returns nil for the zero handle.
func (r *registry) window(id WindowID) *Window {
	if id == 0 || int(id) > len(r.windows) {
		return nil
	}
	return r.windows[id-1]
}
