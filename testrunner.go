package uikit

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one instruction of a test script.
//
// A press targets either a view by name or a point in window coordinates.
// Named views are looked up among the direct subviews of the active root
// when the step runs, so a script can follow the screens it presents.
type scriptStep struct {
	Action string  `json:"action"`
	View   string  `json:"view,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Button string  `json:"button,omitempty"`
	Label  string  `json:"label,omitempty"`
	Frames int     `json:"frames,omitempty"`

	button MouseButton
}

// TestRunner plays a JSON script against a Window, one step per tick.
// Attach it with SetTestRunner; the window drives it from Update.
//
//	{"steps": [
//	  {"action": "press", "view": "mail"},
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "mail"},
//	  {"action": "press", "x": 100, "y": 840, "button": "left"},
//	  {"action": "close"}
//	]}
type TestRunner struct {
	steps []scriptStep
	next  int
	idle  int
	done  bool
	err   error
}

// LoadTestScript parses and validates a script. Every step is checked up
// front so a typo fails before the window opens.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		if err := script.Steps[i].validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st *scriptStep) validate() error {
	switch st.Action {
	case "press":
		b, err := parseMouseButton(st.Button)
		if err != nil {
			return err
		}
		st.button = b
	case "wait":
		if st.Frames <= 0 {
			return fmt.Errorf("wait needs a positive frame count, got %d", st.Frames)
		}
	case "screenshot", "close":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func parseMouseButton(name string) (MouseButton, error) {
	switch name {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// SetTestRunner attaches runner to the window, replacing any previous one.
func (w *Window) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// Done reports whether the script finished or stopped on an error.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the error that stopped the script, or nil.
func (r *TestRunner) Err() error {
	return r.err
}

// step runs at most one script step. Nothing runs while injected presses
// are still queued or a wait is pending.
func (r *TestRunner) step(w *Window) {
	if r.done || len(w.injectQueue) > 0 {
		return
	}
	if r.idle > 0 {
		r.idle--
		return
	}
	if r.next == len(r.steps) {
		r.done = true
		return
	}

	i := r.next
	r.next++
	if err := r.run(w, &r.steps[i]); err != nil {
		r.err = fmt.Errorf("test script step %d: %w", i, err)
		r.done = true
		w.logger.Warn("test script stopped", "err", r.err)
		return
	}
	r.done = r.next == len(r.steps) && r.idle == 0 && len(w.injectQueue) == 0
}

func (r *TestRunner) run(w *Window, st *scriptStep) error {
	switch st.Action {
	case "press":
		x, y := st.X, st.Y
		if st.View != "" {
			v := w.subviewNamed(st.View)
			if v == nil {
				return fmt.Errorf("press: no view named %q on %s", st.View, w.ViewController().Name)
			}
			box := v.HitBox()
			x, y = box.X+box.Width/2, box.Y+box.Height/2
		}
		w.InjectPressButton(x, y, st.button)
	case "wait":
		// The tick that ran the step is the first waited frame.
		r.idle = st.Frames - 1
	case "screenshot":
		w.Screenshot(st.Label)
	case "close":
		w.Close()
	}
	return nil
}

// subviewNamed returns the first direct subview of the active root named
// name: the same set MousePress hit-tests.
func (w *Window) subviewNamed(name string) *View {
	vc := w.ViewController()
	if vc == nil {
		return nil
	}
	for _, sv := range vc.view.subviews {
		if sv.Name == name {
			return sv
		}
	}
	return nil
}
