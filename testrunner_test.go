package uikit

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "press", "x": 100, "y": 200},
			{"action": "press", "view": "mail", "button": "right"},
			{"action": "wait", "frames": 3},
			{"action": "close"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if st := runner.steps[1]; st.X != 100 || st.Y != 200 || st.button != MouseButtonLeft {
		t.Errorf("step 1 = %+v, want left press at (100, 200)", st)
	}
	if st := runner.steps[2]; st.View != "mail" || st.button != MouseButtonRight {
		t.Errorf("step 2 = %+v, want right press on mail", st)
	}
	if runner.steps[3].Frames != 3 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	for name, data := range map[string]string{
		"not json":       `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "drag"}]}`,
		"unknown button": `{"steps": [{"action": "press", "button": "side"}]}`,
		"zero wait":      `{"steps": [{"action": "wait"}]}`,
	} {
		if _, err := LoadTestScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunnerDrivesWindow(t *testing.T) {
	root := NewViewController("root", nil)
	w := newCreatedWindow(t, root)
	presses := 0
	b := NewButton("b", Rect{0, 0, 50, 50})
	b.AddTarget(EventPress, func(PressContext) { presses++ })
	root.View().AddSubview(b)

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "x": 10, "y": 10},
		{"action": "wait", "frames": 2},
		{"action": "close"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	w.SetTestRunner(runner)

	// press is queued and delivered in the same tick
	w.Update(1.0 / 60)
	if presses != 1 {
		t.Fatalf("presses after first tick = %d, want 1", presses)
	}
	// two waiting ticks
	w.Update(1.0 / 60)
	w.Update(1.0 / 60)
	if w.Closed() || runner.Done() {
		t.Fatal("runner finished before wait elapsed")
	}
	w.Update(1.0 / 60)
	if !w.Closed() {
		t.Error("close step did not close the window")
	}
	if !runner.Done() || runner.Err() != nil {
		t.Errorf("runner done = %v, err = %v; want done without error", runner.Done(), runner.Err())
	}
}

func TestRunnerPressesViewByName(t *testing.T) {
	root := NewViewController("root", nil)
	w := newCreatedWindow(t, root)
	var got PressContext
	b := NewButton("mail", Rect{100, 200, 40, 20})
	b.AddTarget(EventPress, func(ctx PressContext) { got = ctx })
	root.View().AddSubview(b)

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "press", "view": "mail", "button": "middle"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	w.SetTestRunner(runner)
	w.Update(1.0 / 60)

	if got.X != 120 || got.Y != 210 || got.Button != MouseButtonMiddle {
		t.Errorf("press = %+v, want middle button at box center (120, 210)", got)
	}
}

func TestRunnerStopsOnMissingView(t *testing.T) {
	w := newCreatedWindow(t, NewViewController("root", nil))
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "view": "nowhere"},
		{"action": "close"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	w.SetTestRunner(runner)
	w.Update(1.0 / 60)
	w.Update(1.0 / 60)

	if !runner.Done() {
		t.Fatal("runner should stop on a missing view")
	}
	if runner.Err() == nil || !strings.Contains(runner.Err().Error(), `"nowhere"`) {
		t.Errorf("Err() = %v, want it to name the view", runner.Err())
	}
	if w.Closed() {
		t.Error("steps after the failure must not run")
	}
}

func TestRunnerQueuesScreenshot(t *testing.T) {
	w := newCreatedWindow(t, NewViewController("root", nil))
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "home"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	w.SetTestRunner(runner)
	w.Update(1.0 / 60)

	if len(w.screenshotQueue) != 1 || w.screenshotQueue[0] != "home" {
		t.Errorf("screenshot queue = %v, want [home]", w.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}
