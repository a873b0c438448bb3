package uikit

import (
	"fmt"
	"log/slog"
	"time"
)

const defaultWindowTitle = "UIKit"

// WindowConfig describes a window before it is created. Zero Width or Height
// take the assigned screen's size at Create.
type WindowConfig struct {
	X, Y          float64
	Width, Height float64
	Title         string
}

// Window hosts one controller tree on a platform surface. It draws the active
// controller each frame and routes presses to it.
type Window struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Screen        Screen

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	id     WindowID
	reg    *registry
	root   ControllerID
	active ControllerID

	platform Platform
	logger   *slog.Logger
	created  bool
	exit     bool
	debug    bool

	// Scripted input and capture
	injectQueue     []syntheticPress
	screenshotQueue []string
	testRunner      *TestRunner

	tweens []*OpacityTween
}

// NewWindow creates a standalone window whose controllers live in their own
// registry. Applications create windows with Application.NewWindow instead.
func NewWindow(cfg WindowConfig, root *ViewController) *Window {
	return newWindow(newRegistry(), cfg, root)
}

func newWindow(reg *registry, cfg WindowConfig, root *ViewController) *Window {
	if cfg.Title == "" {
		cfg.Title = defaultWindowTitle
	}
	w := &Window{
		X:             cfg.X,
		Y:             cfg.Y,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Title:         cfg.Title,
		ScreenshotDir: "screenshots",
		logger:        slog.Default(),
	}
	reg.addWindow(w)
	w.root = reg.adopt(root, w.id, 0)
	w.active = w.root
	root.view.Width = w.Width
	root.view.Height = w.Height
	return w
}

// ID returns the window's handle.
func (w *Window) ID() WindowID {
	return w.id
}

// ViewController returns the active controller: the one whose direct subviews
// receive presses and whose tree is drawn.
func (w *Window) ViewController() *ViewController {
	return w.reg.controller(w.active)
}

// RootViewController returns the controller the window was created with.
func (w *Window) RootViewController() *ViewController {
	return w.reg.controller(w.root)
}

// Bounds returns the window's size at the origin, in window coordinates.
func (w *Window) Bounds() Rect {
	return Rect{0, 0, w.Width, w.Height}
}

// SetLogger replaces the window's logger. A nil logger restores slog.Default().
func (w *Window) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	w.logger = l
}

// Logger returns the window's logger.
func (w *Window) Logger() *slog.Logger {
	return w.logger
}

// SetPlatform sets the platform Create opens the window on. A window without
// a platform is headless: Create skips opening a surface.
func (w *Window) SetPlatform(p Platform) {
	w.platform = p
}

// Created reports whether Create has completed.
func (w *Window) Created() bool {
	return w.created
}

// Create resolves a zero size to the screen's, opens the platform surface
// (which routes draw and press callbacks back to the window) and loads the
// controller tree top-down.
func (w *Window) Create() error {
	root := w.RootViewController()
	if w.Width == 0 {
		w.Width = w.Screen.Width
		root.view.Width = w.Width
	}
	if w.Height == 0 {
		w.Height = w.Screen.Height
		root.view.Height = w.Height
	}
	if w.platform != nil {
		if err := w.platform.Open(w); err != nil {
			return fmt.Errorf("open window %q: %w", w.Title, err)
		}
	}
	w.created = true
	w.logger.Debug("window created", "title", w.Title,
		"x", w.X, "y", w.Y, "width", w.Width, "height", w.Height)
	return w.ViewDidLoad()
}

// ViewDidLoad loads the active controller and then each of its presented
// children, stopping at the first error. Children loaded before are loaded
// again.
func (w *Window) ViewDidLoad() error {
	vc := w.ViewController()
	if err := vc.ViewDidLoad(); err != nil {
		return err
	}
	for _, child := range vc.children {
		if err := child.ViewDidLoad(); err != nil {
			return err
		}
	}
	return nil
}

// Draw clears s and draws the active controller's view tree followed by the
// view tree of each controller it presented. Controllers presented by those
// children are not drawn.
func (w *Window) Draw(s Surface) {
	var stats frameStats
	var t0 time.Time
	if w.debug {
		cs := &countingSurface{Surface: s, stats: &stats}
		s = cs
		t0 = time.Now()
	}

	s.Clear()
	if vc := w.ViewController(); vc != nil {
		vc.view.Draw(s)
		for _, child := range vc.children {
			child.view.Draw(s)
		}
	}

	if w.debug {
		stats.drawTime = time.Since(t0)
		w.debugLog(stats)
	}
}

// MousePress routes a press at (x, y) to the first direct subview of the
// active controller's root view whose box contains the point. Subviews are
// tested in insertion order, so the earliest added view wins even when a
// later one is drawn on top of it. Reports whether a subview was hit.
func (w *Window) MousePress(x, y float64, button MouseButton, mods KeyModifiers) bool {
	vc := w.ViewController()
	if vc == nil {
		return false
	}
	for _, sv := range vc.view.subviews {
		var r Responder = sv
		if !r.HitBox().Contains(x, y) {
			continue
		}
		w.logger.Debug("press", "view", sv.Name, "x", x, "y", y, "handled", sv.HasTarget())
		r.Press(PressContext{X: x, Y: y, Button: button, Modifiers: mods})
		return true
	}
	return false
}

// Close marks the window as closed. The flag is advisory: the platform loop
// keeps running.
func (w *Window) Close() {
	w.exit = true
}

// Closed reports whether Close was called.
func (w *Window) Closed() bool {
	return w.exit
}

// Update advances the window by one tick of dt seconds: steps the attached
// test runner, delivers at most one injected press and advances tweens.
func (w *Window) Update(dt float64) {
	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	w.processInjectedInput()
	w.updateTweens(float32(dt))
}
