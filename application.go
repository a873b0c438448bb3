package uikit

import (
	"context"
	"fmt"
	"log/slog"
)

// Screen is a rectangle describing a physical display area.
type Screen struct {
	X, Y          float64
	Width, Height float64
}

// Bounds returns the screen as a Rect.
func (s Screen) Bounds() Rect {
	return Rect{s.X, s.Y, s.Width, s.Height}
}

// Application owns the windows of a program and the displays they can be
// placed on. Screen 0 is the primary display.
type Application struct {
	reg      *registry
	windows  []*Window
	screens  []Screen
	platform Platform
	logger   *slog.Logger
}

// NewApplication creates an application on p and enumerates its screens.
// A nil platform selects Ebitengine.
func NewApplication(p Platform) *Application {
	if p == nil {
		p = NewEbitenPlatform()
	}
	return &Application{
		reg:      newRegistry(),
		screens:  p.Screens(),
		platform: p,
		logger:   slog.Default(),
	}
}

// SetLogger replaces the logger used by the application and its windows.
func (a *Application) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	a.logger = l
	for _, w := range a.windows {
		w.SetLogger(l)
	}
}

// NewWindow creates a window hosting root and adds it to the application.
func (a *Application) NewWindow(cfg WindowConfig, root *ViewController) *Window {
	w := newWindow(a.reg, cfg, root)
	w.SetPlatform(a.platform)
	w.SetLogger(a.logger)
	a.windows = append(a.windows, w)
	return w
}

// Windows returns the application's windows. The returned slice MUST NOT be mutated.
func (a *Application) Windows() []*Window {
	return a.windows
}

// Screens returns the screens found at construction.
func (a *Application) Screens() []Screen {
	return a.screens
}

// Run places every window on the primary screen, creates it, then blocks in
// the platform loop until it exits or ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if len(a.screens) == 0 {
		return ErrNoScreens
	}
	for _, w := range a.windows {
		w.Screen = a.screens[0]
		if err := w.Create(); err != nil {
			return fmt.Errorf("create window %q: %w", w.Title, err)
		}
	}
	a.logger.Info("running", "windows", len(a.windows),
		"screen", fmt.Sprintf("%gx%g", a.screens[0].Width, a.screens[0].Height))
	return a.platform.Run(ctx)
}
