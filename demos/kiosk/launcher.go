package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ErrWindowNotFound is returned when no window matches a launched app's title.
var ErrWindowNotFound = errors.New("kiosk: launched window not found")

// Runner starts and runs external programs.
type Runner interface {
	// Start launches a long-running program without waiting for it.
	Start(ctx context.Context, name string, args ...string) error
	// Run runs a program to completion with extra environment variables and
	// returns its standard output, which may be partial when err is set.
	Run(ctx context.Context, env []string, name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Start(_ context.Context, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func (execRunner) Run(ctx context.Context, env []string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.Output()
	if err != nil {
		return string(out), fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return string(out), nil
}

// searchMissed reports whether an xdotool search failed only because no
// window matched: xdotool exits with status 1 and prints nothing.
func searchMissed(out string, err error) bool {
	var exit interface{ ExitCode() int }
	return errors.As(err, &exit) && exit.ExitCode() == 1 && strings.TrimSpace(out) == ""
}

// Launcher starts external applications and docks their window over the
// content area with xdotool.
type Launcher struct {
	cfg    LauncherConfig
	runner Runner
	logger *slog.Logger
}

// NewLauncher returns a launcher that runs commands through runner, or
// through os/exec when runner is nil.
func NewLauncher(cfg LauncherConfig, runner Runner, logger *slog.Logger) *Launcher {
	if runner == nil {
		runner = execRunner{}
	}
	return &Launcher{cfg: cfg, runner: runner, logger: logger}
}

// Enabled reports whether Launch starts anything.
func (l *Launcher) Enabled() bool {
	return l.cfg.Enabled
}

func (l *Launcher) env() []string {
	return []string{"DISPLAY=" + l.cfg.Display}
}

func (l *Launcher) xdotool(ctx context.Context, args ...string) (string, error) {
	return l.runner.Run(ctx, l.env(), "xdotool", args...)
}

// Launch starts app, waits for it to map its window, then moves and resizes
// the first window whose title matches. It returns that window's id.
func (l *Launcher) Launch(ctx context.Context, app AppCommand) (string, error) {
	if len(app.Command) == 0 {
		return "", fmt.Errorf("launch %q: empty command", app.Window)
	}
	if err := l.runner.Start(ctx, app.Command[0], app.Command[1:]...); err != nil {
		return "", err
	}

	select {
	case <-time.After(l.cfg.Delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	out, err := l.xdotool(ctx, "search", "--name", app.Window)
	if err != nil && !searchMissed(out, err) {
		return "", err
	}
	ids := strings.Fields(out)
	if len(ids) == 0 {
		return "", fmt.Errorf("%w: %q", ErrWindowNotFound, app.Window)
	}
	id := ids[0]

	x, y := strconv.Itoa(l.cfg.X), strconv.Itoa(l.cfg.Y)
	w, h := strconv.Itoa(l.cfg.Width), strconv.Itoa(l.cfg.Height)
	if _, err := l.xdotool(ctx, "windowmove", id, x, y); err != nil {
		return id, err
	}
	if _, err := l.xdotool(ctx, "windowsize", id, w, h); err != nil {
		return id, err
	}

	if err := l.writeLog(app, id); err != nil {
		l.logger.Warn("write launcher log", "path", l.cfg.LogFile, "err", err)
	}
	l.logger.Info("app docked", "app", app.Window, "window", id)
	return id, nil
}

// writeLog replaces the log file with the commands that reproduce the last
// docking, so an operator can redo or undo it by hand.
func (l *Launcher) writeLog(app AppCommand, id string) error {
	if l.cfg.LogFile == "" {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s + %s\n", app.Window, id)
	fmt.Fprintf(&b, "xdotool windowmove %s %d %d\n", id, l.cfg.X, l.cfg.Y)
	fmt.Fprintf(&b, "xdotool windowsize %s %d %d\n", id, l.cfg.Width, l.cfg.Height)
	fmt.Fprintf(&b, "xdotool windowkill %s\n", id)
	return os.WriteFile(l.cfg.LogFile, []byte(b.String()), 0o644)
}

// Kill closes a window returned by Launch.
func (l *Launcher) Kill(ctx context.Context, id string) error {
	_, err := l.xdotool(ctx, "windowkill", id)
	return err
}

// SetDisplayMode applies the configured xrandr mode.
func SetDisplayMode(ctx context.Context, runner Runner, d DisplayConfig) error {
	_, err := runner.Run(ctx, nil, "xrandr",
		"--output", d.Output, "--mode", d.Mode, "--rate", strconv.Itoa(d.Rate))
	return err
}
