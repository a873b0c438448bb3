// Kiosk is a full-screen launcher for a shared workstation: a main screen
// with mail, files and device-function tiles, each opening a screen that
// docks the external application over the content area.
//
// Resources are read from ./resources by default:
//
//	resources/fonts/<family>/*.ttf
//	resources/images/{logo,mail_icon,files_icon,func_icon,backbutton_icon,tmp_block}.png
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/phanxgames/uikit"
	"github.com/spf13/cobra"
)

var version = "dev"

type options struct {
	configPath    string
	resources     string
	debug         bool
	script        string
	screenshotDir string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "kiosk",
		Short: "Run the workstation kiosk",
		Long: `kiosk shows a full-screen launcher for mail, files and device functions.
Applications are started on demand and docked over the kiosk with xdotool.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("resources") {
				if cfg.Launcher.LogFile == filepath.Join(cfg.Resources, "log") {
					cfg.Launcher.LogFile = filepath.Join(opts.resources, "log")
				}
				cfg.Resources = opts.resources
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = opts.debug
			}
			return run(cmd.Context(), cfg, opts)
		},
	}
	cmd.Version = version
	cmd.SetVersionTemplate(`{{printf "kiosk version %s\n" .Version}}`)

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/uikit-kiosk/config.yaml)")
	f.StringVar(&opts.resources, "resources", "./resources", "directory holding fonts/ and images/")
	f.BoolVar(&opts.debug, "debug", false, "log debug output and per-frame draw stats")
	f.StringVar(&opts.script, "script", "", "JSON test script to drive the window")
	f.StringVar(&opts.screenshotDir, "screenshot-dir", "screenshots", "directory for script screenshots")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kiosk",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kiosk version %s\n", version)
		},
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}

func run(ctx context.Context, cfg Config, opts options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cfg.Debug)
	slog.SetDefault(logger)

	fonts, err := uikit.LoadFontDir(cfg.FontsDir())
	if err != nil {
		logger.Error("font not loaded", "err", err)
		return err
	}
	if err := fonts.Require(cfg.Fonts.Title, cfg.Fonts.Body); err != nil {
		logger.Error("font not loaded", "err", err, "available", fonts.Names())
		return err
	}
	title, _ := fonts.Font(cfg.Fonts.Title)
	body, _ := fonts.Font(cfg.Fonts.Body)

	runner := execRunner{}
	if cfg.Display.Enabled {
		if err := SetDisplayMode(ctx, runner, cfg.Display); err != nil {
			logger.Warn("set display mode", "err", err)
		}
	}

	k := &kiosk{
		cfg:      cfg,
		pal:      DefaultPalette(),
		title:    title,
		body:     body,
		launcher: NewLauncher(cfg.Launcher, runner, logger),
		logger:   logger,
		ctx:      ctx,
		now:      time.Now,
	}

	app := uikit.NewApplication(nil)
	app.SetLogger(logger)
	w := app.NewWindow(uikit.WindowConfig{
		X:      cfg.Window.X,
		Y:      cfg.Window.Y,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
	}, k.newMainScreen())
	w.SetDebugMode(cfg.Debug)
	w.ScreenshotDir = opts.screenshotDir

	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script, err := uikit.LoadTestScript(data)
		if err != nil {
			return err
		}
		w.SetTestRunner(script)
	}

	return app.Run(ctx)
}
