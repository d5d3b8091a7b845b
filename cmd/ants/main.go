// cmd/ants/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"go-hex-ants/internal/app"
	"go-hex-ants/internal/config"
	"go-hex-ants/internal/motion"
	"go-hex-ants/internal/overlay"
	"go-hex-ants/internal/utils"
	"go-hex-ants/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML settings file")
	reducedMotion := flag.String("reduced-motion", "auto", "reduced motion: auto, on or off")
	motionSource := flag.String("motion-source", "", "preference source: auto, static, env, signal, gsettings")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(&settings, *reducedMotion, *motionSource); err != nil {
		return err
	}
	if err := logger.Init(logger.Config{
		Level:       settings.Log.Level,
		Format:      settings.Log.Format,
		OutputPaths: settings.Log.Outputs,
	}); err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	monitor, err := motion.Start(ctx, motion.FromSettings(settings.Motion, logger.Named("motion")), false, motion.InitialWait)
	if err != nil {
		return err
	}

	width, height := windowSize(settings.Window)
	win := overlay.New(ctx, monitor, overlay.Options{
		Width:    width,
		Height:   height,
		Debug:    settings.Window.Debug,
		Backdrop: settings.Backdrop.Enabled,
		Log:      logger.Named("page"),
	})

	opts := app.DefaultOptions()
	opts.Ants = settings.Animation.Ants
	rng := utils.NewPRNGService(settings.Animation.Seed)
	ants := app.New(win, opts, logger.Named("ants"), rng)
	win.SetStatus(func() string { return ants.Stats().String() })
	ants.Attach()
	defer ants.Detach()

	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(settings.Window.Floating)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.L().Info("overlay starting", "width", width, "height", height, "motion_source", monitor.Name(), "reduced", monitor.Reduced(), "seed", rng.Seed())
	if err := ebiten.RunGameWithOptions(win, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		InitUnfocused:     true,
	}); err != nil {
		return fmt.Errorf("run overlay: %w", err)
	}
	return nil
}

// applyFlags lets the command line override the motion section.
func applyFlags(s *config.Settings, reduced, source string) error {
	if source != "" {
		s.Motion.Source = source
	}
	switch reduced {
	case "", "auto":
	case "on":
		s.Motion.Source = config.MotionSourceStatic
		s.Motion.Reduced = true
	case "off":
		s.Motion.Source = config.MotionSourceStatic
		s.Motion.Reduced = false
	default:
		return fmt.Errorf("%w: -reduced-motion %q", config.ErrInvalid, reduced)
	}
	return s.Validate()
}

// windowSize covers the whole monitor unless the settings pin a size.
func windowSize(w config.WindowSettings) (int, int) {
	width, height := w.Width, w.Height
	if width > 0 && height > 0 {
		return width, height
	}
	if m := ebiten.Monitor(); m != nil {
		if mw, mh := m.Size(); mw > 0 && mh > 0 {
			return mw, mh
		}
	}
	return config.ScreenWidth, config.ScreenHeight
}
