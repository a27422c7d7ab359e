package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hero-motion/config"
	"github.com/lixenwraith/hero-motion/scene"
)

var (
	configFlag    = flag.String("config", "", "TOML config file")
	sceneFlag     = flag.String("scene", "", "Scene preset: hero, techstack")
	sceneFileFlag = flag.String("scene-file", "", "TOML scene file, overrides -scene")
	fpsFlag       = flag.Int("fps", 0, "Frames per second")
	colorModeFlag = flag.String("color", "", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write a debug log under the log directory")
	sampleFlag    = flag.String("sample", "", "Print body transforms at comma-separated elapsed seconds and exit")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hero: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug, cfg.Log); logFile != nil {
		defer logFile.Close()
	}

	s, err := cfg.ResolveScene()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hero: %v\n", err)
		os.Exit(1)
	}

	if *sampleFlag != "" {
		if err := sample(s, *sampleFlag); err != nil {
			fmt.Fprintf(os.Stderr, "hero: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runInteractive(cfg, s); err != nil {
		fmt.Fprintf(os.Stderr, "hero: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers flags over the config file over defaults
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneFlag
		case "scene-file":
			cfg.SceneFile = *sceneFileFlag
		case "fps":
			cfg.FPS = *fpsFlag
		case "color":
			cfg.ColorMode = *colorModeFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
	return cfg, errors.Wrap(cfg.Validate(), "flags")
}

func sample(s scene.Scene, list string) error {
	times, err := parseTimes(list)
	if err != nil {
		return err
	}
	m, err := scene.Mount(s)
	if err != nil {
		return err
	}
	defer m.Unmount()
	return writeSamples(os.Stdout, m, times)
}

func runInteractive(cfg config.Config, s scene.Scene) error {
	switch cfg.ColorMode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	// Panic Recovery: Ensure terminal is reset even if the scene crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHERO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	h, err := newHost(screen, s, cfg.Document.Rows, cfg.FPS, nil)
	if err != nil {
		return err
	}
	log.Printf("mounted %q: %d bodies at %d fps", s.Name, h.mounted.Bodies(), cfg.FPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return h.run(ctx)
}
