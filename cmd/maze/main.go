package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"

	"github.com/leterax/go-maze/internal/config"
	"github.com/leterax/go-maze/pkg/game"
	"github.com/leterax/go-maze/pkg/maze"
	"github.com/leterax/go-maze/pkg/render"
)

const sentryFlushTimeout = 2 * time.Second

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain runs the game with the given command line and returns the exit code
func realMain(args []string) int {
	// Parse command line flags
	flags := flag.NewFlagSet("maze", flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to a YAML config file (empty for defaults)")
	mazePath := flags.String("maze", "", "Path to a YAML maze layout (empty for the config's maze or the built-in one)")
	statsAddr := flags.String("statsview", "", "Serve runtime stats on this address, e.g. localhost:18066")
	logLevel := flags.String("loglevel", "", "Log level (trace, debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	cfg, err := loadConfig(*configPath, *mazePath, *statsAddr, *logLevel)
	if err != nil {
		log.Errorf("Failed to load config: %v", err)
		return 1
	}
	level, _ := logrus.ParseLevel(cfg.Log.Level)
	log.SetLevel(level)

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			log.Warnf("Failed to initialize sentry: %v", err)
		}
	}

	if addr := cfg.Diagnostics.StatsviewAddr; addr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		log.WithField("addr", addr).Info("Serving runtime stats")
	}

	if err := run(cfg, log); err != nil {
		sentry.CaptureException(err)
		sentry.Flush(sentryFlushTimeout)
		log.Errorf("Go-Maze failed: %v", err)
		return 1
	}
	sentry.Flush(sentryFlushTimeout)
	return 0
}

// loadConfig reads the config file, if any, and applies the flag overrides
func loadConfig(path, mazePath, statsAddr, logLevel string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if mazePath != "" {
		cfg.Maze.Path = mazePath
	}
	if statsAddr != "" {
		cfg.Diagnostics.StatsviewAddr = statsAddr
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, cfg.Validate()
}

func loadLayout(path string) (*maze.Layout, error) {
	if path == "" {
		return maze.Default(), nil
	}
	return maze.LoadFile(path)
}

func run(cfg config.Config, log *logrus.Logger) error {
	defer func() {
		// report frame loop panics before crashing
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			sentry.Flush(sentryFlushTimeout)
			panic(r)
		}
	}()

	layout, err := loadLayout(cfg.Maze.Path)
	if err != nil {
		return err
	}

	g, err := game.New(cfg, layout, log)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	renderer, err := render.NewRenderer(cfg.Window, log)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	renderer.SetScene(layout)
	g.SetNotifier(renderer)

	log.Info("Find the yellow box in the maze to win!")
	log.Info("Use WASD to move around the maze and the mouse to look")
	log.Info("Press C to release the mouse, Escape to quit")
	renderer.Run(g)
	return nil
}
