package main

import (
	"errors"
	"flag"
	"os"

	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/game"
	"github.com/golangdaddy/outrun/pkg/logging"
	"github.com/golangdaddy/outrun/pkg/track"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file (defaults if empty)")
	logLevel := flag.String("log-level", "", "Log level: DEBUG, INFO, WARN or ERROR (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.New(*logLevel, os.Stderr).Error("failed to load configuration", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	logger := logging.New(cfg.Log.Level, os.Stderr).With("session", uuid.NewString())
	if *configPath == "" {
		logger.Info("no configuration file given, using defaults")
	} else {
		logger.Info("configuration loaded", "path", *configPath)
	}

	tr, err := track.Build(cfg.Track.Segments, cfg.Track.SegmentLength, cfg.Track.Recipe)
	if err != nil {
		logger.Error("failed to build track", "error", err)
		os.Exit(1)
	}
	logger.Info("track built", "segments", tr.Len(), "length", tr.Length())

	textures, err := game.LoadTextures(cfg.Assets)
	if err != nil {
		logger.Error("failed to load textures", "source", cfg.Assets.Source, "error", err)
		os.Exit(1)
	}
	logger.Info("textures loaded", "source", cfg.Assets.Source)

	g, err := game.New(cfg, tr, textures, logger)
	if err != nil {
		logger.Error("failed to start game", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	// Update runs once per frame and measures wall time itself.
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowClosingHandled(true)
	if cfg.Window.Center {
		mw, mh := ebiten.Monitor().Size()
		ebiten.SetWindowPosition((mw-cfg.Window.Width)/2, (mh-cfg.Window.Height)/2)
	}
	logger.Info("window opened", "width", cfg.Window.Width, "height", cfg.Window.Height)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
