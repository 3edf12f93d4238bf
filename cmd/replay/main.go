// Command replay drives the road simulation from a recorded input script
// without opening a window, and reports where the camera ended up.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/logging"
	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file (defaults if empty)")
	scriptPath := flag.String("script", "", "Path to YAML input script")
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
	logger := logging.New(cfg.Log.Level, os.Stderr).With("run", uuid.NewString())

	if *scriptPath == "" {
		logger.Error("no script given, use -script")
		os.Exit(2)
	}
	sc, err := LoadScript(*scriptPath)
	if err != nil {
		logger.Error("failed to load script", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := Replay(ctx, cfg, sc, logger)
	if err != nil {
		logger.Error("replay failed", "error", err)
		os.Exit(1)
	}

	f := summary.Frame
	logger.Info("replay finished",
		"ticks", summary.Ticks,
		"renders", summary.Renders,
		"z", f.Camera.Z,
		"segment", f.StartIndex,
		"camera_y", f.Camera.Y,
		"camera_height", f.CameraHeight,
		"backdrop_x", f.BackdropX,
		"visible_bands", summary.Bands,
	)
}
