// physics is an interactive demo of the collision world: drive the player box
// with I/J/K/L while it drifts downward and pushes the other bodies around.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/bugsyth/bugsyth-engine/internal/config"
	"github.com/bugsyth/bugsyth-engine/internal/game"
	"github.com/bugsyth/bugsyth-engine/internal/logger"
	"github.com/bugsyth/bugsyth-engine/internal/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== bugsyth engine: physics ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	sc := scene.Default()
	if cfg.Scene.Path != "" {
		sc, err = scene.Load(cfg.Scene.Path)
		if err != nil {
			logger.Error("failed to load scene", zap.Error(err))
			os.Exit(1)
		}
	}

	ctx, err := game.New(cfg, logger.Named("engine"))
	if err != nil {
		logger.Error("failed to create engine", zap.Error(err))
		os.Exit(1)
	}
	defer ctx.Close()

	if err := game.Run(ctx, newDemo(sc, logger.Named("physics"))); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("physics demo closed normally")
}
