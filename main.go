package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/soocke/circle-shot-go/app"
	"github.com/soocke/circle-shot-go/config"
)

func main() {
	cfgPath := flag.String("config", "circle-shot.json", "path to the JSON config file")
	debug := flag.Bool("debug", false, "enable debug logging and runtime loggers")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if *debug {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(os.Stdout, level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	application, err := app.NewApp("Circle Shot", 1000, 760, cfg, *cfgPath, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	application.Start()
}
