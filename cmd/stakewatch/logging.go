package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/stakewatch/stakewatch/config"
)

func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDebug {
		level = slog.LevelDebug
	}

	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		AddSource:  cfg.IsDebug,
		TimeFormat: "15:04:05.000",
		NoColor:    os.Getenv("NO_COLOR") != "",
	})

	slog.SetDefault(slog.New(h))

	log.SetFlags(0)
	log.SetOutput(
		slog.NewLogLogger(
			slog.Default().Handler(),
			slog.LevelInfo,
		).Writer(),
	)
}
