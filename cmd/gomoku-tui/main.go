package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	configPath = "config.yml"
	logPath    = "gomoku-tui.log"
)

// main - plays a local game in the terminal.
func main() {
	conf, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: config.ParseLogLevel(conf.LogLevel)}))

	session, err := gomoku.NewGameSession(entity.GameMode(conf.Game.DefaultMode), entity.Difficulty(conf.Game.DefaultDifficulty))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid game config: %v\n", err)
		os.Exit(1)
	}

	if err = newUI(logger, session, conf.Game.MachineDelay).Run(); err != nil {
		logger.Error("ui stopped", "error", err)
		fmt.Fprintf(os.Stderr, "ui failed: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig - config.yml when present, environment and defaults otherwise.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return config.LoadFromEnv()
	}

	return config.Load(configPath)
}
