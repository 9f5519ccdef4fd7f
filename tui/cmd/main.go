package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/zappabad/botwars/internal/backend"
	"github.com/zappabad/botwars/internal/config"
	"github.com/zappabad/botwars/internal/game"
	"github.com/zappabad/botwars/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting dashboard",
		zap.String("backend", cfg.BackendURL),
		zap.Duration("tick_interval", cfg.TickInterval),
	)

	client := backend.NewClient(logger, cfg)
	ctrl, err := game.NewController(client, game.ConfigFrom(cfg), logger)
	if err != nil {
		logger.Error("failed to create controller", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error creating controller: %v\n", err)
		os.Exit(1)
	}
	defer ctrl.Close()

	// Create and run TUI
	model := tui.NewModel(ctrl)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
	logger.Info("dashboard stopped", zap.Any("stats", ctrl.Stats()))
}

// newLogger writes JSON logs to the configured file; the terminal belongs to
// the TUI.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	return zc.Build()
}
