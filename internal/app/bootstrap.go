package app

import (
	"context"
	"fmt"
	"os"

	"kitchenctl/internal/config"
	"kitchenctl/pkg/logging"
)

const bootstrapSubsystem = "Bootstrap"

// Application is the main application structure that bootstraps and runs kitchenctl
type Application struct {
	config *Config
}

// NewApplication sets up logging and loads the layered kitchen configuration.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Logs go to stderr so snapshots on stdout stay clean. TUI mode
	// replaces this with the channel logger.
	logging.InitForCLI(appLogLevel, os.Stderr)

	kitchenCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error(bootstrapSubsystem, err, "Failed to load kitchen configuration")
		return nil, fmt.Errorf("failed to load kitchen configuration: %w", err)
	}
	if cfg.ConfigPath != "" {
		logging.Debug(bootstrapSubsystem, "Loaded configuration with explicit file: %s", cfg.ConfigPath)
	} else {
		logging.Debug(bootstrapSubsystem, "Loaded configuration using layered approach")
	}

	cfg.KitchenConfig = &kitchenCfg
	return &Application{config: cfg}, nil
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config)
	}
	return runTUIMode(ctx, a.config)
}
