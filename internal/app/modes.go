package app

import (
	"context"
	"fmt"

	"kitchenctl/internal/dashboard"
	"kitchenctl/internal/tui/controller"
	"kitchenctl/internal/tui/model"
	"kitchenctl/internal/tui/view"
	"kitchenctl/pkg/logging"
)

func modelOptions(cfg *Config) model.Options {
	return model.Options{
		DebugMode: cfg.Debug,
		Section:   cfg.Section,
		Light:     cfg.Light,
	}
}

// runCLIMode renders a single frame of the dashboard and writes it out.
func runCLIMode(ctx context.Context, cfg *Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.Section != "" && !dashboard.Section(cfg.Section).Known() {
		logging.Warn("CLI", "Unknown section %q, rendering fallback", cfg.Section)
	}

	m := model.InitializeModel(*cfg.KitchenConfig, modelOptions(cfg), nil)
	m.Width = cfg.Width
	m.Height = cfg.Height

	if _, err := fmt.Fprintln(cfg.Out, view.Render(m)); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config) error {
	logging.Info("CLI", "Starting TUI mode...")

	logLevel := logging.LevelInfo
	if cfg.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(ctx, *cfg.KitchenConfig, modelOptions(cfg), logChan)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	logging.Info("TUI-Lifecycle", "Kitchen dashboard ready")
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	return nil
}
