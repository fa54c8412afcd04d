package controller

import (
	"context"

	"kitchenctl/internal/config"
	"kitchenctl/internal/tui/model"
	"kitchenctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the dashboard. Cancelling
// ctx stops the program.
func NewProgram(
	ctx context.Context,
	cfg config.KitchenConfig,
	opts model.Options,
	logChannel <-chan logging.LogEntry,
) (*tea.Program, error) {
	if err := cfg.Fixtures.Validate(); err != nil {
		return nil, err
	}

	m := model.InitializeModel(cfg, opts, logChannel)
	app := NewAppModel(m)

	return tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)), nil
}
