package cmd

import (
	"context"
	"fmt"

	"kitchenctl/internal/app"

	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Start the interactive kitchen dashboard",
		Long: `Starts the full-screen dashboard. Use tab or the number keys to move
between sections and press ? for all key bindings.`,
		Args: cobra.NoArgs,
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(false, debugMode)
	cfg.ConfigPath = configPath
	cfg.Section = startSection
	cfg.Light = lightMode

	return runApplication(cmd, cfg)
}

func runApplication(cmd *cobra.Command, cfg *app.Config) error {
	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}
