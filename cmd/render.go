package cmd

import (
	"kitchenctl/internal/app"
	"kitchenctl/internal/tui/model"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var width, height int

	c := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the dashboard and exit",
		Long: `Renders a single section of the dashboard to stdout without taking over
the terminal. Useful for scripts, screenshots and quick checks of a
configuration file.`,
		Example: `  kitchenctl render --section Inventory --width 100
  kitchenctl render --section Menu --light --config ./menu.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.NewConfig(true, debugMode)
			cfg.ConfigPath = configPath
			cfg.Section = startSection
			cfg.Light = lightMode
			cfg.Width = width
			cfg.Height = height
			cfg.Out = cmd.OutOrStdout()

			return runApplication(cmd, cfg)
		},
	}

	c.Flags().IntVar(&width, "width", model.DefaultWidth, "Frame width in columns")
	c.Flags().IntVar(&height, "height", model.DefaultHeight, "Frame height in rows")
	return c
}
