package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Flags shared by the dashboard and render commands.
var (
	configPath   string
	debugMode    bool
	lightMode    bool
	startSection string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kitchenctl",
	Short: "Run THE NINE TAILS KITCHEN restaurant dashboard in your terminal",
	Long: `kitchenctl is a terminal dashboard for restaurant staff. It shows sales,
orders, inventory, the menu, analytics, employees, a staff chat and settings,
and lets an operator accept or reject orders, adjust stock and send messages.

Running kitchenctl without a subcommand starts the interactive dashboard.
Configuration is layered from ~/.config/kitchenctl/config.yaml,
./.kitchenctl/config.yaml and the file given with --config.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid configuration)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runDashboard,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "kitchenctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Additional configuration file, applied after the user and project layers")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&lightMode, "light", false, "Start in light mode")
	rootCmd.PersistentFlags().StringVar(&startSection, "section", "", "Section to open on start (e.g. Orders, Inventory)")

	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newVersionCmd())
}
