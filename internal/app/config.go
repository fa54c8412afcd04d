package app

import (
	"io"
	"os"

	"kitchenctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath is an explicit configuration file layered last. Empty
	// uses the user and project layers only.
	ConfigPath string

	// Start-up overrides
	Section string
	Light   bool

	// Snapshot size and destination for no-TUI mode
	Width  int
	Height int
	Out    io.Writer

	// Kitchen configuration, filled by NewApplication
	KitchenConfig *config.KitchenConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool) *Config {
	return &Config{
		NoTUI: noTUI,
		Debug: debug,
		Out:   os.Stdout,
	}
}
