package config

import (
	"time"

	"kitchenctl/internal/kitchen"
)

// KitchenConfig is the top-level configuration structure for kitchenctl.
type KitchenConfig struct {
	Settings Settings         `yaml:"settings"`
	Fixtures kitchen.Fixtures `yaml:"fixtures,omitempty"`
}

// Settings controls presentation and operator defaults.
type Settings struct {
	Title               string        `yaml:"title,omitempty"`
	Operator            string        `yaml:"operator,omitempty"` // Sender name on chat messages
	DarkMode            *bool         `yaml:"darkMode,omitempty"`
	NotificationTimeout time.Duration `yaml:"notificationTimeout,omitempty"`
	LowStockThreshold   int           `yaml:"lowStockThreshold,omitempty"`
	InitialSection      string        `yaml:"initialSection,omitempty"`
}

// IsDarkMode resolves the dark mode flag, defaulting to dark.
func (s Settings) IsDarkMode() bool {
	if s.DarkMode == nil {
		return true
	}
	return *s.DarkMode
}
