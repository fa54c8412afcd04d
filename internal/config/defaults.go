package config

import (
	"kitchenctl/internal/dashboard"
	"kitchenctl/internal/kitchen"
)

const DefaultTitle = "THE NINE TAILS KITCHEN"

// GetDefaultConfig returns the built-in configuration with the sample fixtures.
func GetDefaultConfig() KitchenConfig {
	dark := true
	return KitchenConfig{
		Settings: Settings{
			Title:               DefaultTitle,
			Operator:            dashboard.DefaultOperator,
			DarkMode:            &dark,
			NotificationTimeout: dashboard.DefaultNotificationTimeout,
			LowStockThreshold:   dashboard.DefaultLowStockThreshold,
			InitialSection:      string(dashboard.SectionDashboard),
		},
		Fixtures: kitchen.DefaultFixtures(),
	}
}
