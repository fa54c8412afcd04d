package config

import (
	"fmt"
	"os"
	"path/filepath"

	"kitchenctl/internal/kitchen"
	"kitchenctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/kitchenctl"
	projectConfigDir = ".kitchenctl"
	configFileName   = "config.yaml"
	loaderSubsystem  = "Config"
)

// LoadConfig layers default, user and project settings. A non-empty
// explicitPath is applied last and must exist.
func LoadConfig(explicitPath string) (KitchenConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn(loaderSubsystem, "Could not determine user config path: %v", err)
	} else if config, err = applyOptionalLayer(config, userConfigPath); err != nil {
		return KitchenConfig{}, err
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn(loaderSubsystem, "Could not determine project config path: %v", err)
	} else if config, err = applyOptionalLayer(config, projectConfigPath); err != nil {
		return KitchenConfig{}, err
	}

	if explicitPath != "" {
		overlay, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return KitchenConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		logging.Debug(loaderSubsystem, "Applied explicit config %s", explicitPath)
		config = mergeConfigs(config, overlay)
	}

	if err := config.Fixtures.Validate(); err != nil {
		return KitchenConfig{}, fmt.Errorf("invalid fixtures: %w", err)
	}

	return config, nil
}

func applyOptionalLayer(base KitchenConfig, path string) (KitchenConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return KitchenConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	logging.Debug(loaderSubsystem, "Applied config layer %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a KitchenConfig from a YAML file.
func loadConfigFromFile(filePath string) (KitchenConfig, error) {
	var config KitchenConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return KitchenConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return KitchenConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay KitchenConfig) KitchenConfig {
	merged := base

	if overlay.Settings.Title != "" {
		merged.Settings.Title = overlay.Settings.Title
	}
	if overlay.Settings.Operator != "" {
		merged.Settings.Operator = overlay.Settings.Operator
	}
	if overlay.Settings.DarkMode != nil {
		dark := *overlay.Settings.DarkMode
		merged.Settings.DarkMode = &dark
	}
	if overlay.Settings.NotificationTimeout > 0 {
		merged.Settings.NotificationTimeout = overlay.Settings.NotificationTimeout
	}
	if overlay.Settings.LowStockThreshold > 0 {
		merged.Settings.LowStockThreshold = overlay.Settings.LowStockThreshold
	}
	if overlay.Settings.InitialSection != "" {
		merged.Settings.InitialSection = overlay.Settings.InitialSection
	}

	merged.Fixtures = kitchen.Merge(base.Fixtures, overlay.Fixtures)
	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
