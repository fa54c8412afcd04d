package controller

import (
	"kitchenctl/internal/tui/model"
	"kitchenctl/pkg/logging"
)

const (
	controllerSubsystem = "Controller"
	keySubsystem        = "KeyHandler"
)

// LogInfo logs an informational message.
func LogInfo(subsystem string, format string, a ...interface{}) {
	logging.Info(subsystem, format, a...)
}

// LogDebug logs a debug-level message when the model is in debug mode.
func LogDebug(m *model.Model, subsystem string, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}

// LogError logs an error message.
func LogError(subsystem string, err error, format string, a ...interface{}) {
	logging.Error(subsystem, err, format, a...)
}
