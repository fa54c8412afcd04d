package model

import (
	"kitchenctl/pkg/logging"
)

// AddRawLineToActivityLog appends a line, keeping at most
// MaxActivityLogLines.
func AddRawLineToActivityLog(m *Model, line string) {
	m.ActivityLog = append(m.ActivityLog, line)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// AddLogEntry records entry unless it is below Info and debug mode is off.
func AddLogEntry(m *Model, entry logging.LogEntry) {
	if entry.Level < logging.LevelInfo && !m.DebugMode {
		return
	}
	AddRawLineToActivityLog(m, entry.String())
}
