package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestInitForCLI_WritesTextRecords(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("Test", "hidden %d", 1)
	Info("Test", "visible %d", 2)
	Error("Test", errors.New("boom"), "failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "visible 2")
	assert.Contains(t, out, "subsystem=Test")
	assert.Contains(t, out, "error=boom")
}

func TestInitForTUI_DeliversEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("Dashboard", "filtered")
	Warn("Dashboard", "low stock on %s", "Tofu")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "Dashboard", entry.Subsystem)
		assert.Equal(t, "low stock on Tofu", entry.Message)
	case <-time.After(time.Second):
		t.Fatal("expected a log entry on the TUI channel")
	}

	select {
	case entry := <-ch:
		t.Fatalf("unexpected extra entry: %v", entry)
	default:
	}
}

func TestLogEntryString(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "Clipboard",
		Message:   "copy failed",
		Err:       errors.New("no display"),
	}
	line := entry.String()
	require.True(t, strings.HasPrefix(line, "12:30:00.000"))
	assert.Contains(t, line, "[ERROR] [Clipboard] copy failed -- Error: no display")
}
