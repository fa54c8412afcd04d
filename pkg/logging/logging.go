package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogEntry is the structured log entry passed to the TUI.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

// String formats the entry the way the activity log displays it.
func (e LogEntry) String() string {
	line := fmt.Sprintf("%s [%s] [%s] %s",
		e.Timestamp.Format("15:04:05.000"),
		e.Level.String(),
		e.Subsystem,
		e.Message)
	if e.Err != nil {
		line = fmt.Sprintf("%s -- Error: %v", line, e.Err)
	}
	return line
}

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	tuiLogChannel chan LogEntry
	filterLevel   = LevelInfo
)

const tuiChannelBufferSize = 2048

// InitForTUI initializes the logging system for TUI mode.
// Entries at or above level are delivered on the returned channel; when the
// buffer is full new entries are dropped rather than blocking the caller.
func InitForTUI(level LogLevel) <-chan LogEntry {
	mu.Lock()
	defer mu.Unlock()

	filterLevel = level
	tuiLogChannel = make(chan LogEntry, tuiChannelBufferSize)
	defaultLogger = nil
	return tuiLogChannel
}

// InitForCLI initializes the logging system for CLI mode.
// Logs are written as slog text records to output.
func InitForCLI(level LogLevel, output io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	filterLevel = level
	tuiLogChannel = nil
	defaultLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level.SlogLevel(),
	}))
}

// CloseTUIChannel closes the TUI log channel and falls back to stderr output.
// Should be called on application shutdown.
func CloseTUIChannel() {
	mu.Lock()
	defer mu.Unlock()

	if tuiLogChannel != nil {
		close(tuiLogChannel)
		tuiLogChannel = nil
	}
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	mu.RLock()
	defer mu.RUnlock()

	if level < filterLevel {
		return
	}

	if tuiLogChannel != nil {
		entry := LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		select {
		case tuiLogChannel <- entry:
		default:
		}
		return
	}

	logger := defaultLogger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}
