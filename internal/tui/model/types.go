package model

import (
	"time"

	"kitchenctl/internal/dashboard"
	"kitchenctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMainDashboard AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMainDashboard:
		return "MainDashboard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// InputFocus names the text input currently receiving keystrokes.
type InputFocus int

const (
	FocusNone InputFocus = iota
	FocusChatInput
	FocusQuantityEditor
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	DefaultWidth        = 100
	DefaultHeight       = 30
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Enter       key.Binding
	Esc         key.Binding
	Accept      key.Binding
	Reject      key.Binding
	Edit        key.Binding
	Focus       key.Binding
	Toggle      key.Binding
	ToggleDark  key.Binding
	Copy        key.Binding
	ToggleLog   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.Up, k.Down},
		{k.Accept, k.Reject, k.Edit, k.Focus, k.Enter, k.Esc, k.Toggle},
		{k.ToggleDark, k.Copy, k.ToggleLog, k.Help, k.Quit},
	}
}

// Model represents the state of the TUI application. Domain data lives in
// State and only changes through Dispatch; everything else is widget state.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	State dashboard.State
	Env   dashboard.Env

	// Presentation settings
	Title             string
	LowStockThreshold int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	QuittingMessage string
	DebugMode       bool
	Clock           func() time.Time

	// Section widgets
	Focus           InputFocus
	OrderCursor     int
	InventoryCursor int
	EditingItemID   int
	ChatInput       textinput.Model
	QuantityInput   textinput.Model

	// UI State & Output
	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model
	Keys             KeyMap
	Help             help.Model

	// Logging
	LogChannel <-chan logging.LogEntry
}

// Now returns the model's clock reading.
func (m *Model) Now() time.Time {
	if m.Clock == nil {
		return time.Now()
	}
	return m.Clock()
}

// InputFocused reports whether a text input is capturing keystrokes.
func (m *Model) InputFocused() bool {
	return m.Focus != FocusNone
}
