package model

import (
	"time"

	"kitchenctl/internal/config"
	"kitchenctl/internal/dashboard"
	"kitchenctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options are command-line overrides applied on top of the configuration.
type Options struct {
	DebugMode bool
	Section   string // empty keeps the configured initial section
	Light     bool
}

// InitializeModel creates the TUI model from the merged configuration.
func InitializeModel(cfg config.KitchenConfig, opts Options, logChannel <-chan logging.LogEntry) *Model {
	section := cfg.Settings.InitialSection
	if opts.Section != "" {
		section = opts.Section
	}
	dark := cfg.Settings.IsDarkMode() && !opts.Light

	state := dashboard.New(cfg.Fixtures, dashboard.Options{
		Section:  dashboard.Section(section),
		DarkMode: dark,
		Operator: cfg.Settings.Operator,
	})

	env := dashboard.DefaultEnv()
	if cfg.Settings.NotificationTimeout > 0 {
		env.NotificationTimeout = cfg.Settings.NotificationTimeout
	}

	threshold := cfg.Settings.LowStockThreshold
	if threshold <= 0 {
		threshold = dashboard.DefaultLowStockThreshold
	}

	title := cfg.Settings.Title
	if title == "" {
		title = config.DefaultTitle
	}

	chatInput := textinput.New()
	chatInput.Placeholder = "Type your message"
	chatInput.CharLimit = 500
	chatInput.Width = 50

	quantityInput := textinput.New()
	quantityInput.Placeholder = "quantity"
	quantityInput.CharLimit = 9
	quantityInput.Width = 10

	return &Model{
		State:             state,
		Env:               env,
		Title:             title,
		LowStockThreshold: threshold,
		CurrentAppMode:    ModeMainDashboard,
		LastAppMode:       ModeMainDashboard,
		DebugMode:         opts.DebugMode,
		Clock:             time.Now,
		ChatInput:         chatInput,
		QuantityInput:     quantityInput,
		ActivityLog:       []string{},
		LogViewport:       viewport.New(DefaultWidth, DefaultHeight-10),
		Keys:              DefaultKeyMap(),
		Help:              help.New(),
		LogChannel:        logChannel,
	}
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm/send"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Accept: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "accept order"),
		),
		Reject: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reject order"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit quantity"),
		),
		Focus: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "type message"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle setting"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark mode"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy chat/log"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "activity log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Init implements the tea.Model interface
func (m *Model) Init() tea.Cmd {
	return ListenForLogEntriesCmd(m.LogChannel)
}
