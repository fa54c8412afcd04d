package controller

import (
	"errors"
	"testing"
	"time"

	"kitchenctl/internal/config"
	"kitchenctl/internal/dashboard"
	"kitchenctl/internal/kitchen"
	"kitchenctl/internal/tui/model"
	"kitchenctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.InitializeModel(config.GetDefaultConfig(), model.Options{}, nil)
	m.Width, m.Height = 120, 40
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model.Model, msgs ...tea.Msg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = Update(msg, m)
	}
	return m, cmd
}

func typeText(m *model.Model, text string) *model.Model {
	for _, r := range text {
		m, _ = Update(runes(string(r)), m)
	}
	return m
}

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(s string) error {
		copied = s
		return err
	}
	t.Cleanup(func() { clipboardWriteAll = orig })
	return &copied
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)
	m, cmd := Update(tea.WindowSizeMsg{Width: 90, Height: 25}, m)

	assert.Nil(t, cmd)
	assert.Equal(t, 90, m.Width)
	assert.Equal(t, 25, m.Height)
	assert.Greater(t, m.LogViewport.Height, 0)
}

func TestUpdate_SectionNavigation(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, dashboard.SectionOrders, m.State.Section)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, dashboard.SectionSettings, m.State.Section, "shift+tab wraps to the last section")

	m, _ = press(m, runes("7"))
	assert.Equal(t, dashboard.SectionChat, m.State.Section)

	m, _ = press(m, runes("9"))
	assert.Equal(t, dashboard.SectionChat, m.State.Section, "9 is not a section")
}

func TestStepSection_UnknownCurrent(t *testing.T) {
	assert.Equal(t, dashboard.SectionDashboard, stepSection("Reservations", 1))
	assert.Equal(t, dashboard.SectionSettings, stepSection("Reservations", -1))
}

func TestUpdate_AcceptAndRejectOrders(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, runes("2"), runes("a"))
	assert.Equal(t, kitchen.OrderCompleted, m.State.Orders[0].Status)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}, runes("x"))
	assert.Equal(t, kitchen.OrderRejected, m.State.Orders[1].Status)
	assert.Equal(t, kitchen.OrderCompleted, m.State.Orders[2].Status, "untouched order keeps its status")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.OrderCursor, "cursor stops at the last order")
}

func TestUpdate_InventoryEditCommit(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, runes("3"), tea.KeyMsg{Type: tea.KeyDown}, runes("e"))
	require.Equal(t, model.FocusQuantityEditor, m.Focus)
	require.Equal(t, 2, m.EditingItemID)
	assert.Equal(t, "15", m.QuantityInput.Value())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(m, "5")
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd)
	assert.Equal(t, model.FocusNone, m.Focus)
	tofu, ok := m.State.FindInventoryItem(2)
	require.True(t, ok)
	assert.Equal(t, 5, tofu.Quantity)
	require.NotNil(t, m.State.Notification)
	assert.Equal(t, dashboard.NotifyWarning, m.State.Notification.Kind)
	assert.Contains(t, m.State.Notification.Text, "Tofu is low on stock")
}

func TestUpdate_InventoryEditRejectsInvalidInput(t *testing.T) {
	for _, input := range []string{"abc", "-3", "1.5"} {
		t.Run(input, func(t *testing.T) {
			m := newTestModel(t)
			m, _ = press(m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
			m.QuantityInput.SetValue("")
			m = typeText(m, input)
			m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})

			assert.Equal(t, model.FocusQuantityEditor, m.Focus, "editor stays open")
			item, _ := m.State.FindInventoryItem(1)
			assert.Equal(t, 100, item.Quantity)
			require.NotNil(t, m.State.Notification)
			assert.Equal(t, dashboard.NotifyError, m.State.Notification.Kind)
		})
	}
}

func TestUpdate_InventoryEditCancel(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, runes("3"), runes("e"))
	m = typeText(m, "9")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, model.FocusNone, m.Focus)
	item, _ := m.State.FindInventoryItem(1)
	assert.Equal(t, 100, item.Quantity)
}

func TestUpdate_ChatSend(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, runes("7"), runes("i"))
	require.Equal(t, model.FocusChatInput, m.Focus)

	m = typeText(m, "q? Hi")
	assert.Equal(t, "q? Hi", m.State.ChatDraft, "keys are typed, not interpreted")
	assert.NotEqual(t, model.ModeQuitting, m.CurrentAppMode)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Len(t, m.State.Chat, 1)
	assert.Equal(t, "Admin", m.State.Chat[0].Sender)
	assert.Equal(t, "q? Hi", m.State.Chat[0].Text)
	assert.Empty(t, m.State.ChatDraft)
	assert.Empty(t, m.ChatInput.Value())
	assert.Equal(t, dashboard.ChatSentMessage, m.State.Notification.Text)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, m.State.Chat, 1, "empty draft is not sent")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.FocusNone, m.Focus)
}

func TestUpdate_ChatCopy(t *testing.T) {
	copied := stubClipboard(t, nil)
	m := newTestModel(t)
	m, _ = press(m, runes("7"), runes("y"))
	assert.Equal(t, dashboard.NotifyWarning, m.State.Notification.Kind)
	assert.Empty(t, *copied)

	m.Dispatch(dashboard.SendChatMessage{Text: "one"})
	m.Dispatch(dashboard.SendChatMessage{Text: "two"})
	m, _ = press(m, runes("y"))
	assert.Equal(t, "Admin: one\nAdmin: two", *copied)
	assert.Equal(t, dashboard.NotifySuccess, m.State.Notification.Kind)
}

func TestUpdate_ClipboardFailure(t *testing.T) {
	stubClipboard(t, errors.New("no clipboard"))
	m := newTestModel(t)
	m, _ = press(m, runes("L"), runes("y"))

	require.NotNil(t, m.State.Notification)
	assert.Equal(t, dashboard.NotifyError, m.State.Notification.Kind)
}

func TestUpdate_DarkModeToggles(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, runes("D"))
	assert.False(t, m.State.DarkMode)

	m, _ = press(m, runes("8"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.State.DarkMode)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.State.DarkMode)
}

func TestUpdate_Overlays(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, runes("?"))
	assert.Equal(t, model.ModeHelpOverlay, m.CurrentAppMode)

	m, _ = press(m, runes("2"))
	assert.Equal(t, dashboard.SectionDashboard, m.State.Section, "help overlay swallows keys")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModeMainDashboard, m.CurrentAppMode)

	m, _ = press(m, runes("L"))
	assert.Equal(t, model.ModeLogOverlay, m.CurrentAppMode)
	m, _ = press(m, runes("L"))
	assert.Equal(t, model.ModeMainDashboard, m.CurrentAppMode)
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(m, runes("q"))
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = newTestModel(t)
	m, _ = press(m, runes("7"), runes("i"))
	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode, "ctrl+c quits even while typing")
	require.NotNil(t, cmd)
}

func TestUpdate_NotificationExpiry(t *testing.T) {
	m := newTestModel(t)
	m.Notify("first", dashboard.NotifyInfo)
	first := m.State.Notification.ID
	m.Notify("second", dashboard.NotifyInfo)

	m, _ = Update(model.NotificationExpiredMsg{ID: first}, m)
	require.NotNil(t, m.State.Notification, "stale expiry keeps the newer notification")
	assert.Equal(t, "second", m.State.Notification.Text)

	m, _ = Update(model.NotificationExpiredMsg{ID: m.State.Notification.ID}, m)
	assert.Nil(t, m.State.Notification)
}

func TestUpdate_NewLogEntry(t *testing.T) {
	ch := make(chan logging.LogEntry, 1)
	m := newTestModel(t)
	m.LogChannel = ch

	entry := logging.LogEntry{Timestamp: time.Now(), Level: logging.LevelInfo, Subsystem: "Test", Message: "stocked"}
	m, cmd := Update(model.NewLogEntryMsg{Entry: entry}, m)

	require.Len(t, m.ActivityLog, 1)
	assert.Contains(t, m.ActivityLog[0], "stocked")
	assert.False(t, m.ActivityLogDirty)
	require.NotNil(t, cmd, "keeps listening")

	ch <- entry
	assert.IsType(t, model.NewLogEntryMsg{}, cmd())
}
