package controller

import (
	"kitchenctl/internal/dashboard"
	"kitchenctl/internal/tui/model"
	"kitchenctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

const quittingMessage = "Closing the kitchen..."

// Update routes a Bubble Tea message to its handler.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		if m.InputFocused() && m.CurrentAppMode == model.ModeMainDashboard {
			return handleKeyMsgInputMode(m, msg)
		}
		return handleKeyMsgGlobal(m, msg)

	case model.NotificationExpiredMsg:
		return m, m.Dispatch(dashboard.DismissNotification{ID: msg.ID})

	case model.NewLogEntryMsg:
		model.AddLogEntry(m, msg.Entry)
		syncLogViewport(m)
		return m, model.ListenForLogEntriesCmd(m.LogChannel)
	}

	return updateFocusedInput(m, msg)
}

func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	syncLogViewport(m)
	return m, nil
}

// syncLogViewport keeps the scroll model in step with what the overlay shows.
func syncLogViewport(m *model.Model) {
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.Width, m.LogViewport.Height = view.LogViewportSize(m)
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	m.ActivityLogDirty = false
	if atBottom {
		m.LogViewport.GotoBottom()
	}
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	LogInfo(controllerSubsystem, "Quit requested")
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = quittingMessage
	return m, tea.Quit
}

// updateFocusedInput forwards non-key messages such as cursor blinks to the
// input that currently has focus.
func updateFocusedInput(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Focus {
	case model.FocusChatInput:
		m.ChatInput, cmd = m.ChatInput.Update(msg)
	case model.FocusQuantityEditor:
		m.QuantityInput, cmd = m.QuantityInput.Update(msg)
	}
	return m, cmd
}
