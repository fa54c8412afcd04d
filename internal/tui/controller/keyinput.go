package controller

import (
	"fmt"

	"kitchenctl/internal/dashboard"
	"kitchenctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgInputMode processes key presses while a text input has focus.
// Every key except enter and esc is typed into the input.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch m.Focus {
	case model.FocusChatInput:
		return handleChatInputKey(m, keyMsg)
	case model.FocusQuantityEditor:
		return handleQuantityEditorKey(m, keyMsg)
	}
	return m, nil
}

func handleChatInputKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Enter):
		cmd := m.Dispatch(dashboard.SendChatMessage{Text: m.ChatInput.Value()})
		m.ChatInput.SetValue(m.State.ChatDraft)
		return m, cmd
	case key.Matches(keyMsg, m.Keys.Esc):
		m.ChatInput.Blur()
		m.Focus = model.FocusNone
		return m, nil
	}

	var cmd tea.Cmd
	m.ChatInput, cmd = m.ChatInput.Update(keyMsg)
	return m, tea.Batch(cmd, m.Dispatch(dashboard.SetChatDraft{Text: m.ChatInput.Value()}))
}

func handleQuantityEditorKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Enter):
		return commitQuantity(m)
	case key.Matches(keyMsg, m.Keys.Esc):
		closeQuantityEditor(m)
		return m, nil
	}

	var cmd tea.Cmd
	m.QuantityInput, cmd = m.QuantityInput.Update(keyMsg)
	return m, cmd
}

// commitQuantity stores the edited quantity. Invalid input keeps the editor
// open and leaves the inventory untouched.
func commitQuantity(m *model.Model) (*model.Model, tea.Cmd) {
	item, ok := m.State.FindInventoryItem(m.EditingItemID)
	if !ok {
		closeQuantityEditor(m)
		return m, nil
	}

	quantity, err := dashboard.ParseQuantity(m.QuantityInput.Value())
	if err != nil {
		LogDebug(m, keySubsystem, "Rejected quantity for %s: %v", item.Name, err)
		return m, m.Notify(err.Error(), dashboard.NotifyError)
	}

	LogInfo(keySubsystem, "Setting %s to %d %s", item.Name, quantity, item.Unit)
	dispatched := m.Dispatch(dashboard.SetInventoryQuantity{ID: item.ID, Quantity: quantity})
	closeQuantityEditor(m)

	updated, _ := m.State.FindInventoryItem(item.ID)
	if dashboard.IsLowStock(updated, m.LowStockThreshold) {
		return m, tea.Batch(dispatched,
			m.Notify(fmt.Sprintf("%s is low on stock (%d %s)", updated.Name, updated.Quantity, updated.Unit), dashboard.NotifyWarning))
	}
	return m, tea.Batch(dispatched,
		m.Notify(fmt.Sprintf("Updated %s to %d %s", updated.Name, updated.Quantity, updated.Unit), dashboard.NotifySuccess))
}

func closeQuantityEditor(m *model.Model) {
	m.QuantityInput.Blur()
	m.QuantityInput.Reset()
	m.EditingItemID = 0
	m.Focus = model.FocusNone
}
