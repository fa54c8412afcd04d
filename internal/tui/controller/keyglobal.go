package controller

import (
	"fmt"
	"strconv"
	"strings"

	"kitchenctl/internal/dashboard"
	"kitchenctl/internal/tui/model"
	"kitchenctl/internal/tui/view"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses while no text input has focus.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMainDashboard
			return m, nil
		case key.Matches(keyMsg, m.Keys.Copy):
			return m, copyToClipboard(m, strings.Join(m.ActivityLog, "\n"), "Logs")
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.Help), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMainDashboard
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		syncLogViewport(m)
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDark):
		return m, m.Dispatch(dashboard.ToggleDarkMode{})
	case key.Matches(keyMsg, m.Keys.NextSection):
		return m, selectSection(m, stepSection(m.State.Section, 1))
	case key.Matches(keyMsg, m.Keys.PrevSection):
		return m, selectSection(m, stepSection(m.State.Section, -1))
	}

	if s, ok := sectionForDigit(keyMsg.String()); ok {
		return m, selectSection(m, s)
	}

	switch m.State.Section {
	case dashboard.SectionOrders:
		return handleOrdersKey(m, keyMsg)
	case dashboard.SectionInventory:
		return handleInventoryKey(m, keyMsg)
	case dashboard.SectionChat:
		return handleChatKey(m, keyMsg)
	case dashboard.SectionSettings:
		if key.Matches(keyMsg, m.Keys.Toggle) || key.Matches(keyMsg, m.Keys.Enter) {
			return m, m.Dispatch(dashboard.ToggleDarkMode{})
		}
	}
	return m, nil
}

func selectSection(m *model.Model, s dashboard.Section) tea.Cmd {
	LogDebug(m, keySubsystem, "Selecting section %s", s)
	return m.Dispatch(dashboard.SelectSection{Name: s})
}

// stepSection moves delta places through the sidebar, wrapping at both ends.
// An unknown current section steps from the start of the list.
func stepSection(current dashboard.Section, delta int) dashboard.Section {
	sections := dashboard.Sections()
	idx := -1
	for i, s := range sections {
		if s == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta > 0 {
			return sections[0]
		}
		return sections[len(sections)-1]
	}
	n := len(sections)
	return sections[((idx+delta)%n+n)%n]
}

func sectionForDigit(k string) (dashboard.Section, bool) {
	n, err := strconv.Atoi(k)
	if err != nil || len(k) != 1 {
		return "", false
	}
	sections := dashboard.Sections()
	if n < 1 || n > len(sections) {
		return "", false
	}
	return sections[n-1], true
}

func moveCursor(cursor, delta, length int) int {
	if length == 0 {
		return 0
	}
	cursor += delta
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

func handleOrdersKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	orders := m.State.Orders
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		m.OrderCursor = moveCursor(m.OrderCursor, -1, len(orders))
	case key.Matches(keyMsg, m.Keys.Down):
		m.OrderCursor = moveCursor(m.OrderCursor, 1, len(orders))
	case key.Matches(keyMsg, m.Keys.Accept):
		if len(orders) == 0 {
			return m, nil
		}
		order := orders[moveCursor(m.OrderCursor, 0, len(orders))]
		LogInfo(keySubsystem, "Accepting order %d", order.ID)
		return m, m.Dispatch(dashboard.AcceptOrder{ID: order.ID})
	case key.Matches(keyMsg, m.Keys.Reject):
		if len(orders) == 0 {
			return m, nil
		}
		order := orders[moveCursor(m.OrderCursor, 0, len(orders))]
		LogInfo(keySubsystem, "Rejecting order %d", order.ID)
		return m, m.Dispatch(dashboard.RejectOrder{ID: order.ID})
	}
	return m, nil
}

func handleInventoryKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	items := m.State.Inventory
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		m.InventoryCursor = moveCursor(m.InventoryCursor, -1, len(items))
	case key.Matches(keyMsg, m.Keys.Down):
		m.InventoryCursor = moveCursor(m.InventoryCursor, 1, len(items))
	case key.Matches(keyMsg, m.Keys.Edit), key.Matches(keyMsg, m.Keys.Enter):
		if len(items) == 0 {
			return m, nil
		}
		item := items[moveCursor(m.InventoryCursor, 0, len(items))]
		m.EditingItemID = item.ID
		m.Focus = model.FocusQuantityEditor
		m.QuantityInput.SetValue(strconv.Itoa(item.Quantity))
		m.QuantityInput.CursorEnd()
		m.QuantityInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func handleChatKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Focus), key.Matches(keyMsg, m.Keys.Enter):
		m.Focus = model.FocusChatInput
		m.ChatInput.SetValue(m.State.ChatDraft)
		m.ChatInput.CursorEnd()
		m.ChatInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, m.Keys.Copy):
		if len(m.State.Chat) == 0 {
			return m, m.Notify("No messages to copy", dashboard.NotifyWarning)
		}
		lines := make([]string, 0, len(m.State.Chat))
		for _, msg := range m.State.Chat {
			lines = append(lines, view.ChatLine(msg))
		}
		return m, copyToClipboard(m, strings.Join(lines, "\n"), "Chat transcript")
	}
	return m, nil
}

func copyToClipboard(m *model.Model, content, what string) tea.Cmd {
	if err := clipboardWriteAll(content); err != nil {
		LogError(keySubsystem, err, "Failed to copy %s", strings.ToLower(what))
		return m.Notify(fmt.Sprintf("Copy %s failed", strings.ToLower(what)), dashboard.NotifyError)
	}
	return m.Notify(what+" copied to clipboard", dashboard.NotifySuccess)
}
