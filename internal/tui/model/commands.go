package model

import (
	"time"

	"kitchenctl/internal/dashboard"
	"kitchenctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// Dispatch reduces a against the current state and turns the resulting
// effects into commands.
func (m *Model) Dispatch(a dashboard.Action) tea.Cmd {
	next, effects := dashboard.Reduce(m.Env, m.State, a)
	m.State = next
	if m.DebugMode {
		logging.Debug("Dispatch", "%T %+v", a, a)
	}
	return EffectsCmd(effects)
}

// Notify raises a transient notification.
func (m *Model) Notify(text string, kind dashboard.NotificationKind) tea.Cmd {
	return m.Dispatch(dashboard.Notify{Text: text, Kind: kind})
}

// EffectsCmd converts reducer effects into bubbletea commands.
func EffectsCmd(effects []dashboard.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case dashboard.ScheduleDismiss:
			cmds = append(cmds, dismissAfter(e))
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func dismissAfter(e dashboard.ScheduleDismiss) tea.Cmd {
	id := e.ID
	return tea.Tick(e.After, func(time.Time) tea.Msg {
		return NotificationExpiredMsg{ID: id}
	})
}

// ListenForLogEntriesCmd waits for the next entry on ch. It returns nil
// once the channel is closed, which stops the listen loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
