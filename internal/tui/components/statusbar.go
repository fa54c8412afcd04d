package components

import (
	"strings"

	"kitchenctl/internal/dashboard"
	"kitchenctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status bar. A notification, when present,
// replaces the left/right hint text.
type StatusBar struct {
	Width       int
	Message     string
	MessageKind dashboard.NotificationKind
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithNotification shows n if it is not nil
func (s *StatusBar) WithNotification(n *dashboard.Notification) *StatusBar {
	if n == nil {
		return s
	}
	s.Message = n.Text
	s.MessageKind = n.Kind
	s.ShowMessage = true
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render(theme design.Theme) string {
	style := s.style(theme)
	avail := s.Width - style.GetHorizontalFrameSize()

	var content string
	if s.ShowMessage && s.Message != "" {
		content = TruncateString(s.Message, avail)
	} else if s.LeftText != "" && s.RightText != "" {
		padding := avail - lipgloss.Width(s.LeftText) - lipgloss.Width(s.RightText)
		if padding > 0 {
			content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
		} else {
			content = TruncateString(s.LeftText, avail)
		}
	} else {
		content = TruncateString(s.LeftText+s.RightText, avail)
	}

	width := s.Width
	if width < 1 {
		width = 1
	}
	return style.Width(width).MaxWidth(width).Render(content)
}

func (s *StatusBar) style(theme design.Theme) lipgloss.Style {
	if !s.ShowMessage {
		return theme.StatusBar
	}
	switch s.MessageKind {
	case dashboard.NotifySuccess:
		return theme.StatusBarSuccess
	case dashboard.NotifyError:
		return theme.StatusBarError
	case dashboard.NotifyWarning:
		return theme.StatusBarWarning
	default:
		return theme.StatusBarInfo
	}
}
