package view

import (
	"strings"

	"kitchenctl/internal/tui/design"
	"kitchenctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// title and hint lines around the log viewport
const logOverlayChrome = 3

func renderHelpOverlay(m *model.Model, theme design.Theme) string {
	width, height := dimensions(m)

	h := m.Help
	h.ShowAll = true
	h.Width = width - theme.Overlay.GetHorizontalFrameSize()

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.OverlayTitle.Render("KEYBOARD SHORTCUTS"),
		h.View(m.Keys),
		"",
		theme.Muted.Render("1-8 jump to a section · esc or ? to close"))

	return design.CenterVertical(height, design.CenterHorizontal(width, theme.Overlay.Render(content)))
}

func renderLogOverlay(m *model.Model, theme design.Theme) string {
	width, height := dimensions(m)

	vp := m.LogViewport
	vp.Width, vp.Height = LogViewportSize(m)
	vp.SetContent(PrepareLogContent(m.ActivityLog, vp.Width))

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.OverlayTitle.Render("ACTIVITY LOG"),
		vp.View(),
		theme.Muted.Render("↑/↓ scroll · y copy · esc or L to close"))

	return design.CenterVertical(height, design.CenterHorizontal(width, theme.Overlay.Render(content)))
}

// LogViewportSize is the scrollable area of the log overlay for the
// model's terminal size.
func LogViewportSize(m *model.Model) (int, int) {
	width, height := dimensions(m)
	frame := design.NewTheme(m.State.DarkMode).Overlay
	w := width - frame.GetHorizontalFrameSize()
	h := height - frame.GetVerticalFrameSize() - logOverlayChrome
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// PrepareLogContent truncates each line to maxWidth cells.
func PrepareLogContent(lines []string, maxWidth int) string {
	if len(lines) == 0 {
		return "No activity yet."
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if maxWidth > 0 && lipgloss.Width(line) > maxWidth {
			line = truncate(line, maxWidth)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}
