package view

import (
	"fmt"

	"kitchenctl/internal/dashboard"
	"kitchenctl/internal/tui/components"
	"kitchenctl/internal/tui/design"
	"kitchenctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	minHeightForFooter = 12
	copyrightHolder    = "THE-NINE-TAILS-KITCHEN"
)

// Render renders the whole screen for the current model.
func Render(m *model.Model) string {
	theme := design.NewTheme(m.State.DarkMode)

	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return theme.Text.Render(m.QuittingMessage)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m, theme)
	case model.ModeLogOverlay:
		return renderLogOverlay(m, theme)
	default:
		return renderMainDashboard(m, theme)
	}
}

func dimensions(m *model.Model) (int, int) {
	width, height := m.Width, m.Height
	if width <= 0 {
		width = model.DefaultWidth
	}
	if height <= 0 {
		height = model.DefaultHeight
	}
	return width, height
}

func renderMainDashboard(m *model.Model, theme design.Theme) string {
	width, height := dimensions(m)

	header := components.NewHeader(m.Title).WithWidth(width).Render(theme)
	statusBar := renderStatusBar(m, theme, width)
	footer := ""
	if height >= minHeightForFooter {
		footer = components.NewFooter(FooterText(m), width).Render(theme)
	}

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if footer != "" {
		bodyHeight -= lipgloss.Height(footer)
	}
	if bodyHeight < design.MinPanelHeight {
		bodyHeight = design.MinPanelHeight
	}

	sidebarWidth := design.SidebarWidth
	if width-sidebarWidth < design.MinBodyWidth {
		sidebarWidth = width - design.MinBodyWidth
		if sidebarWidth < design.SpaceLG*2 {
			sidebarWidth = design.SpaceLG * 2
		}
	}

	names := make([]string, 0, len(dashboard.Sections()))
	for _, s := range dashboard.Sections() {
		names = append(names, string(s))
	}
	sidebar := components.NewSidebar(names, string(m.State.Section)).
		WithDimensions(sidebarWidth, bodyHeight).
		Render(theme)

	bodyWidth := width - sidebarWidth
	bodyInner := bodyWidth - theme.Body.GetHorizontalFrameSize()
	body := theme.Body.
		Width(bodyWidth).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(RenderSection(m, theme, bodyInner, bodyHeight-theme.Body.GetVerticalFrameSize()))

	middle := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body)

	parts := []string{header, middle, statusBar}
	if footer != "" {
		parts = append(parts, footer)
	}
	return theme.App.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// FooterText is the copyright line for the model's current year.
func FooterText(m *model.Model) string {
	return fmt.Sprintf("© %d %s. All Rights Reserved.", m.Now().Year(), copyrightHolder)
}

func renderStatusBar(m *model.Model, theme design.Theme, width int) string {
	return components.NewStatusBar(width).
		WithLeftText(sectionHint(m)).
		WithRightText("tab: next · ?: help · q: quit").
		WithNotification(m.State.Notification).
		Render(theme)
}

func sectionHint(m *model.Model) string {
	switch m.Focus {
	case model.FocusChatInput:
		return "enter: send · esc: stop typing"
	case model.FocusQuantityEditor:
		return "enter: save quantity · esc: cancel"
	}
	switch m.State.Section {
	case dashboard.SectionOrders:
		return "↑/↓: select · a: accept · x: reject"
	case dashboard.SectionInventory:
		return "↑/↓: select · e: edit quantity"
	case dashboard.SectionChat:
		return "i: type message · y: copy transcript"
	case dashboard.SectionSettings:
		return "space: toggle dark mode"
	default:
		return "1-8: jump to section"
	}
}
