package view

import (
	"fmt"
	"strings"

	"kitchenctl/internal/dashboard"
	"kitchenctl/internal/kitchen"
	"kitchenctl/internal/tui/components"
	"kitchenctl/internal/tui/design"
	"kitchenctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	NotFoundText     = "Section not found"
	LowStockMarker   = "LOW STOCK"
	OrderActionsText = "[a] Accept  [x] Reject"

	orderRowActions = "[a] [x]"

	// column titles plus the rule under them
	tableHead = "\n"
)

// RenderSection renders the body of the active section into a width by
// height area. Sections taller than the area keep their controls in view.
func RenderSection(m *model.Model, theme design.Theme, width, height int) string {
	switch m.State.Section {
	case dashboard.SectionDashboard:
		return renderDashboard(m, theme, width)
	case dashboard.SectionOrders:
		return renderOrders(m, theme, height)
	case dashboard.SectionInventory:
		return renderInventory(m, theme, height)
	case dashboard.SectionMenu:
		return renderMenu(m, theme)
	case dashboard.SectionAnalytics:
		return renderAnalytics(m, theme, width)
	case dashboard.SectionEmployees:
		return renderEmployees(m, theme)
	case dashboard.SectionChat:
		return renderChat(m, theme, width, height)
	case dashboard.SectionSettings:
		return renderSettings(m, theme)
	default:
		return theme.Title.Render(NotFoundText)
	}
}

func renderDashboard(m *model.Model, theme design.Theme, width int) string {
	statsWidth := 24
	chartWidth := width - statsWidth - design.SpaceSM
	stacked := chartWidth < design.MinBodyWidth
	if stacked {
		chartWidth = width
		statsWidth = width
	}

	chartInner := chartWidth - theme.Card.GetHorizontalFrameSize()
	overview := components.NewCard("Sales Overview").
		WithContent(components.NewBarChart(m.State.Analytics, chartInner).Render(theme)).
		WithWidth(chartWidth).
		Render(theme)

	stats := components.NewCard("Quick Stats").
		WithContent(lipgloss.JoinVertical(lipgloss.Left,
			theme.StatValue.Render(fmt.Sprintf("$%d", m.State.TotalSales())),
			theme.Muted.Render("Total Sales"))).
		WithWidth(statsWidth).
		Render(theme)

	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, overview, stats)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, overview, strings.Repeat(" ", design.SpaceSM), stats)
}

func orderStatusStyle(theme design.Theme, status kitchen.OrderStatus) lipgloss.Style {
	switch status {
	case kitchen.OrderCompleted:
		return theme.Success
	case kitchen.OrderRejected:
		return theme.Error
	default:
		return theme.Warning
	}
}

// rowBudget is what is left of height for table rows once the other
// blocks of a section are drawn.
func rowBudget(height int, blocks ...string) int {
	for _, b := range blocks {
		height -= lipgloss.Height(b)
	}
	if height < 2 {
		return 2
	}
	return height
}

func renderOrders(m *model.Model, theme design.Theme, height int) string {
	table := components.NewTable(
		components.Column{Title: "Order ID", Width: 8},
		components.Column{Title: "Item", Width: 16},
		components.Column{Title: "Customer", Width: 14},
		components.Column{Title: "Status", Width: 10},
		components.Column{Title: "Actions", Width: 10},
	)
	table.Empty = "No orders"

	rows := make([]components.Row, 0, len(m.State.Orders))
	for _, o := range m.State.Orders {
		style := orderStatusStyle(theme, o.Status)
		rows = append(rows, components.Row{
			Cells: []string{fmt.Sprintf("%d", o.ID), o.Item, o.Customer, string(o.Status), orderRowActions},
			Style: &style,
		})
	}
	title := theme.Title.Render("Recent Orders")
	hint := theme.Muted.Render(OrderActionsText)
	table.WithRows(rows...).WithCursor(m.OrderCursor).
		WithMaxRows(rowBudget(height, title, tableHead, "", hint))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		table.Render(theme),
		"",
		hint)
}

func renderInventory(m *model.Model, theme design.Theme, height int) string {
	table := components.NewTable(
		components.Column{Title: "Item", Width: 18},
		components.Column{Title: "Quantity", Width: 12},
		components.Column{Title: "Unit", Width: 8},
		components.Column{Title: "", Width: 10},
	)
	table.Empty = "No inventory"

	rows := make([]components.Row, 0, len(m.State.Inventory))
	for _, item := range m.State.Inventory {
		row := components.Row{Cells: []string{item.Name, fmt.Sprintf("%d", item.Quantity), item.Unit, ""}}
		if dashboard.IsLowStock(item, m.LowStockThreshold) {
			low := theme.LowStock
			row.Style = &low
			row.Cells[3] = LowStockMarker
		}
		rows = append(rows, row)
	}
	footer := theme.Muted.Render(fmt.Sprintf("Rows below %d units are marked %s.", m.LowStockThreshold, LowStockMarker))
	if m.Focus == model.FocusQuantityEditor {
		if item, ok := m.State.FindInventoryItem(m.EditingItemID); ok {
			footer = theme.InputFocused.Render(
				theme.Accent.Render(fmt.Sprintf("New quantity for %s (%s): ", item.Name, item.Unit)) +
					m.QuantityInput.View())
		}
	}

	title := theme.Title.Render("Inventory")
	table.WithRows(rows...).WithCursor(m.InventoryCursor).
		WithMaxRows(rowBudget(height, title, tableHead, "", footer))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		table.Render(theme),
		"",
		footer)
}

func renderMenu(m *model.Model, theme design.Theme) string {
	table := components.NewTable(
		components.Column{Title: "Item", Width: 20},
		components.Column{Title: "Price", Width: 10},
	)
	table.Empty = "No menu items"

	rows := make([]components.Row, 0, len(m.State.Menu))
	for _, item := range m.State.Menu {
		rows = append(rows, components.Row{Cells: []string{item.Name, item.FormattedPrice()}})
	}
	table.WithRows(rows...)

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Menu Items"),
		table.Render(theme))
}

func renderAnalytics(m *model.Model, theme design.Theme, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Analytics"),
		theme.Subtitle.Render("Sales by month"),
		components.NewBarChart(m.State.Analytics, width).Render(theme))
}

func renderEmployees(m *model.Model, theme design.Theme) string {
	table := components.NewTable(
		components.Column{Title: "ID", Width: 4},
		components.Column{Title: "Name", Width: 20},
		components.Column{Title: "Role", Width: 12},
	)
	table.Empty = "No employees"

	rows := make([]components.Row, 0, len(m.State.Employees))
	for _, e := range m.State.Employees {
		rows = append(rows, components.Row{Cells: []string{fmt.Sprintf("%d", e.ID), e.Name, e.Role}})
	}
	table.WithRows(rows...)

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Employees"),
		table.Render(theme))
}

// ChatLine formats a chat message for display and for the clipboard.
func ChatLine(msg kitchen.ChatMessage) string {
	return fmt.Sprintf("%s: %s", msg.Sender, msg.Text)
}

func renderChat(m *model.Model, theme design.Theme, width, height int) string {
	inputStyle := theme.Input
	if m.Focus == model.FocusChatInput {
		inputStyle = theme.InputFocused
	}
	inputWidth := width - inputStyle.GetHorizontalBorderSize()
	if inputWidth < design.SpaceLG*2 {
		inputWidth = design.SpaceLG * 2
	}

	title := theme.Title.Render("Admin to Employee Chat")
	input := inputStyle.Width(inputWidth).Render(m.ChatInput.View())
	hint := theme.Muted.Render("[enter] Send")

	room := height - lipgloss.Height(title) - 1 - lipgloss.Height(input) - lipgloss.Height(hint)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		renderTranscript(m.State.Chat, theme, width, room),
		"",
		input,
		hint)
}

// renderTranscript draws the newest messages that fit in room lines, one
// line per message.
func renderTranscript(chat []kitchen.ChatMessage, theme design.Theme, width, room int) string {
	if len(chat) == 0 {
		return theme.Muted.Render("No messages yet")
	}
	if room < 1 {
		room = 1
	}

	var lines []string
	if len(chat) > room {
		shown := room - 1
		if shown < 1 {
			shown = 1
		} else {
			lines = append(lines, theme.Muted.Render(fmt.Sprintf("… %d earlier messages", len(chat)-shown)))
		}
		chat = chat[len(chat)-shown:]
	}
	for _, msg := range chat {
		lines = append(lines,
			theme.Accent.Bold(true).Render(msg.Sender+":")+" "+
				theme.Text.Render(components.TruncateString(msg.Text, width-lipgloss.Width(msg.Sender)-2)))
	}
	return strings.Join(lines, "\n")
}

// DarkModeSwitch renders the settings toggle.
func DarkModeSwitch(on bool) string {
	if on {
		return "[x] Dark Mode"
	}
	return "[ ] Dark Mode"
}

func renderSettings(m *model.Model, theme design.Theme) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Settings"),
		theme.Accent.Render(DarkModeSwitch(m.State.DarkMode)))
}
