package view

import "kitchenctl/internal/tui/components"

func truncate(s string, width int) string {
	return components.TruncateString(s, width)
}
