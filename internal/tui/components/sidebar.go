package components

import (
	"fmt"
	"strings"

	"kitchenctl/internal/tui/design"
)

// Sidebar is the vertical section navigation.
type Sidebar struct {
	Items  []string
	Active string
	Width  int
	Height int
}

// NewSidebar creates a sidebar listing items.
func NewSidebar(items []string, active string) *Sidebar {
	return &Sidebar{
		Items:  items,
		Active: active,
		Width:  design.SidebarWidth,
	}
}

// WithDimensions sets the sidebar size
func (s *Sidebar) WithDimensions(width, height int) *Sidebar {
	s.Width = width
	s.Height = height
	return s
}

// Render returns the styled sidebar. Entries are numbered from 1 so the
// numbers double as shortcuts.
func (s *Sidebar) Render(theme design.Theme) string {
	width := s.Width
	if width < design.SpaceLG*2 {
		width = design.SpaceLG * 2
	}
	inner := width - theme.SidebarStyle.GetHorizontalFrameSize()
	itemWidth := inner - theme.SidebarItem.GetHorizontalFrameSize()

	lines := make([]string, 0, len(s.Items))
	for i, item := range s.Items {
		marker := " "
		style := theme.SidebarItem
		if item == s.Active {
			marker = "▸"
			style = theme.SidebarActiveItem
		}
		label := fmt.Sprintf("%s %d %s", marker, i+1, item)
		lines = append(lines, style.Width(inner).Render(FitCell(label, itemWidth)))
	}

	style := theme.SidebarStyle.Width(width)
	if s.Height > 0 {
		style = style.Height(s.Height - theme.SidebarStyle.GetVerticalFrameSize())
	}
	return style.Render(strings.Join(lines, "\n"))
}
