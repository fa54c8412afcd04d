package components

import (
	"kitchenctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Card is a bordered panel with a title line.
type Card struct {
	Title   string
	Content string
	Width   int
}

// NewCard creates a card
func NewCard(title string) *Card {
	return &Card{Title: title, Width: design.MinBodyWidth}
}

// WithContent sets the body of the card
func (c *Card) WithContent(content string) *Card {
	c.Content = content
	return c
}

// WithWidth sets the outer width
func (c *Card) WithWidth(width int) *Card {
	c.Width = width
	return c
}

// Render returns the styled card
func (c *Card) Render(theme design.Theme) string {
	width := c.Width
	if width < design.SpaceLG*3 {
		width = design.SpaceLG * 3
	}
	// Width on a bordered style excludes the border itself.
	inner := width - theme.Card.GetHorizontalBorderSize()
	title := theme.Subtitle.Render(TruncateString(c.Title, inner-theme.Card.GetHorizontalPadding()))
	body := lipgloss.JoinVertical(lipgloss.Left, title, c.Content)
	return theme.Card.Width(inner).Render(body)
}
