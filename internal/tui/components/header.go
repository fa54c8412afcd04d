package components

import (
	"kitchenctl/internal/tui/design"
)

// Header represents the application header
type Header struct {
	Title string
	Width int
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render(theme design.Theme) string {
	width := h.Width
	if width < 1 {
		width = 1
	}
	return theme.Header.
		Width(width).
		MaxWidth(width).
		Render(TruncateString(h.Title, width-design.SpaceSM*2))
}

// Footer is the copyright line at the bottom of the screen.
type Footer struct {
	Text  string
	Width int
}

// NewFooter creates a footer with the given text
func NewFooter(text string, width int) *Footer {
	return &Footer{Text: text, Width: width}
}

// Render returns the styled footer
func (f *Footer) Render(theme design.Theme) string {
	width := f.Width
	if width < 1 {
		width = 1
	}
	return theme.Footer.
		Width(width).
		MaxWidth(width).
		Render(TruncateString(f.Text, width))
}
