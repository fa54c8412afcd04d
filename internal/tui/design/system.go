package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
const (
	// Spacing units
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4

	SidebarWidth   = 22
	MinBodyWidth   = 40
	MinPanelHeight = 8
)

// Brand and state colours, each with a light and dark variant.
var (
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#000000",
		Dark:  "#FDD835",
	}
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}
	ColorLowStock = lipgloss.AdaptiveColor{
		Light: "#B45309",
		Dark:  "#FFEB3B",
	}

	// Neutral Colors
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#F5F5F5",
		Dark:  "#1A1A1A",
	}
	ColorChrome = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#212121",
	}
	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#E0E0E0",
		Dark:  "#303030",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorText = lipgloss.AdaptiveColor{
		Light: "#000000",
		Dark:  "#FFFFFF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
)

// Pick resolves an adaptive colour for an explicit mode instead of the
// terminal's detected background.
func Pick(c lipgloss.AdaptiveColor, dark bool) lipgloss.Color {
	if dark {
		return lipgloss.Color(c.Dark)
	}
	return lipgloss.Color(c.Light)
}

// Theme is the full set of styles for one display mode.
type Theme struct {
	Dark bool

	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style
	Body   lipgloss.Style

	SidebarStyle      lipgloss.Style
	SidebarItem       lipgloss.Style
	SidebarActiveItem lipgloss.Style

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Card        lipgloss.Style
	StatValue   lipgloss.Style
	BarStyle    lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableCursor lipgloss.Style
	LowStock    lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	StatusBar        lipgloss.Style
	StatusBarSuccess lipgloss.Style
	StatusBarError   lipgloss.Style
	StatusBarWarning lipgloss.Style
	StatusBarInfo    lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
}

// NewTheme builds the styles for dark or light mode.
func NewTheme(dark bool) Theme {
	c := func(ac lipgloss.AdaptiveColor) lipgloss.Color { return Pick(ac, dark) }

	statusBar := lipgloss.NewStyle().
		Foreground(c(ColorText)).
		Background(c(ColorChrome)).
		Padding(0, SpaceSM)

	input := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(c(ColorBorder)).
		Padding(0, SpaceXS)

	return Theme{
		Dark: dark,

		App: lipgloss.NewStyle().
			Foreground(c(ColorText)).
			Background(c(ColorBackground)),
		Header: lipgloss.NewStyle().
			Foreground(c(ColorAccent)).
			Background(c(ColorChrome)).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, SpaceSM),
		Footer: lipgloss.NewStyle().
			Foreground(c(ColorAccent)).
			Background(c(ColorChrome)).
			Align(lipgloss.Center),
		Body: lipgloss.NewStyle().
			Padding(SpaceXS, SpaceMD),

		SidebarStyle: lipgloss.NewStyle().
			Background(c(ColorChrome)).
			Foreground(c(ColorText)).
			Padding(SpaceXS, SpaceXS),
		SidebarItem: lipgloss.NewStyle().
			Foreground(c(ColorText)).
			Padding(0, SpaceXS),
		SidebarActiveItem: lipgloss.NewStyle().
			Foreground(c(ColorAccent)).
			Background(c(ColorHighlight)).
			Bold(true).
			Padding(0, SpaceXS),

		Title: lipgloss.NewStyle().
			Foreground(c(ColorText)).
			Bold(true).
			MarginBottom(SpaceXS),
		Subtitle: lipgloss.NewStyle().
			Foreground(c(ColorAccent)).
			Bold(true),
		Text:   lipgloss.NewStyle().Foreground(c(ColorText)),
		Muted:  lipgloss.NewStyle().Foreground(c(ColorTextMuted)),
		Accent: lipgloss.NewStyle().Foreground(c(ColorAccent)),
		Card: lipgloss.NewStyle().
			Background(c(ColorSurface)).
			Foreground(c(ColorText)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(ColorBorder)).
			Padding(0, SpaceSM),
		StatValue: lipgloss.NewStyle().
			Foreground(c(ColorAccent)).
			Bold(true),
		BarStyle: lipgloss.NewStyle().Foreground(c(ColorAccent)),
		TableHeader: lipgloss.NewStyle().
			Foreground(c(ColorAccent)).
			Bold(true),
		TableCell: lipgloss.NewStyle().Foreground(c(ColorText)),
		TableCursor: lipgloss.NewStyle().
			Foreground(c(ColorText)).
			Background(c(ColorHighlight)),
		LowStock: lipgloss.NewStyle().
			Foreground(c(ColorLowStock)).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(c(ColorSuccess)),
		Error:   lipgloss.NewStyle().Foreground(c(ColorError)),
		Warning: lipgloss.NewStyle().Foreground(c(ColorWarning)),
		Info:    lipgloss.NewStyle().Foreground(c(ColorInfo)),

		StatusBar:        statusBar,
		StatusBarSuccess: statusBar.Foreground(lipgloss.Color("#FFFFFF")).Background(c(ColorSuccess)),
		StatusBarError:   statusBar.Foreground(lipgloss.Color("#FFFFFF")).Background(c(ColorError)),
		StatusBarWarning: statusBar.Foreground(lipgloss.Color("#000000")).Background(c(ColorWarning)),
		StatusBarInfo:    statusBar.Foreground(lipgloss.Color("#FFFFFF")).Background(c(ColorInfo)),

		Input:        input,
		InputFocused: input.BorderForeground(c(ColorAccent)),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(ColorAccent)).
			Background(c(ColorSurface)).
			Foreground(c(ColorText)).
			Padding(SpaceXS, SpaceSM),
		OverlayTitle: lipgloss.NewStyle().
			Foreground(c(ColorAccent)).
			Bold(true).
			MarginBottom(SpaceXS),
	}
}

// Layout Helpers
func CenterHorizontal(width int, content string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func CenterVertical(height int, content string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}
