package components

import (
	"fmt"
	"strings"

	"kitchenctl/internal/kitchen"
	"kitchenctl/internal/tui/design"
)

// BarChart draws one horizontal bar per analytics point, scaled to the
// largest value.
type BarChart struct {
	Points []kitchen.AnalyticsPoint
	Width  int
}

// NewBarChart creates a chart over points.
func NewBarChart(points []kitchen.AnalyticsPoint, width int) *BarChart {
	return &BarChart{Points: points, Width: width}
}

// BarLength is the number of cells for value given the chart's scale.
func (c *BarChart) BarLength(value int) int {
	highest := kitchen.MaxSales(c.Points)
	if highest <= 0 || value <= 0 {
		return 0
	}
	return value * c.barArea() / highest
}

func (c *BarChart) labelWidth() int {
	w := 3
	for _, p := range c.Points {
		if len(p.Month) > w {
			w = len(p.Month)
		}
	}
	return w
}

func (c *BarChart) valueWidth() int {
	return len(fmt.Sprintf("%d", kitchen.MaxSales(c.Points)))
}

func (c *BarChart) barArea() int {
	area := c.Width - c.labelWidth() - c.valueWidth() - 2
	if area < 1 {
		area = 1
	}
	return area
}

// Render returns the chart, one line per month.
func (c *BarChart) Render(theme design.Theme) string {
	if len(c.Points) == 0 {
		return theme.Muted.Render("No sales data")
	}
	labelW := c.labelWidth()
	lines := make([]string, 0, len(c.Points))
	for _, p := range c.Points {
		label := FitCell(p.Month, labelW)
		bar := strings.Repeat("█", c.BarLength(p.Sales))
		lines = append(lines, fmt.Sprintf("%s %s %s",
			theme.Muted.Render(label),
			theme.BarStyle.Render(bar),
			theme.Text.Render(fmt.Sprintf("%d", p.Sales))))
	}
	return strings.Join(lines, "\n")
}
