package components

import (
	"fmt"
	"strings"

	"kitchenctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = 2

// Column describes one table column.
type Column struct {
	Title string
	Width int
}

// Row is one table row. Style, when set, overrides the default cell style.
type Row struct {
	Cells []string
	Style *lipgloss.Style
}

// Table renders fixed-width, left-aligned rows under a header.
type Table struct {
	Columns  []Column
	Rows     []Row
	Selected int // -1 for no cursor
	Empty    string
	// MaxRows caps the rendered row lines, scroll indicator included.
	// Zero renders every row.
	MaxRows int
}

// NewTable creates a table without a cursor.
func NewTable(columns ...Column) *Table {
	return &Table{
		Columns:  columns,
		Selected: -1,
		Empty:    "No entries",
	}
}

// WithRows sets the rows
func (t *Table) WithRows(rows ...Row) *Table {
	t.Rows = rows
	return t
}

// WithCursor highlights row i
func (t *Table) WithCursor(i int) *Table {
	t.Selected = i
	return t
}

// WithMaxRows limits how many row lines are drawn. The window follows
// the cursor.
func (t *Table) WithMaxRows(n int) *Table {
	t.MaxRows = n
	return t
}

// visibleRange is the half-open span of rows that fits in MaxRows.
func (t *Table) visibleRange() (int, int) {
	if t.MaxRows <= 0 || len(t.Rows) <= t.MaxRows {
		return 0, len(t.Rows)
	}
	n := t.MaxRows - 1
	if n < 1 {
		n = 1
	}
	start := 0
	if t.Selected >= n {
		start = t.Selected - n + 1
	}
	if start > len(t.Rows)-n {
		start = len(t.Rows) - n
	}
	return start, start + n
}

// Width is the total rendered width of a row including the cursor gutter.
func (t *Table) Width() int {
	w := columnGap
	for i, c := range t.Columns {
		if i > 0 {
			w += columnGap
		}
		w += c.Width
	}
	return w
}

// Render returns the header line followed by one line per row.
func (t *Table) Render(theme design.Theme) string {
	lines := make([]string, 0, len(t.Rows)+2)

	titles := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		titles[i] = c.Title
	}
	lines = append(lines, theme.TableHeader.Render(t.line("  ", titles)))
	lines = append(lines, theme.Muted.Render(strings.Repeat("─", t.Width())))

	if len(t.Rows) == 0 {
		lines = append(lines, theme.Muted.Render("  "+t.Empty))
		return strings.Join(lines, "\n")
	}

	start, end := t.visibleRange()
	for i := start; i < end; i++ {
		row := t.Rows[i]
		gutter := "  "
		style := theme.TableCell
		if row.Style != nil {
			style = *row.Style
		}
		if i == t.Selected {
			gutter = "› "
			style = style.Background(theme.TableCursor.GetBackground())
		}
		lines = append(lines, style.Render(t.line(gutter, row.Cells)))
	}
	if start > 0 || end < len(t.Rows) {
		lines = append(lines, theme.Muted.Render(fmt.Sprintf("  rows %d-%d of %d", start+1, end, len(t.Rows))))
	}
	return strings.Join(lines, "\n")
}

func (t *Table) line(gutter string, cells []string) string {
	var b strings.Builder
	b.WriteString(gutter)
	for i, c := range t.Columns {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", columnGap))
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(FitCell(cell, c.Width))
	}
	return b.String()
}
