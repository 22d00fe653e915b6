package output

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minFitWidth is the narrowest a column is squeezed to when fitting.
const minFitWidth = 8

// StepTable lays out one group of steps as a bordered table. Each row is
// tinted with its step's status color, and the widest column is truncated
// until the table fits the requested width.
type StepTable struct {
	headers  []string
	rows     []stepRow
	maxWidth int
}

type stepRow struct {
	status string
	cells  []string
}

// NewStepTable creates a table no wider than maxWidth; 0 disables fitting.
func NewStepTable(maxWidth int, headers ...string) *StepTable {
	return &StepTable{headers: headers, maxWidth: maxWidth}
}

// AddStep appends a row tinted for status. Cells are plain text; missing
// cells are left blank and extra ones are dropped.
func (t *StepTable) AddStep(status string, cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, stepRow{status: status, cells: row})
}

// Len returns the number of rows.
func (t *StepTable) Len() int {
	return len(t.rows)
}

// String renders the table with a header separator and no rules between rows.
func (t *StepTable) String() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := t.fit()
	rule := border(widths, "-")

	var sb strings.Builder
	sb.WriteString(rule)
	sb.WriteString(line(t.headers, widths, Bold))
	sb.WriteString(border(widths, "="))
	for _, r := range t.rows {
		sb.WriteString(line(r.cells, widths, StatusColor(r.status)))
	}
	sb.WriteString(rule)
	return sb.String()
}

// fit returns the column widths, narrowing the widest column one cell at
// a time while the table is wider than maxWidth.
func (t *StepTable) fit() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range t.rows {
		for i, c := range r.cells {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}
	if t.maxWidth <= 0 {
		return widths
	}

	// "| a | b |": three border/padding cells per column plus the closing bar.
	total := 3*len(widths) + 1
	for _, w := range widths {
		total += w
	}
	for total > t.maxWidth {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minFitWidth {
			break
		}
		widths[widest]--
		total--
	}
	return widths
}

// border renders a line like +-----+----+.
func border(widths []int, fill string) string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, w := range widths {
		sb.WriteString(strings.Repeat(fill, w+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
	return sb.String()
}

// line renders one row, coloring the cell text but not the borders.
func line(cells []string, widths []int, color string) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, w := range widths {
		cell := runewidth.FillRight(runewidth.Truncate(cells[i], w, "..."), w)
		sb.WriteString(" ")
		sb.WriteString(Color(cell, color))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
	return sb.String()
}
