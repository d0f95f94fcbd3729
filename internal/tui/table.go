// Package tui provides terminal output components for wic.
package tui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TableColumn defines a column in a table.
type TableColumn struct {
	Name  string
	Width int
}

// Table provides styled table rendering with a bold header row.
// Column widths grow to fit content but never shrink below the
// configured minimum.
type Table struct {
	w       io.Writer
	styles  *TableStyles
	columns []TableColumn
	rows    [][]string
}

// NewTable creates a new table with the given columns.
func NewTable(w io.Writer, columns []TableColumn) *Table {
	return &Table{
		w:       w,
		styles:  NewTableStyles(),
		columns: columns,
	}
}

// AddRow appends a data row. Missing cells render empty.
func (t *Table) AddRow(values ...string) {
	t.rows = append(t.rows, values)
}

// Render writes the header and all accumulated rows to the writer.
func (t *Table) Render() error {
	widths := t.calculateColumnWidths()

	headerParts := make([]string, len(t.columns))
	for i, col := range t.columns {
		headerParts[i] = t.styles.Header.Render(padRight(col.Name, widths[i]))
	}
	if _, err := fmt.Fprintln(t.w, strings.Join(headerParts, "  ")); err != nil {
		return err
	}

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i := range t.columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			cells[i] = padRight(value, widths[i])
		}
		if _, err := fmt.Fprintln(t.w, strings.Join(cells, "  ")); err != nil {
			return err
		}
	}

	return nil
}

// calculateColumnWidths expands configured widths to fit header and content.
func (t *Table) calculateColumnWidths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = col.Width
		if w := utf8.RuneCountInString(col.Name); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range t.rows {
		for i := range t.columns {
			if i >= len(row) {
				continue
			}
			if w := utf8.RuneCountInString(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
