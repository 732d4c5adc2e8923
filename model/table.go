package model

import (
	"strings"
)

// Table represents a table built row by row. Rows may be ragged while under
// construction; the writer is expected to pad short rows against ColCount.
type Table struct {
	elem
	StyleRef string // named table style, empty for default
	rows     []*Row
}

func (t *Table) Type() ElementType { return ElementTypeTable }

func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.rows {
		for j, cell := range row.cells {
			sb.WriteString(cell.Text)
			if j < len(row.cells)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// AddRow appends a new empty row and returns it.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.rows = append(t.rows, r)
	return r
}

// Rows returns the table's rows in insertion order. The returned slice is
// the table's own backing store; callers must not modify it.
func (t *Table) Rows() []*Row { return t.rows }

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColCount returns the number of cells in the widest row.
func (t *Table) ColCount() int {
	max := 0
	for _, row := range t.rows {
		if len(row.cells) > max {
			max = len(row.cells)
		}
	}
	return max
}

// GetCell returns the cell at the given row and column (0-indexed), or nil
// if either index is out of range.
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.rows) {
		return nil
	}
	cells := t.rows[row].cells
	if col < 0 || col >= len(cells) {
		return nil
	}
	return cells[col]
}

// ToMarkdown converts the table to markdown format, treating the first row
// as the header row. Useful for debugging and plain-text previews.
func (t *Table) ToMarkdown() string {
	if len(t.rows) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row
	first := t.rows[0].cells
	for j, cell := range first {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
		sb.WriteString(" ")
		if j == len(first)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Separator
	for j := range first {
		sb.WriteString("|---")
		if j == len(first)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Data rows
	for i := 1; i < len(t.rows); i++ {
		cells := t.rows[i].cells
		for j, cell := range cells {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
			sb.WriteString(" ")
			if j == len(cells)-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.rows {
		for j, cell := range row.cells {
			// Escape quotes and wrap in quotes if necessary
			text := cell.Text
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row.cells)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Row is one table row.
type Row struct {
	StyleRef string
	cells    []*Cell
}

// AddCell appends a cell with the given text and unit spans, returning it
// so spans and style can be adjusted.
func (r *Row) AddCell(text string) *Cell {
	c := &Cell{Text: text, RowSpan: 1, ColSpan: 1}
	r.cells = append(r.cells, c)
	return c
}

// Cells returns the row's cells in insertion order.
func (r *Row) Cells() []*Cell { return r.cells }

// CellCount returns the number of cells in the row.
func (r *Row) CellCount() int { return len(r.cells) }

// Cell represents a table cell
type Cell struct {
	Text     string
	RowSpan  int
	ColSpan  int
	IsHeader bool
	StyleRef string // named cell style, empty for default
}
