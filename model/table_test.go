package model

import (
	"strings"
	"testing"
)

func buildTable(rows [][]string) *Table {
	sec := NewSection(1, nil)
	t := sec.AddTable("")
	for _, cells := range rows {
		row := t.AddRow()
		for _, text := range cells {
			row.AddCell(text)
		}
	}
	return t
}

func TestTableCounts(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		wantRows int
		wantCols int
	}{
		{"empty", nil, 0, 0},
		{"single", [][]string{{"a"}}, 1, 1},
		{"rect", [][]string{{"a", "b"}, {"c", "d"}}, 2, 2},
		{"ragged", [][]string{{"a"}, {"b", "c", "d"}}, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := buildTable(tt.rows)
			if got := table.RowCount(); got != tt.wantRows {
				t.Errorf("RowCount() = %d, want %d", got, tt.wantRows)
			}
			if got := table.ColCount(); got != tt.wantCols {
				t.Errorf("ColCount() = %d, want %d", got, tt.wantCols)
			}
		})
	}
}

func TestTableGetCell(t *testing.T) {
	table := buildTable([][]string{{"a", "b"}, {"c", "d"}})

	if cell := table.GetCell(1, 0); cell == nil || cell.Text != "c" {
		t.Errorf("GetCell(1, 0) = %+v, want text c", cell)
	}

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row overflow", 2, 0},
		{"col overflow", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cell := table.GetCell(tt.row, tt.col); cell != nil {
				t.Errorf("GetCell(%d, %d) = %+v, want nil", tt.row, tt.col, cell)
			}
		})
	}
}

func TestAddCellDefaults(t *testing.T) {
	table := buildTable(nil)
	cell := table.AddRow().AddCell("x")

	if cell.RowSpan != 1 || cell.ColSpan != 1 {
		t.Errorf("new cell spans = %dx%d, want 1x1", cell.RowSpan, cell.ColSpan)
	}
	if cell.IsHeader {
		t.Error("new cell IsHeader = true, want false")
	}
}

func TestTableToMarkdown(t *testing.T) {
	table := buildTable([][]string{
		{"Name", "Qty"},
		{"bolt", "12"},
	})

	got := table.ToMarkdown()
	want := "| Name | Qty |\n|---|---|\n| bolt | 12 |\n"
	if got != want {
		t.Errorf("ToMarkdown() = %q, want %q", got, want)
	}
}

func TestTableToMarkdownEmpty(t *testing.T) {
	table := buildTable(nil)
	if got := table.ToMarkdown(); got != "" {
		t.Errorf("ToMarkdown() = %q for empty table, want empty", got)
	}
}

func TestTableToCSV(t *testing.T) {
	table := buildTable([][]string{
		{"plain", "with,comma"},
		{"with\"quote", "multi\nline"},
	})

	got := table.ToCSV()
	want := "plain,\"with,comma\"\n\"with\"\"quote\",\"multi\nline\"\n"
	if got != want {
		t.Errorf("ToCSV() = %q, want %q", got, want)
	}
}

func TestTableGetText(t *testing.T) {
	table := buildTable([][]string{{"a", "b"}, {"c", "d"}})
	got := table.GetText()
	if !strings.Contains(got, "a\tb") || !strings.Contains(got, "c\td") {
		t.Errorf("GetText() = %q, want tab-separated rows", got)
	}
}
