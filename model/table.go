package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTable is returned when a table has no rows or no columns.
var ErrEmptyTable = errors.New("table has no cells")

// RaggedTableError reports a row whose length differs from the first row.
type RaggedTableError struct {
	Row  int // 0-indexed row that broke the shape
	Got  int
	Want int
}

func (e *RaggedTableError) Error() string {
	return fmt.Sprintf("table row %d has %d columns, want %d", e.Row, e.Got, e.Want)
}

// Cell is a table cell made of runs.
type Cell struct {
	Runs []Run
}

// TextCell returns a cell holding a single unstyled run.
func TextCell(text string) Cell {
	return Cell{Runs: []Run{Plain(text)}}
}

// Text returns the concatenated text of the cell.
func (c Cell) Text() string {
	var sb strings.Builder
	for _, r := range c.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Table is a rectangular grid of cells. Use NewTable or NewStyledTable so the
// shape is checked.
type Table struct {
	Rows [][]Cell
}

func (Table) Kind() BlockKind { return KindTable }

// NewTable builds a table of plain text cells.
func NewTable(rows [][]string) (Table, error) {
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, len(row))
		for j, text := range row {
			cells[i][j] = TextCell(text)
		}
	}
	return NewStyledTable(cells)
}

// NewStyledTable builds a table from cells, failing if the rows are not all
// the same length as the first.
func NewStyledTable(rows [][]Cell) (Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Table{}, ErrEmptyTable
	}
	want := len(rows[0])
	copied := make([][]Cell, len(rows))
	for i, row := range rows {
		if len(row) != want {
			return Table{}, &RaggedTableError{Row: i, Got: len(row), Want: want}
		}
		copied[i] = append([]Cell(nil), row...)
	}
	return Table{Rows: copied}, nil
}

// RowCount returns the number of rows
func (t Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row
func (t Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}
