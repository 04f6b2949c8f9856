package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		wantErr error
		rowsN   int
		colsN   int
	}{
		{"2x2", [][]string{{"A", "B"}, {"1", "2"}}, nil, 2, 2},
		{"header only", [][]string{{"Term", "Definition"}}, nil, 1, 2},
		{"no rows", nil, ErrEmptyTable, 0, 0},
		{"no columns", [][]string{{}}, ErrEmptyTable, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.rows)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rowsN, table.RowCount())
			assert.Equal(t, tt.colsN, table.ColCount())
			for _, row := range table.Rows {
				assert.Len(t, row, table.ColCount())
			}
		})
	}
}

func TestNewTable_Ragged(t *testing.T) {
	_, err := NewTable([][]string{{"A", "B", "C"}, {"1", "2", "3"}, {"x", "y"}})

	var ragged *RaggedTableError
	require.ErrorAs(t, err, &ragged)
	assert.Equal(t, &RaggedTableError{Row: 2, Got: 2, Want: 3}, ragged)
	assert.Contains(t, err.Error(), "row 2")
}

func TestNewStyledTable_CopiesRows(t *testing.T) {
	rows := [][]Cell{{TextCell("a"), TextCell("b")}}
	table, err := NewStyledTable(rows)
	require.NoError(t, err)

	rows[0][0] = TextCell("changed")
	assert.Equal(t, "a", table.Rows[0][0].Text())
}

func TestBlockKindString(t *testing.T) {
	assert.Equal(t, "Heading", Heading{}.Kind().String())
	assert.Equal(t, "Paragraph", Paragraph{}.Kind().String())
	assert.Equal(t, "Table", Table{}.Kind().String())
	assert.Equal(t, "Monospace", Monospace{}.Kind().String())
	assert.Equal(t, "PageBreak", PageBreak{}.Kind().String())
	assert.Equal(t, "Unknown", KindUnknown.String())
}

func TestParagraphText(t *testing.T) {
	p := Paragraph{Runs: []Run{Plain("Hello, "), Styled("world", "Strong")}}
	assert.Equal(t, "Hello, world", p.Text())
}
