package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docweave/model"
	"github.com/tsawler/docweave/style"
)

func newRegistry(t *testing.T) *style.Registry {
	t.Helper()
	reg := style.NewRegistry()
	require.NoError(t, style.RegisterAll(reg, style.DefaultSheet()...))
	return reg
}

func TestBuilder_PreservesInsertionOrder(t *testing.T) {
	b := model.NewBuilder(newRegistry(t))
	b.Heading("Intro", 1).
		Text("Hello").
		Table([][]string{{"A", "B"}, {"1", "2"}}).
		PageBreak().
		Monospace("  diagram  ")

	doc, err := b.Build()
	require.NoError(t, err)

	kinds := make([]model.BlockKind, 0, doc.Len())
	for _, block := range doc.Blocks() {
		kinds = append(kinds, block.Kind())
	}
	assert.Equal(t, []model.BlockKind{
		model.KindHeading,
		model.KindParagraph,
		model.KindTable,
		model.KindPageBreak,
		model.KindMonospace,
	}, kinds)
}

func TestBuilder_RaggedTableFailsConstruction(t *testing.T) {
	b := model.NewBuilder(newRegistry(t))
	b.Heading("Before", 1).
		Table([][]string{{"A", "B"}, {"1"}}).
		Text("after")

	doc, err := b.Build()
	assert.Nil(t, doc)

	var ragged *model.RaggedTableError
	require.ErrorAs(t, err, &ragged)
	assert.Equal(t, 1, ragged.Row)
	assert.Equal(t, 1, ragged.Got)
	assert.Equal(t, 2, ragged.Want)
	assert.Equal(t, 1, b.Len(), "appends after the failure are ignored")
}

func TestBuilder_UnknownRunStyle(t *testing.T) {
	b := model.NewBuilder(newRegistry(t))
	b.Paragraph(model.Plain("ok "), model.Styled("bad", "Nonexistent"))

	_, err := b.Build()

	var unknown *style.UnknownStyleError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Nonexistent", unknown.Name)
}

func TestBuilder_UnknownParagraphStyle(t *testing.T) {
	b := model.NewBuilder(style.NewRegistry())
	b.Bullet("item")

	_, err := b.Build()
	assert.ErrorIs(t, err, style.ErrUnknownStyle)
}

func TestBuilder_UnknownStyleInTableCell(t *testing.T) {
	b := model.NewBuilder(newRegistry(t))
	b.StyledTable([][]model.Cell{
		{{Runs: []model.Run{model.Styled("H", "Missing")}}},
	})

	_, err := b.Build()
	assert.ErrorIs(t, err, style.ErrUnknownStyle)
}

func TestBuilder_HeadingLevelRange(t *testing.T) {
	for _, level := range []int{-1, 10} {
		b := model.NewBuilder(newRegistry(t))
		b.Heading("x", level)
		_, err := b.Build()
		assert.Error(t, err, "level %d", level)
	}

	for _, level := range []int{0, 9} {
		b := model.NewBuilder(newRegistry(t))
		b.Heading("x", level)
		_, err := b.Build()
		assert.NoError(t, err, "level %d", level)
	}
}

func TestBuilder_AppendRejectsUnvalidatedBlocks(t *testing.T) {
	b := model.NewBuilder(newRegistry(t))
	b.Append(model.Table{Rows: [][]model.Cell{{model.TextCell("a")}, {}}})

	_, err := b.Build()
	var ragged *model.RaggedTableError
	assert.ErrorAs(t, err, &ragged)
}

func TestBuilder_AppendNil(t *testing.T) {
	b := model.NewBuilder(newRegistry(t))
	b.Text("before").Append(nil).Text("after")

	doc, err := b.Build()
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block 1: nil block")
	assert.Equal(t, 1, b.Len())
}

func TestBuilder_AppendCopiesTableRows(t *testing.T) {
	rows := [][]model.Cell{
		{model.TextCell("A"), model.TextCell("B")},
		{model.TextCell("1"), model.TextCell("2")},
	}
	b := model.NewBuilder(newRegistry(t))
	b.Append(model.Table{Rows: rows})
	doc, err := b.Build()
	require.NoError(t, err)

	rows[1] = rows[1][:1]
	rows[0][0].Runs[0].StyleName = "Missing"
	rows[0] = nil

	table, ok := doc.Blocks()[0].(model.Table)
	require.True(t, ok)
	require.Equal(t, 2, table.RowCount())
	for i, row := range table.Rows {
		assert.Len(t, row, 2, "row %d", i)
	}
	assert.Equal(t, "A", table.Rows[0][0].Text())
	assert.Empty(t, table.Rows[0][0].Runs[0].StyleName)
}

func TestBuilder_AppendCopiesParagraphRuns(t *testing.T) {
	runs := []model.Run{model.Styled("bold", style.StrongName)}
	b := model.NewBuilder(newRegistry(t))
	b.Append(model.Paragraph{Runs: runs})
	doc, err := b.Build()
	require.NoError(t, err)

	runs[0].StyleName = "Missing"

	para, ok := doc.Blocks()[0].(model.Paragraph)
	require.True(t, ok)
	assert.Equal(t, style.StrongName, para.Runs[0].StyleName)
}

func TestBuilder_SealedAfterBuild(t *testing.T) {
	b := model.NewBuilder(newRegistry(t))
	b.Text("one")

	doc, err := b.Build()
	require.NoError(t, err)

	b.Text("two")
	assert.True(t, errors.Is(b.Err(), model.ErrBuilderSealed))
	assert.Equal(t, 1, doc.Len(), "built document is unaffected")

	_, err = b.Build()
	assert.ErrorIs(t, err, model.ErrBuilderSealed)
}

func TestBuilder_Metadata(t *testing.T) {
	b := model.NewBuilder(nil)
	b.SetMetadata(model.Metadata{Title: "SRS", Keywords: []string{"a", "b"}})

	doc, err := b.Build()
	require.NoError(t, err)

	m := doc.Metadata()
	assert.Equal(t, "SRS", m.Title)
	m.Keywords[0] = "changed"
	assert.Equal(t, "a", doc.Metadata().Keywords[0])
	assert.NotNil(t, doc.Registry())
}

func TestDocument_BlocksIsCopy(t *testing.T) {
	b := model.NewBuilder(newRegistry(t))
	b.Text("one").Text("two")
	doc, err := b.Build()
	require.NoError(t, err)

	blocks := doc.Blocks()
	blocks[0] = model.PageBreak{}

	assert.Equal(t, model.KindParagraph, doc.Blocks()[0].Kind())
	assert.Equal(t, map[model.BlockKind]int{model.KindParagraph: 2}, doc.CountByKind())
}
