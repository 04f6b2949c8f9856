// Package model provides the content model that documents are assembled from.
//
// A [Document] is an ordered, append-only sequence of [Block] values built
// against a [style.Registry]. Blocks are a tagged union: every block reports its
// [BlockKind], and consumers dispatch on it.
//
// # Blocks
//
//   - [Heading] - heading text with a level (0 is the document title, 1-9 headings)
//   - [Paragraph] - an ordered list of styled [Run] values
//   - [Table] - a rectangular grid of [Cell] values
//   - [Monospace] - fixed-width text such as ASCII diagrams
//   - [PageBreak] - a forced page break
//
// # Building
//
// Documents are built with a [Builder], which validates every block as it is
// appended. The first construction error is sticky and returned by Build, so a
// content producer can append freely and check once:
//
//	b := model.NewBuilder(reg)
//	b.Heading("Introduction", 1)
//	b.Text("Hello")
//	b.Table([][]string{{"A", "B"}, {"1", "2"}})
//	doc, err := b.Build()
//
// Invariants such as rectangular tables and known style names are enforced here,
// never during rendering.
package model
