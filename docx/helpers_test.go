package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docweave/model"
	"github.com/tsawler/docweave/style"
)

// newRegistry returns a registry loaded with the default sheet.
func newRegistry(t *testing.T) *style.Registry {
	t.Helper()
	reg := style.NewRegistry()
	require.NoError(t, style.RegisterAll(reg, style.DefaultSheet()...))
	return reg
}

// scenarioDocument builds the five-block document used across tests.
func scenarioDocument(t *testing.T, reg *style.Registry) *model.Document {
	t.Helper()
	b := model.NewBuilder(reg)
	b.Heading("Intro", 1).
		Paragraph(model.Plain("Hello")).
		Table([][]string{{"A", "B"}, {"1", "2"}}).
		PageBreak().
		Monospace("  diagram  ")
	doc, err := b.Build()
	require.NoError(t, err)
	return doc
}

func quietAssemble(doc *model.Document) *Package {
	return NewAssembler().WithLogger(zerolog.Nop()).Assemble(doc)
}

// readParts opens a DOCX archive and returns its parts by name, in archive order.
func readParts(t *testing.T, data []byte) (map[string][]byte, []string) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	parts := make(map[string][]byte)
	var names []string
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		parts[f.Name] = content
		names = append(names, f.Name)
	}
	return parts, names
}

// parseXML parses an XML part.
func parseXML(t *testing.T, data []byte) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	return doc
}

// runColor returns the w:color of the first run in el.
func runColor(el *etree.Element) string {
	c := el.FindElement(".//w:r/w:rPr/w:color")
	if c == nil {
		return ""
	}
	return c.SelectAttrValue("w:val", "")
}
