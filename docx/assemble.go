package docx

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/docweave/logging"
	"github.com/tsawler/docweave/model"
	"github.com/tsawler/docweave/style"
)

// Package is the in-memory document: rendered fragments in reading order plus
// everything needed to write the style, numbering and property parts.
type Package struct {
	fragments []Fragment
	styles    []style.StyleSpec
	normal    style.StyleSpec
	metadata  model.Metadata
}

// Fragments returns the fragments in reading order. The slice is a copy.
func (p *Package) Fragments() []Fragment {
	return append([]Fragment(nil), p.fragments...)
}

// Len returns the number of fragments.
func (p *Package) Len() int {
	return len(p.fragments)
}

// Metadata returns the package metadata.
func (p *Package) Metadata() model.Metadata {
	return p.metadata
}

// Assembler turns documents into packages.
type Assembler struct {
	logger zerolog.Logger
}

// NewAssembler creates an assembler that logs through the shared logger.
func NewAssembler() *Assembler {
	return &Assembler{logger: logging.GetLogger("docx.assembler")}
}

// WithLogger replaces the assembler's logger.
func (a *Assembler) WithLogger(logger zerolog.Logger) *Assembler {
	a.logger = logger
	return a
}

// Assemble renders every block of doc in insertion order. The document's
// registry is sealed first; it is read-only from here on.
func (a *Assembler) Assemble(doc *model.Document) *Package {
	done := logging.LogOperationStart(a.logger, "assemble")
	defer done()

	reg := doc.Registry()
	reg.Seal()

	blocks := doc.Blocks()
	pkg := &Package{
		fragments: make([]Fragment, 0, len(blocks)),
		styles:    reg.Specs(),
		normal:    reg.Default(),
		metadata:  doc.Metadata(),
	}
	for i, block := range blocks {
		frag := Render(block, reg)
		a.logger.Trace().
			Int("index", i).
			Str("kind", block.Kind().String()).
			Int("nodes", len(frag.Nodes)).
			Msg("Rendered block")
		pkg.fragments = append(pkg.fragments, frag)
	}

	a.logger.Debug().Int("fragments", len(pkg.fragments)).Msg("Document assembled")
	return pkg
}

// Assemble renders doc with a default assembler.
func Assemble(doc *model.Document) *Package {
	return NewAssembler().Assemble(doc)
}
