// Package docweave assembles WordprocessingML (DOCX) documents from a
// declarative content model.
//
// Basic usage:
//
//	reg, err := docweave.NewRegistry(style.DefaultSheet()...)
//	if err != nil {
//	    // handle error
//	}
//	b := model.NewBuilder(reg)
//	b.Heading("Introduction", 1).Text("Hello")
//	doc, err := b.Build()
//	if err != nil {
//	    // handle error
//	}
//	err = docweave.Generate(doc, "report.docx")
//
// The lower-level style, model and docx packages are also available for
// finer control over rendering and serialization.
package docweave

import (
	"github.com/tsawler/docweave/docx"
	"github.com/tsawler/docweave/model"
	"github.com/tsawler/docweave/style"
)

// NewRegistry creates a style registry holding specs. It fails on the first
// duplicate or invalid spec.
func NewRegistry(specs ...style.StyleSpec) (*style.Registry, error) {
	reg := style.NewRegistry()
	if err := style.RegisterAll(reg, specs...); err != nil {
		return nil, err
	}
	return reg, nil
}

// Generate assembles doc and writes it to path.
func Generate(doc *model.Document, path string) error {
	return docx.Serialize(docx.Assemble(doc), path)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	reg := docweave.Must(docweave.NewRegistry(style.DefaultSheet()...))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
