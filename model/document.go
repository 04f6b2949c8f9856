package model

import (
	"time"

	"github.com/tsawler/docweave/style"
)

// Metadata contains document-level information written to the package properties.
type Metadata struct {
	Title       string
	Subject     string
	Author      string
	Keywords    []string
	Description string
	// Created is written to the core properties only when non-zero, so that
	// output stays byte-identical across runs by default.
	Created time.Time
}

// Document is an ordered sequence of blocks built against a style registry.
type Document struct {
	blocks   []Block
	registry *style.Registry
	metadata Metadata
}

// Blocks returns the blocks in reading order. The slice is a copy.
func (d *Document) Blocks() []Block {
	return append([]Block(nil), d.blocks...)
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// Registry returns the style registry the document was built against.
func (d *Document) Registry() *style.Registry {
	return d.registry
}

// Metadata returns the document metadata.
func (d *Document) Metadata() Metadata {
	m := d.metadata
	m.Keywords = append([]string(nil), d.metadata.Keywords...)
	return m
}

// CountByKind returns the number of blocks of each kind.
func (d *Document) CountByKind() map[BlockKind]int {
	counts := make(map[BlockKind]int)
	for _, b := range d.blocks {
		counts[b.Kind()]++
	}
	return counts
}
