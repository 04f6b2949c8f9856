package model

import (
	"errors"
	"fmt"

	"github.com/tsawler/docweave/style"
)

// ErrBuilderSealed is returned when appending to a builder after Build.
var ErrBuilderSealed = errors.New("document builder is sealed")

// Builder appends blocks to a document in reading order. A builder is owned by
// a single producer and is not safe for concurrent use.
//
// The first error from any append is kept; later appends are ignored and the
// error is returned by Err and Build.
type Builder struct {
	reg      *style.Registry
	blocks   []Block
	metadata Metadata
	err      error
	sealed   bool
}

// NewBuilder creates a builder whose style names are checked against reg.
func NewBuilder(reg *style.Registry) *Builder {
	return &Builder{reg: reg}
}

// Err returns the first construction error, if any.
func (b *Builder) Err() error {
	return b.err
}

// Len returns the number of blocks appended so far.
func (b *Builder) Len() int {
	return len(b.blocks)
}

// SetMetadata sets the document metadata.
func (b *Builder) SetMetadata(m Metadata) *Builder {
	b.metadata = m
	return b
}

// Append validates and appends a block.
func (b *Builder) Append(block Block) *Builder {
	if b.err != nil {
		return b
	}
	if b.sealed {
		b.err = ErrBuilderSealed
		return b
	}
	if block == nil {
		b.err = fmt.Errorf("block %d: nil block", len(b.blocks))
		return b
	}
	owned, err := b.validate(block)
	if err != nil {
		b.err = fmt.Errorf("block %d (%s): %w", len(b.blocks), block.Kind(), err)
		return b
	}
	b.blocks = append(b.blocks, owned)
	return b
}

// Heading appends a heading.
func (b *Builder) Heading(text string, level int) *Builder {
	h, err := NewHeading(text, level)
	if err != nil {
		return b.fail(err)
	}
	return b.Append(h)
}

// Text appends a paragraph with a single unstyled run.
func (b *Builder) Text(text string) *Builder {
	return b.Append(Paragraph{Runs: []Run{Plain(text)}})
}

// Paragraph appends a paragraph of runs.
func (b *Builder) Paragraph(runs ...Run) *Builder {
	return b.Append(Paragraph{Runs: append([]Run(nil), runs...)})
}

// StyledParagraph appends a paragraph that uses the named paragraph style.
func (b *Builder) StyledParagraph(styleName string, runs ...Run) *Builder {
	return b.Append(Paragraph{Runs: append([]Run(nil), runs...), StyleName: styleName})
}

// Bullet appends a bulleted list item.
func (b *Builder) Bullet(text string) *Builder {
	return b.StyledParagraph(style.ListBulletName, Plain(text))
}

// Table appends a table of plain text cells.
func (b *Builder) Table(rows [][]string) *Builder {
	t, err := NewTable(rows)
	if err != nil {
		return b.fail(err)
	}
	return b.Append(t)
}

// StyledTable appends a table of styled cells.
func (b *Builder) StyledTable(rows [][]Cell) *Builder {
	t, err := NewStyledTable(rows)
	if err != nil {
		return b.fail(err)
	}
	return b.Append(t)
}

// Monospace appends a fixed-width text block.
func (b *Builder) Monospace(text string) *Builder {
	return b.Append(Monospace{Text: text})
}

// PageBreak appends a page break.
func (b *Builder) PageBreak() *Builder {
	return b.Append(PageBreak{})
}

// Build seals the builder and returns the document, or the first error.
func (b *Builder) Build() (*Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	b.sealed = true
	reg := b.reg
	if reg == nil {
		reg = style.NewRegistry()
	}
	return &Document{
		blocks:   b.blocks,
		registry: reg,
		metadata: b.metadata,
	}, nil
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = fmt.Errorf("block %d: %w", len(b.blocks), err)
	}
	return b
}

// validate checks the invariants that renderers rely on and returns a copy of
// block that shares no slices with the caller.
func (b *Builder) validate(block Block) (Block, error) {
	switch v := block.(type) {
	case Heading:
		if v.Level < 0 || v.Level > MaxHeadingLevel {
			return nil, fmt.Errorf("level %d out of range [0,%d]", v.Level, MaxHeadingLevel)
		}
		return v, nil
	case Paragraph:
		if err := b.checkStyle(v.StyleName); err != nil {
			return nil, err
		}
		if err := b.checkRuns(v.Runs); err != nil {
			return nil, err
		}
		v.Runs = copyRuns(v.Runs)
		return v, nil
	case Table:
		t, err := NewStyledTable(v.Rows)
		if err != nil {
			return nil, err
		}
		for _, row := range t.Rows {
			for j := range row {
				if err := b.checkRuns(row[j].Runs); err != nil {
					return nil, err
				}
				row[j].Runs = copyRuns(row[j].Runs)
			}
		}
		return t, nil
	case Monospace, PageBreak:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported block type %T", block)
	}
}

func copyRuns(runs []Run) []Run {
	if runs == nil {
		return nil
	}
	return append([]Run(nil), runs...)
}

func (b *Builder) checkRuns(runs []Run) error {
	for _, r := range runs {
		if err := b.checkStyle(r.StyleName); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) checkStyle(name string) error {
	if name == "" {
		return nil
	}
	if b.reg == nil {
		return &style.UnknownStyleError{Name: name}
	}
	_, err := b.reg.Resolve(name)
	return err
}
