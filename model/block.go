package model

import "fmt"

// BlockKind identifies the variant of a Block.
type BlockKind int

const (
	KindUnknown BlockKind = iota
	KindHeading
	KindParagraph
	KindTable
	KindMonospace
	KindPageBreak
)

func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	case KindTable:
		return "Table"
	case KindMonospace:
		return "Monospace"
	case KindPageBreak:
		return "PageBreak"
	default:
		return "Unknown"
	}
}

// Block is one semantic unit of document content.
type Block interface {
	Kind() BlockKind
}

// MaxHeadingLevel is the deepest heading level.
const MaxHeadingLevel = 9

// Heading is a section heading. Level 0 is the document title.
type Heading struct {
	Text  string
	Level int
}

func (Heading) Kind() BlockKind { return KindHeading }

// NewHeading creates a heading, rejecting levels outside [0, MaxHeadingLevel].
func NewHeading(text string, level int) (Heading, error) {
	if level < 0 || level > MaxHeadingLevel {
		return Heading{}, fmt.Errorf("heading %q: level %d out of range [0,%d]", text, level, MaxHeadingLevel)
	}
	return Heading{Text: text, Level: level}, nil
}

// Run is a span of text within a paragraph. An empty StyleName means the
// ambient style of the enclosing paragraph.
type Run struct {
	Text      string
	StyleName string
}

// Plain returns an unstyled run.
func Plain(text string) Run { return Run{Text: text} }

// Styled returns a run that uses the named style.
func Styled(text, styleName string) Run { return Run{Text: text, StyleName: styleName} }

// Paragraph is an ordered sequence of runs. StyleName optionally names the
// paragraph style, which supplies alignment and the ambient style for runs
// without their own.
type Paragraph struct {
	Runs      []Run
	StyleName string
}

func (Paragraph) Kind() BlockKind { return KindParagraph }

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	var s string
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}

// Monospace is text rendered in a fixed-width font at a fixed size,
// regardless of any surrounding style.
type Monospace struct {
	Text string
}

func (Monospace) Kind() BlockKind { return KindMonospace }

// PageBreak forces subsequent content onto a new page.
type PageBreak struct{}

func (PageBreak) Kind() BlockKind { return KindPageBreak }
