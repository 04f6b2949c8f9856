package docx

import (
	"github.com/beevik/etree"

	"github.com/tsawler/docweave/model"
)

// Fragment is the rendered output of a single block: one or more body-level
// WordprocessingML elements. It keeps no reference to the block it came from.
type Fragment struct {
	Kind  model.BlockKind
	Nodes []*etree.Element
}

// Text returns the concatenated w:t content of the fragment, with w:br as
// newlines and w:tab as tabs.
func (f Fragment) Text() string {
	var out []byte
	for _, n := range f.Nodes {
		out = appendNodeText(out, n)
	}
	return string(out)
}

func appendNodeText(out []byte, el *etree.Element) []byte {
	switch el.FullTag() {
	case "w:t":
		return append(out, el.Text()...)
	case "w:br":
		if el.SelectAttrValue("w:type", "") == "" {
			return append(out, '\n')
		}
		return out
	case "w:tab":
		return append(out, '\t')
	}
	for _, c := range el.ChildElements() {
		out = appendNodeText(out, c)
	}
	return out
}
