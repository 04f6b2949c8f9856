package docx

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/tsawler/docweave/model"
	"github.com/tsawler/docweave/style"
)

// Fixed values for monospace blocks.
const (
	MonospaceFont   = "Courier New"
	MonospaceSizePt = 9
)

// tableStyleID is the built-in grid table style referenced by every table.
const tableStyleID = "TableGrid"

// Render dispatches block to its renderer. Rendering never fails for blocks
// that passed construction.
func Render(block model.Block, reg *style.Registry) Fragment {
	switch b := block.(type) {
	case model.Heading:
		return RenderHeading(b, reg)
	case model.Paragraph:
		return RenderParagraph(b, reg)
	case model.Table:
		return RenderTable(b, reg)
	case model.Monospace:
		return RenderMonospace(b)
	case model.PageBreak:
		return RenderPageBreak()
	default:
		return Fragment{Kind: model.KindUnknown}
	}
}

// RenderHeading renders a heading with its level's style, or the ambient
// default when no style is registered for the level. The run color is always
// black, whatever color the style carries.
func RenderHeading(h model.Heading, reg *style.Registry) Fragment {
	spec := reg.ResolveOrDefault(style.HeadingStyleName(h.Level))

	p := etree.NewElement("w:p")
	paragraphProps(p, spec, false)

	run := spec
	run.Color = style.Black
	r := p.CreateElement("w:r")
	runProps(r, run)
	appendText(r, h.Text)

	return Fragment{Kind: model.KindHeading, Nodes: []*etree.Element{p}}
}

// RenderParagraph renders each run with its own resolved style. Runs without
// a style take the paragraph style, then the registry default.
func RenderParagraph(para model.Paragraph, reg *style.Registry) Fragment {
	ambient := reg.ResolveOrDefault(para.StyleName)

	p := etree.NewElement("w:p")
	if para.StyleName != "" {
		paragraphProps(p, ambient, para.StyleName == style.ListBulletName)
	}
	appendRuns(p, para.Runs, ambient, reg)

	return Fragment{Kind: model.KindParagraph, Nodes: []*etree.Element{p}}
}

// RenderTable renders a fixed-border grid with one w:gridCol per column. The
// first row is not treated specially.
func RenderTable(t model.Table, reg *style.Registry) Fragment {
	cols := t.ColCount()
	colWidth := strconv.Itoa(textWidthTwips / cols)
	ambient := reg.Default()

	tbl := etree.NewElement("w:tbl")
	tblPr := tbl.CreateElement("w:tblPr")
	setVal(tblPr, "w:tblStyle", tableStyleID)
	tblW := tblPr.CreateElement("w:tblW")
	tblW.CreateAttr("w:w", "0")
	tblW.CreateAttr("w:type", "auto")
	tableBorders(tblPr.CreateElement("w:tblBorders"))
	layout := tblPr.CreateElement("w:tblLayout")
	layout.CreateAttr("w:type", "fixed")
	look := tblPr.CreateElement("w:tblLook")
	look.CreateAttr("w:val", "04A0")

	grid := tbl.CreateElement("w:tblGrid")
	for i := 0; i < cols; i++ {
		grid.CreateElement("w:gridCol").CreateAttr("w:w", colWidth)
	}

	for _, row := range t.Rows {
		tr := tbl.CreateElement("w:tr")
		for _, cell := range row {
			tc := tr.CreateElement("w:tc")
			tcW := tc.CreateElement("w:tcPr").CreateElement("w:tcW")
			tcW.CreateAttr("w:w", colWidth)
			tcW.CreateAttr("w:type", "dxa")

			// every cell needs a paragraph, even an empty one
			appendRuns(tc.CreateElement("w:p"), cell.Runs, ambient, reg)
		}
	}

	return Fragment{Kind: model.KindTable, Nodes: []*etree.Element{tbl}}
}

// RenderMonospace renders text in Courier New at 9pt for every script, so that
// diagrams keep their column alignment. Bold and color are set explicitly so
// the ambient style never leaks into the run.
func RenderMonospace(m model.Monospace) Fragment {
	p := etree.NewElement("w:p")
	r := p.CreateElement("w:r")

	rPr := r.CreateElement("w:rPr")
	fonts := rPr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", MonospaceFont)
	fonts.CreateAttr("w:hAnsi", MonospaceFont)
	fonts.CreateAttr("w:cs", MonospaceFont)
	fonts.CreateAttr("w:eastAsia", MonospaceFont)
	setVal(rPr, "w:b", "0")
	setVal(rPr, "w:bCs", "0")
	setVal(rPr, "w:color", style.Black.Hex())
	halfPoints := strconv.Itoa(MonospaceSizePt * 2)
	setVal(rPr, "w:sz", halfPoints)
	setVal(rPr, "w:szCs", halfPoints)

	appendText(r, m.Text)

	return Fragment{Kind: model.KindMonospace, Nodes: []*etree.Element{p}}
}

// RenderPageBreak renders an empty paragraph holding a page break.
func RenderPageBreak() Fragment {
	p := etree.NewElement("w:p")
	br := p.CreateElement("w:r").CreateElement("w:br")
	br.CreateAttr("w:type", "page")
	return Fragment{Kind: model.KindPageBreak, Nodes: []*etree.Element{p}}
}

func appendRuns(p *etree.Element, runs []model.Run, ambient style.StyleSpec, reg *style.Registry) {
	for _, run := range runs {
		spec := ambient
		if run.StyleName != "" {
			spec = reg.ResolveOrDefault(run.StyleName)
		}
		r := p.CreateElement("w:r")
		runProps(r, spec)
		appendText(r, run.Text)
	}
}

// paragraphProps writes w:pPr for spec. Element order follows CT_PPr.
func paragraphProps(p *etree.Element, spec style.StyleSpec, bullet bool) {
	pPr := p.CreateElement("w:pPr")
	setVal(pPr, "w:pStyle", spec.ID())
	if bullet {
		numPr := pPr.CreateElement("w:numPr")
		setVal(numPr, "w:ilvl", "0")
		setVal(numPr, "w:numId", bulletNumID)
	}
	if spec.Alignment != style.AlignLeft {
		setVal(pPr, "w:jc", spec.Alignment.String())
	}
}

// runProps writes w:rPr for spec. Element order follows CT_RPr.
func runProps(r *etree.Element, spec style.StyleSpec) {
	rPr := r.CreateElement("w:rPr")
	fonts := rPr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", spec.FontFamily)
	fonts.CreateAttr("w:hAnsi", spec.FontFamily)
	fonts.CreateAttr("w:cs", spec.FontFamily)
	if spec.Bold {
		rPr.CreateElement("w:b")
		rPr.CreateElement("w:bCs")
	}
	setVal(rPr, "w:color", spec.Color.Hex())
	halfPoints := strconv.Itoa(spec.HalfPoints())
	setVal(rPr, "w:sz", halfPoints)
	setVal(rPr, "w:szCs", halfPoints)
}

// tableBorders writes single-line borders on every edge. Order follows
// CT_TblBorders.
func tableBorders(el *etree.Element) {
	for _, edge := range []string{"w:top", "w:left", "w:bottom", "w:right", "w:insideH", "w:insideV"} {
		b := el.CreateElement(edge)
		b.CreateAttr("w:val", "single")
		b.CreateAttr("w:sz", "4")
		b.CreateAttr("w:space", "0")
		b.CreateAttr("w:color", "auto")
	}
}
