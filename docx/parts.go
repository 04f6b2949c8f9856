package docx

import (
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/tsawler/docweave/style"
)

// part is a named XML part of the package.
type part struct {
	name string
	doc  *etree.Document
}

// parts builds every part of the package in write order.
func (p *Package) parts() []part {
	return []part{
		{partContentTypes, contentTypesPart()},
		{partRootRels, rootRelsPart()},
		{partCore, p.corePart()},
		{partApp, p.appPart()},
		{partDocument, p.documentPart()},
		{partStyles, p.stylesPart()},
		{partNumbering, numberingPart()},
		{partSettings, settingsPart()},
		{partDocumentRels, documentRelsPart()},
	}
}

func contentTypesPart() *etree.Document {
	doc := newPart()
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsTypes)

	for _, d := range [][2]string{{"rels", ctRels}, {"xml", ctXML}} {
		def := types.CreateElement("Default")
		def.CreateAttr("Extension", d[0])
		def.CreateAttr("ContentType", d[1])
	}
	for _, o := range [][2]string{
		{partDocument, ctDocument},
		{partStyles, ctStyles},
		{partNumbering, ctNumbering},
		{partSettings, ctSettings},
		{partCore, ctCore},
		{partApp, ctExtended},
	} {
		override := types.CreateElement("Override")
		override.CreateAttr("PartName", "/"+o[0])
		override.CreateAttr("ContentType", o[1])
	}
	return doc
}

func relationships(rels ...[2]string) *etree.Document {
	doc := newPart()
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsRels)
	for i, rel := range rels {
		r := root.CreateElement("Relationship")
		r.CreateAttr("Id", "rId"+strconv.Itoa(i+1))
		r.CreateAttr("Type", rel[0])
		r.CreateAttr("Target", rel[1])
	}
	return doc
}

func rootRelsPart() *etree.Document {
	return relationships(
		[2]string{relOfficeDocument, partDocument},
		[2]string{relCoreProps, partCore},
		[2]string{relExtendedProps, partApp},
	)
}

func documentRelsPart() *etree.Document {
	return relationships(
		[2]string{relStyles, "styles.xml"},
		[2]string{relNumbering, "numbering.xml"},
		[2]string{relSettings, "settings.xml"},
	)
}

func (p *Package) corePart() *etree.Document {
	m := p.metadata
	doc := newPart()
	cp := doc.CreateElement("cp:coreProperties")
	cp.CreateAttr("xmlns:cp", nsCP)
	cp.CreateAttr("xmlns:dc", nsDC)
	cp.CreateAttr("xmlns:dcterms", nsDCTerms)
	cp.CreateAttr("xmlns:dcmitype", nsDCMIType)
	cp.CreateAttr("xmlns:xsi", nsXSI)

	optional := func(tag, val string) {
		if val != "" {
			cp.CreateElement(tag).SetText(val)
		}
	}
	optional("dc:title", m.Title)
	optional("dc:subject", m.Subject)
	optional("dc:creator", m.Author)
	optional("cp:keywords", strings.Join(m.Keywords, ", "))
	optional("dc:description", m.Description)
	optional("cp:lastModifiedBy", m.Author)
	cp.CreateElement("cp:revision").SetText("1")
	if !m.Created.IsZero() {
		stamp := m.Created.UTC().Format(time.RFC3339)
		for _, tag := range []string{"dcterms:created", "dcterms:modified"} {
			el := cp.CreateElement(tag)
			el.CreateAttr("xsi:type", "dcterms:W3CDTF")
			el.SetText(stamp)
		}
	}
	return doc
}

func (p *Package) appPart() *etree.Document {
	doc := newPart()
	props := doc.CreateElement("Properties")
	props.CreateAttr("xmlns", nsExtended)
	props.CreateAttr("xmlns:vt", nsVT)
	props.CreateElement("Application").SetText("docweave")
	props.CreateElement("Paragraphs").SetText(strconv.Itoa(p.paragraphCount()))
	props.CreateElement("DocSecurity").SetText("0")
	return doc
}

func (p *Package) paragraphCount() int {
	n := 0
	for _, f := range p.fragments {
		for _, node := range f.Nodes {
			if node.FullTag() == "w:p" {
				n++
				continue
			}
			n += len(node.FindElements(".//w:p"))
		}
	}
	return n
}

// documentPart writes the fragments in order into the body, followed by the
// section properties.
func (p *Package) documentPart() *etree.Document {
	doc := newPart()
	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)

	body := root.CreateElement("w:body")
	for _, f := range p.fragments {
		for _, node := range f.Nodes {
			body.AddChild(node.Copy())
		}
	}

	sect := body.CreateElement("w:sectPr")
	pgSz := sect.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", strconv.Itoa(pageWidthTwips))
	pgSz.CreateAttr("w:h", strconv.Itoa(pageHeightTwips))
	margin := strconv.Itoa(pageMarginTwips)
	pgMar := sect.CreateElement("w:pgMar")
	for _, side := range []string{"w:top", "w:right", "w:bottom", "w:left"} {
		pgMar.CreateAttr(side, margin)
	}
	pgMar.CreateAttr("w:header", "720")
	pgMar.CreateAttr("w:footer", "720")
	pgMar.CreateAttr("w:gutter", "0")
	return doc
}

// stylesPart writes every registered style as a paragraph style, the ambient
// style as the document default, and the grid table style.
func (p *Package) stylesPart() *etree.Document {
	doc := newPart()
	root := doc.CreateElement("w:styles")
	root.CreateAttr("xmlns:w", nsW)

	rPrDefault := root.CreateElement("w:docDefaults").CreateElement("w:rPrDefault")
	runProps(rPrDefault, p.normal)

	specs := p.styles
	if !containsStyle(specs, p.normal.Name) {
		specs = append([]style.StyleSpec{p.normal}, specs...)
	}
	for _, spec := range specs {
		s := root.CreateElement("w:style")
		s.CreateAttr("w:type", "paragraph")
		if spec.Name == p.normal.Name {
			s.CreateAttr("w:default", "1")
		}
		s.CreateAttr("w:styleId", spec.ID())
		setVal(s, "w:name", spec.Name)
		if spec.Name != p.normal.Name {
			setVal(s, "w:basedOn", p.normal.ID())
		}
		s.CreateElement("w:qFormat")

		// CT_PPr order: keepNext, jc, outlineLvl.
		pPr := s.CreateElement("w:pPr")
		level, heading := headingLevel(spec.Name)
		if heading {
			pPr.CreateElement("w:keepNext")
		}
		if spec.Alignment != style.AlignLeft {
			setVal(pPr, "w:jc", spec.Alignment.String())
		}
		if heading {
			setVal(pPr, "w:outlineLvl", strconv.Itoa(level-1))
		}
		runProps(s, spec)
	}

	tbl := root.CreateElement("w:style")
	tbl.CreateAttr("w:type", "table")
	tbl.CreateAttr("w:styleId", tableStyleID)
	setVal(tbl, "w:name", "Table Grid")
	tableBorders(tbl.CreateElement("w:tblPr").CreateElement("w:tblBorders"))
	return doc
}

func containsStyle(specs []style.StyleSpec, name string) bool {
	for _, s := range specs {
		if s.Name == name {
			return true
		}
	}
	return false
}

// headingLevel reports the level of a "Heading N" style name.
func headingLevel(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "Heading ")
	if !ok {
		return 0, false
	}
	level, err := strconv.Atoi(rest)
	if err != nil || level < 1 || level > 9 {
		return 0, false
	}
	return level, true
}

// numberingPart defines the bullet list used by "List Bullet" paragraphs.
func numberingPart() *etree.Document {
	doc := newPart()
	root := doc.CreateElement("w:numbering")
	root.CreateAttr("xmlns:w", nsW)

	abstract := root.CreateElement("w:abstractNum")
	abstract.CreateAttr("w:abstractNumId", "0")
	setVal(abstract, "w:multiLevelType", "singleLevel")

	lvl := abstract.CreateElement("w:lvl")
	lvl.CreateAttr("w:ilvl", "0")
	setVal(lvl, "w:start", "1")
	setVal(lvl, "w:numFmt", "bullet")
	setVal(lvl, "w:lvlText", "•")
	setVal(lvl, "w:lvlJc", "left")
	ind := lvl.CreateElement("w:pPr").CreateElement("w:ind")
	ind.CreateAttr("w:left", strconv.Itoa(bulletIndentLeft))
	ind.CreateAttr("w:hanging", strconv.Itoa(bulletHanging))

	num := root.CreateElement("w:num")
	num.CreateAttr("w:numId", bulletNumID)
	setVal(num, "w:abstractNumId", "0")
	return doc
}

func settingsPart() *etree.Document {
	doc := newPart()
	root := doc.CreateElement("w:settings")
	root.CreateAttr("xmlns:w", nsW)
	setVal(root, "w:defaultTabStop", "720")
	setVal(root, "w:characterSpacingControl", "doNotCompress")
	compat := root.CreateElement("w:compat")
	setting := compat.CreateElement("w:compatSetting")
	setting.CreateAttr("w:name", "compatibilityMode")
	setting.CreateAttr("w:uri", "http://schemas.microsoft.com/office/word")
	setting.CreateAttr("w:val", "15")
	return doc
}
