// Package docx renders documents from the model package into WordprocessingML
// (DOCX) packages and writes them to disk.
//
// The pipeline has three stages:
//
//   - Render: one pure renderer per block kind turns a block into a [Fragment]
//     of body-level XML elements.
//   - Assemble: the [Assembler] walks a document's blocks in order and collects
//     their fragments into a [Package].
//   - Serialize: [Serialize] writes the package as a zip archive in one step.
//
// Basic usage:
//
//	pkg := docx.Assemble(doc)
//	if err := docx.Serialize(pkg, "report.docx"); err != nil {
//	    // handle error
//	}
//
// Two style overrides are applied unconditionally. Heading runs are always
// black regardless of the heading style's color, and monospace blocks are
// always Courier New at 9pt.
//
// Output is deterministic: the same document always produces the same bytes.
package docx
