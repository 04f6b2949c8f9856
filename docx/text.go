package docx

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/unicode/norm"
)

// appendText writes text into run r. Newlines become w:br and tabs w:tab so
// that multi-line content keeps its shape; whitespace is preserved.
func appendText(r *etree.Element, text string) {
	text = sanitizeText(text)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			r.CreateElement("w:br")
		}
		for j, seg := range strings.Split(line, "\t") {
			if j > 0 {
				r.CreateElement("w:tab")
			}
			if seg == "" {
				continue
			}
			t := r.CreateElement("w:t")
			t.CreateAttr("xml:space", "preserve")
			t.SetText(seg)
		}
	}
}

// sanitizeText normalizes text to NFC, folds CRLF to LF and drops characters
// that XML 1.0 cannot carry.
func sanitizeText(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n':
			return r
		case r == '\r':
			return '\n'
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return -1
		case r >= 0xD800 && r <= 0xDFFF:
			return -1
		}
		return r
	}, text)
}
