package style

// accent is the color Word assigns to its built-in heading styles.
var accent = RGB{0x2F, 0x54, 0x96}

// DefaultSheet returns the base style sheet: body text, title, subtitle,
// three heading levels, list styles and a bold character style.
func DefaultSheet() []StyleSpec {
	return []StyleSpec{
		DefaultBody,
		{Name: TitleName, FontFamily: "Calibri Light", SizePt: 28, Color: Black, Alignment: AlignCenter},
		{Name: SubtitleName, FontFamily: "Calibri", SizePt: 16, Color: RGB{0x59, 0x59, 0x59}, Alignment: AlignCenter},
		{Name: HeadingStyleName(1), FontFamily: "Calibri Light", SizePt: 16, Color: accent, Bold: true},
		{Name: HeadingStyleName(2), FontFamily: "Calibri Light", SizePt: 13, Color: accent, Bold: true},
		{Name: HeadingStyleName(3), FontFamily: "Calibri Light", SizePt: 12, Color: accent, Bold: true},
		{Name: ListBulletName, FontFamily: "Calibri", SizePt: 11, Color: Black},
		{Name: ListParagraphName, FontFamily: "Calibri", SizePt: 11, Color: Black},
		{Name: StrongName, FontFamily: "Calibri", SizePt: 11, Color: Black, Bold: true},
	}
}

// MergeSheet returns base with every override replacing the same-named base
// entry in place. Overrides with new names are appended in their given order.
func MergeSheet(base, overrides []StyleSpec) []StyleSpec {
	merged := make([]StyleSpec, len(base))
	copy(merged, base)

	index := make(map[string]int, len(merged))
	for i, spec := range merged {
		index[spec.Name] = i
	}
	for _, o := range overrides {
		if i, ok := index[o.Name]; ok {
			merged[i] = o
			continue
		}
		index[o.Name] = len(merged)
		merged = append(merged, o)
	}
	return merged
}
