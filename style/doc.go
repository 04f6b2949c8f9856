// Package style provides the named style registry used when assembling documents.
//
// A [StyleSpec] is a flat, fully specified bundle of font family, size, colour,
// weight and alignment. There is no inheritance between styles: every block that
// asks for a style by name receives exactly the bundle registered under that name.
//
//	reg := style.NewRegistry()
//	if err := style.RegisterAll(reg, style.DefaultSheet()...); err != nil {
//	    // handle error
//	}
//	body := reg.Default()
//	h1, err := reg.Resolve(style.HeadingStyleName(1))
//
// Registration happens once, before rendering. The assembler seals the registry,
// after which it is read-only.
package style
