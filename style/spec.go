package style

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Alignment represents paragraph alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment parses "left", "center" or "right" (case-insensitive).
// An empty string is left alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("unknown alignment %q", s)
	}
}

// RGB represents an RGB color.
type RGB struct {
	R, G, B uint8
}

// Black is the color forced onto every heading run.
var Black = RGB{0, 0, 0}

// Hex returns the color as six upper-case hex digits, the form used by w:color.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseColor parses "#RRGGBB", "RRGGBB" or an SVG color name such as "navy".
func ParseColor(s string) (RGB, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return RGB{}, errors.New("empty color")
	}
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return RGB{c.R, c.G, c.B}, nil
	}
	v = strings.TrimPrefix(v, "#")
	if len(v) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q", s)
	}
	b, err := hex.DecodeString(v)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{b[0], b[1], b[2]}, nil
}

// StyleSpec is a named, flat bundle of font, color and alignment attributes.
// A spec is immutable once registered; the registry hands out copies.
type StyleSpec struct {
	Name       string
	FontFamily string
	SizePt     float64
	Color      RGB
	Bold       bool
	Alignment  Alignment
}

// Validate reports whether the spec is fully specified.
func (s StyleSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("style name is empty")
	}
	if strings.TrimSpace(s.FontFamily) == "" {
		return fmt.Errorf("style %q: font family is empty", s.Name)
	}
	if s.SizePt <= 0 {
		return fmt.Errorf("style %q: size %.1fpt must be positive", s.Name, s.SizePt)
	}
	return nil
}

// HalfPoints returns the size in half-points, the unit of w:sz.
func (s StyleSpec) HalfPoints() int {
	return int(s.SizePt*2 + 0.5)
}

// ID returns the identifier used for the style in styles.xml ("Heading 1" -> "Heading1").
func (s StyleSpec) ID() string {
	return StyleID(s.Name)
}

// StyleID converts a display name to a style identifier by dropping spaces.
func StyleID(name string) string {
	return strings.ReplaceAll(name, " ", "")
}
