package font

import "strings"

// StyleSpec requests one face from the host font index.
// An empty Family means "use the embedded default face".
type StyleSpec struct {
	Family string
	// Weight is the numeric weight to query for; 0 means 400.
	Weight int
	// Style is "normal" or "italic". Empty means "normal".
	Style string
}

// weight returns the effective query weight.
func (s StyleSpec) weight() int {
	if s.Weight == 0 {
		return 400
	}
	return s.Weight
}

// italic reports whether the spec asks for a slanted face.
func (s StyleSpec) italic() bool {
	return strings.EqualFold(s.Style, "italic")
}

// attributes returns the attributes the spec requests.
func (s StyleSpec) attributes() Attributes {
	return Attributes{Weight: s.weight(), Italic: s.italic()}
}

// Spec is the font configuration surface consumed by Build. It is owned
// and loaded elsewhere; this package only reads it.
type Spec struct {
	// Family, when non-empty, overwrites the family of all four style
	// requests below.
	Family string

	Regular    StyleSpec
	Italic     StyleSpec
	Bold       StyleSpec
	BoldItalic StyleSpec

	// Extras are user-configured additional faces, loaded after the
	// fallback chain.
	Extras []StyleSpec

	// Fallbacks is the ordered list of fallback family names searched when
	// the style faces lack a glyph. Families whose name marks them as emoji
	// fonts are registered lazily instead of being loaded eagerly.
	Fallbacks []string
}

// DefaultSpec returns the default font configuration: embedded style faces,
// the standard fallback chain and no extras.
func DefaultSpec() Spec {
	return Spec{
		Regular:    StyleSpec{Weight: 400, Style: "normal"},
		Italic:     StyleSpec{Weight: 400, Style: "italic"},
		Bold:       StyleSpec{Weight: 800, Style: "normal"},
		BoldItalic: StyleSpec{Weight: 800, Style: "italic"},
		Fallbacks:  defaultFallbacks(),
	}
}

// defaultFallbacks returns the standard fallback family chain.
func defaultFallbacks() []string {
	return []string{
		"Noto Sans Symbols",
		"Noto Sans Symbols 2",
		"Noto Color Emoji",
	}
}

// isEmojiFamily reports whether a fallback family should be treated as an
// emoji font and loaded lazily. Emoji fonts tend to be an order of
// magnitude larger than monospace text faces, so they are not worth
// keeping resident between bursts of use.
func isEmojiFamily(family string) bool {
	return strings.Contains(family, "Emoji")
}
