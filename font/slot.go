// Package font resolves character clusters to concrete font faces.
//
// A Catalog holds the ordered faces loaded for a session: the four style
// faces (regular, italic, bold, bold italic), a configurable fallback chain,
// user extras and a trailing symbol face. Emoji fallbacks are registered as
// lazy references and only read from disk on first use.
//
// A Resolver sits on top of a Library (the atomically-swappable catalog
// handle) and answers "which slot draws this cluster in this style". Each
// render context owns its own Resolver; resolvers never share state.
package font

import "strconv"

// Slot is the stable integer identity by which a resolved face is referenced
// throughout the pipeline. Slots 0-3 are always present; later slots are
// populated in catalog load order and never renumbered within a session.
type Slot int

const (
	// SlotRegular is the primary text face.
	SlotRegular Slot = 0
	// SlotItalic is the italic face.
	SlotItalic Slot = 1
	// SlotBold is the bold face.
	SlotBold Slot = 2
	// SlotBoldItalic is the bold italic face.
	SlotBoldItalic Slot = 3
)

// String returns the string representation of the slot.
func (s Slot) String() string {
	switch s {
	case SlotRegular:
		return "Regular"
	case SlotItalic:
		return "Italic"
	case SlotBold:
		return "Bold"
	case SlotBoldItalic:
		return "BoldItalic"
	default:
		return "Slot(" + strconv.Itoa(int(s)) + ")"
	}
}
