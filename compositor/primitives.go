package compositor

import (
	sugarloaf "github.com/Atan-D-RP4/rio"
	"github.com/Atan-D-RP4/rio/font"
)

// PxScale is an explicit pixel scale for a glyph run. Slots that render
// glyphs wider or narrower than the text cell (symbol, emoji) carry an
// override so they stay visually aligned with the grid.
type PxScale struct {
	X, Y float32
}

// Rect is a filled rectangle: cell backgrounds, cursor overlays and
// decorations all lower to it. Rects are recreated on every line update
// and consumed immediately by the rendering backend; they have no
// long-lived identity.
type Rect struct {
	Position [2]float32
	Color    sugarloaf.RGBA
	Size     [2]float32
}

// GlyphSection is one positioned glyph run: the text to shape, the slot of
// the face to shape it with, its pixel scale and color. Vertical alignment
// is bottom, horizontal alignment is left; Bounds clip the run to the
// layout area. Like Rect it is rebuilt every update and never mutated in
// place.
type GlyphSection struct {
	ScreenPosition [2]float32
	Bounds         [2]float32
	Text           string
	Slot           font.Slot
	Synth          font.Synthesis
	Scale          PxScale
	Color          sugarloaf.RGBA
}
