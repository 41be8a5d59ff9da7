package compositor

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/Atan-D-RP4/rio/font"
)

// charCacheLimit bounds the per-character render-info cache.
const charCacheLimit = 1024

// Layout is the geometry configuration a compositor lays lines out with.
type Layout struct {
	// Width and Height bound glyph sections (the drawable area in px).
	Width, Height float32
	// CellWidth and CellHeight are the terminal cell dimensions in px.
	CellWidth, CellHeight float32
	// Scale is the device scale factor.
	Scale float32
	// FontSize positions baseline-relative decorations.
	FontSize float32
	// LineHeight is the line-height multiplier applied when advancing to
	// the next row.
	LineHeight float32
	// ScreenPosition offsets every line on screen.
	ScreenPosition [2]float32
}

// CellRenderInfo is the per-character metadata cached between updates:
// the style-less resolved slot, the measured display width in terminal
// columns, and an explicit pixel scale for slots that render at
// non-default size. It is keyed by character only; style-dependent slot
// choices are recomputed on every pass and never cached here.
type CellRenderInfo struct {
	Slot     font.Slot
	Synth    font.Synthesis
	Width    int
	Scale    PxScale
	HasScale bool
	// Resolved is false when no loaded face covers the character; the
	// section is still emitted and the backend draws a missing-glyph box.
	Resolved bool
}

// Compositor consumes grid lines and produces draw primitives. It keeps a
// per-character cache as an optimization only: layout output is correct
// even if the cache is cleared between every call.
//
// Compositor is driven by a single render thread and is NOT safe for
// concurrent use.
type Compositor struct {
	resolver *font.Resolver
	layout   Layout

	cache *Cache[rune, CellRenderInfo]

	rects    []Rect
	sections []GlyphSection

	textY      float32
	currentRow int
}

// New creates a compositor over the given resolver and layout.
func New(resolver *font.Resolver, layout Layout) *Compositor {
	return &Compositor{
		resolver: resolver,
		layout:   layout,
		cache:    NewCache[rune, CellRenderInfo](charCacheLimit),
	}
}

// Layout returns the current layout configuration.
func (c *Compositor) Layout() Layout { return c.layout }

// SetLayout replaces the layout configuration and clears the
// per-character cache, whose scale overrides depend on cell dimensions.
func (c *Compositor) SetLayout(l Layout) {
	c.layout = l
	c.ClearCharCache()
}

// Rects returns the accumulated rectangles for the current pass.
func (c *Compositor) Rects() []Rect { return c.rects }

// Sections returns the accumulated glyph sections for the current pass.
func (c *Compositor) Sections() []GlyphSection { return c.sections }

// Reset clears the per-character cache and all accumulated state.
// Use it when fonts or configuration changed and cached slot choices may
// be stale.
func (c *Compositor) Reset() {
	c.ClearCharCache()
	c.Clean()
}

// Clean discards the accumulated primitives and zeroes the row/y-cursor
// state, keeping the per-character cache.
func (c *Compositor) Clean() {
	c.rects = c.rects[:0]
	c.sections = c.sections[:0]
	c.currentRow = 0
	c.textY = 0
}

// ClearCharCache drops the per-character render-info cache. It is keyed by
// character only, so it must be cleared whenever font assignment changes.
func (c *Compositor) ClearCharCache() {
	c.cache.Clear()
}

// Update lays out one grid line, appending its background rects, overlay
// rects and glyph sections, then advances the y-cursor by one line height.
func (c *Compositor) Update(line *Line) {
	var x float32
	modPosY := c.layout.ScreenPosition[1]
	modTextY := c.layout.CellHeight

	cellX := c.layout.CellWidth
	cellWidth := c.layout.CellWidth * c.layout.Scale * 2
	unscaledHeight := c.layout.CellHeight / c.layout.Scale

	if c.textY == 0 {
		c.textY = c.layout.ScreenPosition[1]
	}

	for i := 0; i < line.Acc && i < len(line.Cells); i++ {
		cell := &line.Cells[i]

		addPosX := cellX
		charWidth := float32(1)
		rectPosX := c.layout.ScreenPosition[0] + x

		info := c.renderInfo(cell.Content)

		slot := info.Slot
		synth := info.Synth
		// Style-aware slot choice is never cached: the bold/italic faces
		// are authoritative for styled cells, but only when the character
		// itself resolved to the regular text face.
		if slot == font.SlotRegular && (cell.Bold || cell.Italic) {
			slot, synth, _ = c.resolver.Resolve(font.ClusterFromRune(cell.Content), cell.style())
		}

		if info.Width > 1 {
			charWidth = float32(info.Width)
			addPosX += cellX
		}

		scale := PxScale{X: c.layout.CellHeight, Y: c.layout.CellHeight}
		if info.HasScale {
			scale = info.Scale
		}

		rectPosY := c.textY + modPosY
		widthBound := cellWidth * charWidth
		quantity := float32(cell.Repeated + 1)

		text := string(cell.Content)
		if cell.Repeated > 0 {
			// The run is drawn once with the character repeated; glyphs are
			// not re-shaped per column. Valid for monospace single-codepoint
			// repeats, which is the only thing the grid producer compresses.
			text = strings.Repeat(text, cell.Repeated+1)
		}

		sectionPosX := rectPosX
		sectionPosY := modTextY + c.textY + modPosY

		c.sections = append(c.sections, GlyphSection{
			ScreenPosition: [2]float32{sectionPosX, sectionPosY},
			Bounds:         [2]float32{c.layout.Width, c.layout.Height},
			Text:           text,
			Slot:           slot,
			Synth:          synth,
			Scale:          scale,
			Color:          cell.Foreground,
		})

		scaledRectPosX := sectionPosX / c.layout.Scale
		scaledRectPosY := rectPosY / c.layout.Scale

		c.rects = append(c.rects, Rect{
			Position: [2]float32{scaledRectPosX, scaledRectPosY},
			Color:    cell.Background,
			Size:     [2]float32{widthBound * quantity, unscaledHeight},
		})

		switch cell.Cursor {
		case CursorBlock:
			c.rects = append(c.rects, Rect{
				Position: [2]float32{scaledRectPosX, scaledRectPosY},
				Color:    cell.CursorColor,
				Size:     [2]float32{widthBound * quantity, unscaledHeight},
			})
		case CursorCaret:
			c.rects = append(c.rects, Rect{
				Position: [2]float32{scaledRectPosX, scaledRectPosY},
				Color:    cell.CursorColor,
				Size:     [2]float32{widthBound * 0.02 * quantity, unscaledHeight},
			})
		case CursorUnderline:
			decPosY := scaledRectPosY + c.layout.FontSize - 2.5
			c.rects = append(c.rects, Rect{
				Position: [2]float32{scaledRectPosX, decPosY},
				Color:    cell.CursorColor,
				Size:     [2]float32{widthBound * 0.1 * quantity, unscaledHeight},
			})
		case CursorNone:
		}

		switch cell.Decoration {
		case DecorationUnderline:
			decPosY := scaledRectPosY + c.layout.FontSize - 1
			c.rects = append(c.rects, Rect{
				Position: [2]float32{scaledRectPosX, decPosY},
				Color:    cell.Foreground,
				Size:     [2]float32{widthBound * quantity, unscaledHeight * 0.025},
			})
		case DecorationStrikethrough:
			decPosY := scaledRectPosY + c.layout.FontSize/2
			c.rects = append(c.rects, Rect{
				Position: [2]float32{scaledRectPosX, decPosY},
				Color:    cell.Foreground,
				Size:     [2]float32{widthBound * quantity, unscaledHeight * 0.025},
			})
		case DecorationNone:
		}

		x += addPosX * quantity
	}

	c.currentRow++
	c.textY += c.layout.CellHeight * c.layout.LineHeight
}

// renderInfo looks up (or computes and caches) the per-character metadata:
// display width, style-less font slot and pixel-scale override.
func (c *Compositor) renderInfo(r rune) CellRenderInfo {
	return c.cache.GetOrCreate(r, func() CellRenderInfo {
		info := CellRenderInfo{Width: runeWidth(r)}

		slot, synth, ok := c.resolver.Resolve(font.ClusterFromRune(r), font.Style{})
		if !ok {
			// No face covers the character; keep the regular slot so the
			// backend renders its missing-glyph box.
			slot = font.SlotRegular
		}
		info.Slot = slot
		info.Synth = synth
		info.Resolved = ok

		cat := c.resolver.Catalog()
		switch {
		case c.resolver.IsEmojiSlot(slot):
			// Emoji render double-wide to fill both columns.
			info.Scale = PxScale{X: c.layout.CellWidth * 2, Y: c.layout.CellHeight}
			info.HasScale = true
		case slot == cat.SymbolSlot():
			info.Scale = PxScale{
				X: c.layout.CellWidth * float32(info.Width),
				Y: c.layout.CellHeight,
			}
			info.HasScale = true
		}
		return info
	})
}

// runeWidth measures the display width of a character in terminal columns
// per Unicode east-asian-width rules.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
