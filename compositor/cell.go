// Package compositor turns styled grid lines into draw primitives:
// background rectangles, cursor and decoration overlays, and positioned
// glyph-run sections ready for the GPU text backend.
package compositor

import (
	sugarloaf "github.com/Atan-D-RP4/rio"
	"github.com/Atan-D-RP4/rio/font"
)

// CursorKind selects the cursor overlay drawn over a cell.
type CursorKind uint8

const (
	// CursorNone draws no cursor.
	CursorNone CursorKind = iota
	// CursorBlock fills the whole cell.
	CursorBlock
	// CursorCaret draws a thin vertical bar at the cell's left edge.
	CursorCaret
	// CursorUnderline draws a thin bar near the text baseline.
	CursorUnderline
)

// Decoration selects the text decoration drawn over a cell.
type Decoration uint8

const (
	// DecorationNone draws no decoration.
	DecorationNone Decoration = iota
	// DecorationUnderline draws a bar near the baseline.
	DecorationUnderline
	// DecorationStrikethrough draws a bar at mid-cell height.
	DecorationStrikethrough
)

// Cell is one styled grid cell. Repeated is a run-length compression: a
// cell with Repeated == n stands for n+1 identical cells spanning n+1
// columns, rendered as one entry.
type Cell struct {
	Content  rune
	Repeated int

	Foreground sugarloaf.RGBA
	Background sugarloaf.RGBA

	Bold   bool
	Italic bool

	Decoration Decoration

	Cursor      CursorKind
	CursorColor sugarloaf.RGBA
}

// style derives the font style request from the cell's flags.
// Bold-italic takes precedence over either alone.
func (c Cell) style() font.Style {
	return font.Style{Bold: c.Bold, Italic: c.Italic}
}

// Line is one grid line to lay out. Acc counts the live cells; trailing
// entries past Acc are ignored, which lets callers reuse backing arrays.
type Line struct {
	Cells []Cell
	Acc   int
}

// Push appends a live cell.
func (l *Line) Push(c Cell) {
	l.Cells = append(l.Cells, c)
	l.Acc++
}

// LineFromString builds a line from plain text, one cell per grapheme
// cluster, with the given colors and no styling. The cell model stores a
// single codepoint, so a multi-codepoint cluster contributes its base
// codepoint only.
func LineFromString(text string, fg, bg sugarloaf.RGBA) Line {
	var line Line
	for _, cluster := range font.SplitClusters(text) {
		runes := cluster.Runes()
		if len(runes) == 0 {
			continue
		}
		line.Push(Cell{
			Content:    runes[0],
			Foreground: fg,
			Background: bg,
		})
	}
	return line
}
