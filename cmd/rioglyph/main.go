// Command rioglyph builds a font catalog, lays out a line of text and
// dumps the resulting draw primitives. It exists to inspect font
// resolution and compositor geometry without a GPU backend attached.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	sugarloaf "github.com/Atan-D-RP4/rio"
	"github.com/Atan-D-RP4/rio/compositor"
	"github.com/Atan-D-RP4/rio/font"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		text       string
		family     string
		cellWidth  float32
		cellHeight float32
		fontSize   float32
		lineHeight float32
		useSystem  bool
		listFaces  bool
		verbose    bool
	)

	pflag.StringVarP(&text, "text", "t", "Hello, Rio! 😀", "Text to lay out")
	pflag.StringVarP(&family, "family", "f", "", "Font family override")
	pflag.Float32Var(&cellWidth, "cell-width", 9, "Cell width in px")
	pflag.Float32Var(&cellHeight, "cell-height", 18, "Cell height in px")
	pflag.Float32Var(&fontSize, "font-size", 16, "Font size in px")
	pflag.Float32Var(&lineHeight, "line-height", 1.0, "Line height multiplier")
	pflag.BoolVar(&useSystem, "system", false, "Query the system font index (default: embedded faces only)")
	pflag.BoolVarP(&listFaces, "list", "l", false, "List catalog slots and exit")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pflag.Parse()

	if verbose {
		sugarloaf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var idx font.Index
	if useSystem {
		sys, err := font.NewSystemIndex("")
		if err != nil {
			fmt.Fprintln(os.Stderr, "rioglyph:", err)
			return 1
		}
		idx = sys
	}

	spec := font.DefaultSpec()
	spec.Family = family

	catalog := font.Build(spec, idx)
	for _, miss := range catalog.NotFound() {
		fmt.Fprintln(os.Stderr, "rioglyph: warning:", miss.Error())
	}

	if listFaces {
		for i := 0; i < catalog.Len(); i++ {
			src := catalog.Face(font.Slot(i))
			fmt.Printf("%2d  %-24s weight=%d italic=%v\n",
				i, src.Name(), src.Attributes().Weight, src.Attributes().Italic)
		}
		for _, ref := range catalog.LazyRefs() {
			fmt.Printf(" *  lazy emoji=%v  %s\n", ref.IsEmoji, ref.Path)
		}
		return 0
	}

	resolver := font.NewResolver(font.NewLibrary(catalog))
	comp := compositor.New(resolver, compositor.Layout{
		Width:      cellWidth * 200,
		Height:     cellHeight * 50,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Scale:      1,
		FontSize:   fontSize,
		LineHeight: lineHeight,
	})

	line := compositor.LineFromString(text,
		sugarloaf.RGB(1, 1, 1), sugarloaf.RGB(0, 0, 0))
	comp.Update(&line)

	fmt.Printf("rects (%d):\n", len(comp.Rects()))
	for _, r := range comp.Rects() {
		fmt.Printf("  pos=(%.1f, %.1f) size=(%.1f, %.1f)\n",
			r.Position[0], r.Position[1], r.Size[0], r.Size[1])
	}

	fmt.Printf("sections (%d):\n", len(comp.Sections()))
	for _, s := range comp.Sections() {
		fmt.Printf("  %-8s pos=(%.1f, %.1f) scale=(%.1f, %.1f) %q\n",
			s.Slot, s.ScreenPosition[0], s.ScreenPosition[1],
			s.Scale.X, s.Scale.Y, s.Text)
	}

	return 0
}
