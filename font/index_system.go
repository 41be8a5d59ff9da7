package font

import (
	"fmt"
	"io"
	"log"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"

	sugarloaf "github.com/Atan-D-RP4/rio"
)

// SystemIndex answers font queries against the platform font directories,
// backed by go-text's fontscan. Building the index walks the system font
// folders once (with an on-disk cache); queries afterwards are in-memory.
//
// SystemIndex is safe for concurrent use.
type SystemIndex struct {
	mu sync.Mutex
	fm *fontscan.FontMap
}

// NewSystemIndex scans the system fonts and returns a queryable index.
// cacheDir is handed to fontscan for its footprint cache; empty selects
// the platform default cache directory.
func NewSystemIndex(cacheDir string) (*SystemIndex, error) {
	fm := fontscan.NewFontMap(log.New(io.Discard, "", 0))
	if err := fm.UseSystemFonts(cacheDir); err != nil {
		return nil, fmt.Errorf("font: system font scan failed: %w", err)
	}
	return &SystemIndex{fm: fm}, nil
}

// Query implements Index. It resolves the family at the requested weight
// and slant to a concrete font file location.
func (ix *SystemIndex) Query(family string, weight int, italic bool) (Location, bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	// Family existence check first: ResolveFace below always falls back to
	// some face, which would turn "not found" into a silent substitution.
	loc, ok := ix.fm.FindSystemFont(family)
	if !ok {
		return Location{}, false
	}

	aspect := gotext.Aspect{Style: gotext.StyleNormal, Weight: gotext.Weight(weight)}
	if italic {
		aspect.Style = gotext.StyleItalic
	}
	ix.fm.SetQuery(fontscan.Query{
		Families: []string{family},
		Aspect:   aspect,
	})

	if face := ix.fm.ResolveFace('A'); face != nil {
		if refined := ix.fm.FontLocation(face.Font); refined.File != "" {
			sugarloaf.Logger().Debug("font query resolved",
				"family", family, "weight", weight, "italic", italic,
				"path", refined.File)
			return Location{Path: refined.File, Index: int(refined.Index)}, true
		}
	}

	return Location{Path: loc.File, Index: int(loc.Index)}, true
}
