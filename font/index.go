package font

import "strings"

// Location identifies a font file on disk as reported by the host font
// index: a path plus the face index within the container for collections.
type Location struct {
	Path  string
	Index int
}

// Index is the only entry point this package needs from the host font
// index: a family/weight/style query answering with a source location.
// A false return is non-fatal; the catalog substitutes an embedded face
// and records a diagnostic.
type Index interface {
	Query(family string, weight int, italic bool) (Location, bool)
}

// MapIndex is an in-memory Index keyed by lowercase family name.
// It ignores weight and style, answering any query for a known family
// with the registered location. Intended for tests and fixed setups.
type MapIndex map[string]Location

// Query implements Index.
func (m MapIndex) Query(family string, _ int, _ bool) (Location, bool) {
	loc, ok := m[strings.ToLower(family)]
	return loc, ok
}
