package font

import (
	"errors"
	"fmt"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("font: empty font data")

// LoadError is returned when a font file cannot be read or parsed.
// Catalog construction recovers from it by substituting an embedded face;
// it is surfaced only through diagnostics and debug logging.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("font: failed to load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NotFound records a font query the host font index could not satisfy.
// It is a diagnostic, not a failure: the catalog substitutes an embedded
// face and keeps going. The accumulated list is surfaced to the user.
type NotFound struct {
	Family string
	Weight int
	Style  string
}

func (e NotFound) Error() string {
	return fmt.Sprintf("font: %q (weight %d, style %s) not found", e.Family, e.Weight, e.Style)
}
