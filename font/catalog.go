package font

import (
	"sync/atomic"

	sugarloaf "github.com/Atan-D-RP4/rio"
)

// LazyRef is a face deliberately not loaded at catalog-build time to bound
// memory. It is promoted to a FontSource on first use by a resolver.
type LazyRef struct {
	Path    string
	IsEmoji bool
}

// Catalog is the ordered collection of loaded faces for one font
// configuration. It is immutable once built: a configuration change builds
// a whole new catalog and swaps it into the Library, so concurrent readers
// never observe a half-updated state.
//
// Slot order is stable for the catalog's lifetime and slots 0-3 always
// resolve to some face: the embedded default substitutes for any face the
// host index cannot provide.
type Catalog struct {
	faces    []*FontSource
	lazy     []LazyRef
	notFound []NotFound
}

// Build loads a catalog in fixed order: the four style faces, then the
// fallback chain (emoji families registered lazily), then user extras,
// then the embedded symbol face as the last slot.
//
// idx may be nil, in which case every face comes from the embedded set.
// Build never fails; query and parse failures substitute embedded faces
// and accumulate diagnostics.
func Build(spec Spec, idx Index) *Catalog {
	c := &Catalog{}

	if spec.Family != "" {
		spec.Regular.Family = spec.Family
		spec.Italic.Family = spec.Family
		spec.Bold.Family = spec.Family
		spec.BoldItalic.Family = spec.Family
	}

	c.push(findFont(idx, spec.Regular, &c.notFound))
	c.push(findFont(idx, spec.Italic, &c.notFound))
	c.push(findFont(idx, spec.Bold, &c.notFound))
	c.push(findFont(idx, spec.BoldItalic, &c.notFound))

	for _, family := range spec.Fallbacks {
		if isEmojiFamily(family) {
			// Emoji faces are large; keep only the path and load on first hit.
			if idx != nil {
				if loc, ok := idx.Query(family, 400, false); ok {
					c.lazy = append(c.lazy, LazyRef{Path: loc.Path, IsEmoji: true})
				}
			}
			continue
		}
		c.push(findFont(idx, StyleSpec{Family: family}, &c.notFound))
	}

	for _, extra := range spec.Extras {
		c.push(findFont(idx, extra, &c.notFound))
	}

	data, attrs := embeddedSymbol()
	c.push(mustEmbedded(data, attrs, attrs))

	sugarloaf.Logger().Info("font catalog built",
		"faces", len(c.faces), "lazy", len(c.lazy), "missing", len(c.notFound))

	return c
}

// push appends a face as the next slot.
func (c *Catalog) push(src *FontSource) {
	c.faces = append(c.faces, src)
}

// Len returns the number of loaded faces.
func (c *Catalog) Len() int { return len(c.faces) }

// Face returns the face at the slot, or nil if the slot is out of range.
func (c *Catalog) Face(slot Slot) *FontSource {
	if slot < 0 || int(slot) >= len(c.faces) {
		return nil
	}
	return c.faces[slot]
}

// SymbolSlot returns the slot of the trailing symbol face.
func (c *Catalog) SymbolSlot() Slot { return Slot(len(c.faces) - 1) }

// LazyRefs returns the registered lazy face references.
func (c *Catalog) LazyRefs() []LazyRef { return c.lazy }

// NotFound returns the diagnostics accumulated during Build, for the host
// to surface to the user. They never abort rendering.
func (c *Catalog) NotFound() []NotFound { return c.notFound }

// RawFaces returns the ordered raw font buffers, handed once to the
// rendering backend so its shaping layer can map slots to faces.
func (c *Catalog) RawFaces() [][]byte {
	raw := make([][]byte, len(c.faces))
	for i, f := range c.faces {
		raw[i] = f.Data()
	}
	return raw
}

// findFont resolves one style request: query the host index, read and parse
// the matched file, and on any failure fall back to the embedded face while
// recording a diagnostic for requests that named a real family.
func findFont(idx Index, spec StyleSpec, diags *[]NotFound) *FontSource {
	requested := spec.attributes()
	logger := sugarloaf.Logger()

	if spec.Family != "" && idx != nil {
		if loc, ok := idx.Query(spec.Family, requested.Weight, requested.Italic); ok {
			src, err := NewFontSourceFromFile(loc.Path, requested, requested)
			if err == nil {
				logger.Debug("font found",
					"family", spec.Family, "weight", requested.Weight,
					"italic", requested.Italic, "path", loc.Path)
				return src
			}
			logger.Warn("font file unusable", "family", spec.Family,
				"path", loc.Path, "err", err)
		} else {
			logger.Warn("font not found", "family", spec.Family,
				"weight", requested.Weight, "italic", requested.Italic)
		}
		style := "normal"
		if requested.Italic {
			style = "italic"
		}
		*diags = append(*diags, NotFound{
			Family: spec.Family,
			Weight: requested.Weight,
			Style:  style,
		})
	}

	data, attrs := embeddedFallback(requested.Weight, requested.Italic)
	return mustEmbedded(data, attrs, requested)
}

// Library is the shared, atomically-swappable handle to the current
// catalog. Readers load a consistent snapshot; Swap publishes a rebuilt
// catalog wholesale. Resolvers that cached faces from an older snapshot
// keep them alive until their own caches drop them.
type Library struct {
	ptr atomic.Pointer[Catalog]
}

// NewLibrary creates a library holding the given catalog.
func NewLibrary(c *Catalog) *Library {
	l := &Library{}
	l.ptr.Store(c)
	return l
}

// Catalog returns the current catalog snapshot.
func (l *Library) Catalog() *Catalog { return l.ptr.Load() }

// Swap atomically replaces the current catalog and returns the previous
// one. In-flight readers of the old snapshot are unaffected.
func (l *Library) Swap(c *Catalog) *Catalog { return l.ptr.Swap(c) }
