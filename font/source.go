package font

import (
	"fmt"
	"os"
	"sync/atomic"

	"golang.org/x/image/font/sfnt"
)

// CacheKey uniquely identifies a parsed face within the process.
// Two FontSources are the same face if and only if their keys match;
// the underlying byte buffers are never compared.
type CacheKey uint64

// nextCacheKey hands out process-unique cache keys.
var nextCacheKey atomic.Uint64

// Attributes are the style attributes a face was loaded for.
type Attributes struct {
	// Weight is the CSS-style numeric weight (400 normal, 700 bold).
	Weight int
	// Italic reports whether the face is slanted.
	Italic bool
}

// Synthesis describes the algorithmic adjustments a renderer must apply
// when a face does not truly carry the requested style: fake bolding by
// stroke emboldening and fake italics by skewing.
type Synthesis struct {
	// Embolden requests synthetic bolding.
	Embolden bool
	// SkewX is the horizontal shear in degrees for synthetic italics.
	// Zero means no skew.
	SkewX float64
}

// Any reports whether any synthesis is required.
func (s Synthesis) Any() bool { return s.Embolden || s.SkewX != 0 }

// fakeItalicSkew is the shear applied when slanting an upright face.
const fakeItalicSkew = 14.0

// synthesize computes the adjustments needed to render a face with the
// given actual attributes as if it had the requested ones.
func synthesize(requested, actual Attributes) Synthesis {
	var syn Synthesis
	if requested.Weight >= 600 && actual.Weight < 600 {
		syn.Embolden = true
	}
	if requested.Italic && !actual.Italic {
		syn.SkewX = fakeItalicSkew
	}
	return syn
}

// FontSource is a loaded font face: the raw file bytes, the parsed font
// used as the charmap test object, a process-unique cache key, the style
// attributes the face was loaded for and the synthesis descriptor computed
// once at load time.
//
// FontSource is immutable after creation and may be shared freely: the
// catalog and any number of resolver caches hold references to the same
// instance, and the face stays alive as long as any holder does.
type FontSource struct {
	data   []byte
	parsed *sfnt.Font
	key    CacheKey
	name   string

	attrs Attributes
	synth Synthesis
}

// NewFontSource parses font data (TTF or OTF) into a FontSource.
// attrs records the style the face satisfies; requested is the style the
// caller asked for and drives the synthesis descriptor.
func NewFontSource(data []byte, attrs, requested Attributes) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	s := &FontSource{
		data:   data,
		parsed: parsed,
		key:    CacheKey(nextCacheKey.Add(1)),
		attrs:  attrs,
		synth:  synthesize(requested, attrs),
	}

	if name, err := parsed.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, attrs, requested Attributes) (*FontSource, error) {
	// #nosec G304 -- font file paths come from the host font index
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	s, err := NewFontSource(data, attrs, requested)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return s, nil
}

// Key returns the process-unique cache key of this face.
func (s *FontSource) Key() CacheKey { return s.key }

// Name returns the font family name, or "" if the font does not carry one.
func (s *FontSource) Name() string { return s.name }

// Data returns the raw bytes of the font file. The slice must be treated
// as read-only; it is shared with every other holder of this face.
func (s *FontSource) Data() []byte { return s.data }

// Attributes returns the style attributes the face was loaded for.
func (s *FontSource) Attributes() Attributes { return s.attrs }

// Synthesis returns the synthesis descriptor computed at load time.
func (s *FontSource) Synthesis() Synthesis { return s.synth }

// Equal reports whether two sources refer to the same loaded face.
// Equality is defined by cache key only.
func (s *FontSource) Equal(other *FontSource) bool {
	return s != nil && other != nil && s.key == other.key
}

// HasGlyph reports whether the face contains a renderable glyph for the
// rune, without shaping. Glyph index zero is the missing-glyph box.
func (s *FontSource) HasGlyph(r rune) bool {
	gid, err := s.parsed.GlyphIndex(nil, r)
	return err == nil && gid != 0
}

// HasCluster reports whether the face covers every significant codepoint
// of the cluster. Joiners, variation selectors and other cluster components
// do not need their own glyphs.
func (s *FontSource) HasCluster(c Cluster) bool {
	covered := false
	for _, r := range c.Runes() {
		if isClusterComponent(r) {
			continue
		}
		if !s.HasGlyph(r) {
			return false
		}
		covered = true
	}
	return covered
}
