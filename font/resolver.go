package font

import (
	"os"
	"time"

	sugarloaf "github.com/Atan-D-RP4/rio"
)

// emojiIdleEviction is how long a loaded emoji face may sit unused before
// it is dropped from a resolver's cache. Emoji fonts are typically far
// larger than monospace text faces, so at most one is kept resident and
// only while it is actually being drawn.
const emojiIdleEviction = 4 * time.Second

// Style is the style request derived from a cell's flags.
type Style struct {
	Bold   bool
	Italic bool
}

// slot maps the style to its dedicated face slot.
func (s Style) slot() Slot {
	switch {
	case s.Bold && s.Italic:
		return SlotBoldItalic
	case s.Bold:
		return SlotBold
	case s.Italic:
		return SlotItalic
	default:
		return SlotRegular
	}
}

// Resolver decides which font slot draws a given cluster. Each render
// context owns one Resolver; its cache is private, so no locking is needed.
// Cached FontSources are references into whichever catalog snapshot was
// current when they were pulled, and they survive a library swap until the
// cache itself drops them.
//
// Resolver is NOT safe for concurrent use.
type Resolver struct {
	lib *Library

	// cached is the pull-through snapshot of catalog faces by slot,
	// plus the active emoji face under its synthetic slot.
	cached map[Slot]*FontSource

	emoji        Slot
	hasEmoji     bool
	emojiLastUse time.Time

	now      func() time.Time
	readFile func(string) ([]byte, error)

	fallbackScans int
	emojiLoads    int
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithClock replaces the wall clock used for emoji idle eviction.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) { r.now = now }
}

// WithFileReader replaces the reader used to promote lazy faces.
func WithFileReader(read func(string) ([]byte, error)) ResolverOption {
	return func(r *Resolver) { r.readFile = read }
}

// NewResolver creates a resolver over the given library.
func NewResolver(lib *Library, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		lib:      lib,
		cached:   make(map[Slot]*FontSource),
		now:      time.Now,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Library returns the library the resolver reads from.
func (r *Resolver) Library() *Library { return r.lib }

// Catalog returns the current catalog snapshot.
func (r *Resolver) Catalog() *Catalog { return r.lib.Catalog() }

// Face returns the resolver's cached face for a slot, pulling it through
// from the catalog on first use. Returns nil for out-of-range slots.
func (r *Resolver) Face(slot Slot) *FontSource {
	return r.face(r.lib.Catalog(), slot)
}

// Resolve returns the slot to draw the cluster with under the requested
// style, together with the face's synthesis descriptor. ok is false when no
// loaded face covers the cluster; the caller renders a missing-glyph box.
//
// For an unchanged catalog the returned slot is a pure function of the
// inputs: cache population and eviction are observable only through memory
// footprint and latency.
func (r *Resolver) Resolve(cluster Cluster, style Style) (slot Slot, syn Synthesis, ok bool) {
	r.evictIdleEmoji()

	cat := r.lib.Catalog()

	// Bold/italic map directly to their slot with no fallback search:
	// emphasis style is authoritative, and a missing glyph in the
	// emphasized face is a rendering gap rather than a reason to hunt
	// through the fallback chain.
	if style.Bold || style.Italic {
		s := style.slot()
		if src := r.face(cat, s); src != nil && src.HasCluster(cluster) {
			syn = src.Synthesis()
		}
		return s, syn, true
	}

	if cluster.IsEmoji() {
		if s, synth, hit := r.resolveEmoji(cat, cluster); hit {
			return s, synth, true
		}
		// Promotion failed; fall through to the loaded faces.
	}

	if src := r.face(cat, SlotRegular); src != nil && src.HasCluster(cluster) {
		return SlotRegular, src.Synthesis(), true
	}

	return r.scanFallbacks(cat, cluster)
}

// resolveEmoji serves an emoji-presentation cluster from the active emoji
// face, promoting the first lazy emoji reference from disk if none is
// resident. A failed load reports no hit so the caller can fall back.
func (r *Resolver) resolveEmoji(cat *Catalog, cluster Cluster) (Slot, Synthesis, bool) {
	if r.hasEmoji {
		if src := r.cached[r.emoji]; src != nil {
			r.emojiLastUse = r.now()
			return r.emoji, src.Synthesis(), true
		}
	}

	for _, ref := range cat.LazyRefs() {
		if !ref.IsEmoji {
			continue
		}
		r.emojiLoads++
		data, err := r.readFile(ref.Path)
		if err != nil {
			sugarloaf.Logger().Warn("emoji font unreadable", "path", ref.Path, "err", err)
			return 0, Synthesis{}, false
		}
		src, err := NewFontSource(data, Attributes{Weight: 400}, Attributes{Weight: 400})
		if err != nil {
			sugarloaf.Logger().Warn("emoji font unparsable", "path", ref.Path, "err", err)
			return 0, Synthesis{}, false
		}

		// The emoji face lives past the loaded faces; using the catalog
		// length keeps the slot identity stable across reloads of the
		// same face, so eviction is never visible through returned slots.
		s := Slot(cat.Len())
		r.cached[s] = src
		r.emoji = s
		r.hasEmoji = true
		r.emojiLastUse = r.now()
		sugarloaf.Logger().Debug("emoji font loaded", "path", ref.Path, "slot", int(s))
		return s, src.Synthesis(), true
	}

	return 0, Synthesis{}, false
}

// scanFallbacks performs the ordered linear scan over all loaded faces and
// returns the first that covers the cluster.
func (r *Resolver) scanFallbacks(cat *Catalog, cluster Cluster) (Slot, Synthesis, bool) {
	r.fallbackScans++
	for i := 0; i < cat.Len(); i++ {
		src := cat.Face(Slot(i))
		if src != nil && src.HasCluster(cluster) {
			sugarloaf.Logger().Debug("fallback face matched",
				"cluster", cluster.Text(), "slot", i)
			return Slot(i), src.Synthesis(), true
		}
	}
	return 0, Synthesis{}, false
}

// face pulls a catalog face into the resolver's cache on first use.
func (r *Resolver) face(cat *Catalog, slot Slot) *FontSource {
	if src, ok := r.cached[slot]; ok {
		return src
	}
	src := cat.Face(slot)
	if src != nil {
		r.cached[slot] = src
	}
	return src
}

// evictIdleEmoji drops the active emoji face once it has been idle past
// the eviction threshold. It runs opportunistically on each resolve; there
// is no timer thread.
func (r *Resolver) evictIdleEmoji() {
	if !r.hasEmoji {
		return
	}
	if r.now().Sub(r.emojiLastUse) <= emojiIdleEviction {
		return
	}
	delete(r.cached, r.emoji)
	r.hasEmoji = false
	r.emojiLastUse = time.Time{}
	sugarloaf.Logger().Debug("emoji font evicted", "slot", int(r.emoji))
}

// ActiveEmoji returns the active emoji slot, if one is resident.
func (r *Resolver) ActiveEmoji() (Slot, bool) { return r.emoji, r.hasEmoji }

// IsEmojiSlot reports whether the slot refers to a lazily-loaded emoji
// face rather than a catalog face.
func (r *Resolver) IsEmojiSlot(slot Slot) bool {
	return int(slot) >= r.lib.Catalog().Len()
}

// ClearCache drops every cached face, including the active emoji face.
// The next resolves repopulate from the current catalog snapshot.
func (r *Resolver) ClearCache() {
	r.cached = make(map[Slot]*FontSource)
	r.hasEmoji = false
	r.emojiLastUse = time.Time{}
}

// FallbackScans returns how many resolves fell through to the ordered
// fallback scan. Debug instrumentation.
func (r *Resolver) FallbackScans() int { return r.fallbackScans }

// EmojiLoads returns how many times a lazy emoji face was read from disk.
// Debug instrumentation.
func (r *Resolver) EmojiLoads() int { return r.emojiLoads }
