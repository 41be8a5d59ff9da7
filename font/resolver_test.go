package font

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/gomono"
)

// fakeClock is a manually advanced clock for eviction tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newEmojiResolver builds a resolver whose catalog registers one lazy
// emoji family backed by an embedded font. It returns the resolver, its
// clock and a counter of file reads.
func newEmojiResolver(t *testing.T) (*Resolver, *fakeClock, *int) {
	t.Helper()

	path := writeFontFile(t, gomono.TTF)
	idx := MapIndex{"test emoji": {Path: path}}

	spec := Spec{Fallbacks: []string{"Test Emoji"}}
	lib := NewLibrary(Build(spec, idx))

	clock := &fakeClock{t: time.Unix(1000, 0)}
	reads := 0
	r := NewResolver(lib,
		WithClock(clock.now),
		WithFileReader(func(p string) ([]byte, error) {
			reads++
			if p != path {
				t.Errorf("read unexpected path %q", p)
			}
			return gomono.TTF, nil
		}),
	)
	return r, clock, &reads
}

func TestStyleSlot(t *testing.T) {
	tests := []struct {
		style Style
		want  Slot
	}{
		{Style{}, SlotRegular},
		{Style{Italic: true}, SlotItalic},
		{Style{Bold: true}, SlotBold},
		{Style{Bold: true, Italic: true}, SlotBoldItalic},
	}
	for _, tt := range tests {
		if got := tt.style.slot(); got != tt.want {
			t.Errorf("%+v.slot() = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestResolveStyled(t *testing.T) {
	r := NewResolver(NewLibrary(Build(DefaultSpec(), nil)))

	tests := []struct {
		name  string
		style Style
		want  Slot
	}{
		{"bold", Style{Bold: true}, SlotBold},
		{"italic", Style{Italic: true}, SlotItalic},
		{"bold italic", Style{Bold: true, Italic: true}, SlotBoldItalic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, _, ok := r.Resolve(ClusterFromRune('A'), tt.style)
			if !ok {
				t.Fatal("styled resolve must always report ok")
			}
			if slot != tt.want {
				t.Errorf("slot = %v, want %v", slot, tt.want)
			}
		})
	}

	// A styled cell skips the fallback search even when the emphasized
	// face does not cover the character.
	slot, _, ok := r.Resolve(ClusterFromRune('中'), Style{Bold: true})
	if !ok || slot != SlotBold {
		t.Errorf("Resolve(中, bold) = %v, %v; want SlotBold, true", slot, ok)
	}
	if r.FallbackScans() != 0 {
		t.Errorf("FallbackScans() = %d, want 0", r.FallbackScans())
	}
}

func TestResolveRegular(t *testing.T) {
	r := NewResolver(NewLibrary(Build(DefaultSpec(), nil)))

	slot, _, ok := r.Resolve(ClusterFromRune('A'), Style{})
	if !ok || slot != SlotRegular {
		t.Errorf("Resolve(A) = %v, %v; want SlotRegular, true", slot, ok)
	}
	if r.FallbackScans() != 0 {
		t.Errorf("FallbackScans() = %d, want 0", r.FallbackScans())
	}
}

func TestResolveUnresolved(t *testing.T) {
	r := NewResolver(NewLibrary(Build(DefaultSpec(), nil)))

	_, _, ok := r.Resolve(ClusterFromRune('中'), Style{})
	if ok {
		t.Error("no embedded face covers CJK; resolve should miss")
	}
	if r.FallbackScans() != 1 {
		t.Errorf("FallbackScans() = %d, want 1", r.FallbackScans())
	}
}

func TestResolveEmojiLoadsOnce(t *testing.T) {
	r, _, reads := newEmojiResolver(t)
	catLen := r.Catalog().Len()
	emoji := NewCluster("😀")

	slot, _, ok := r.Resolve(emoji, Style{})
	if !ok {
		t.Fatal("emoji resolve should hit the lazy face")
	}
	if slot != Slot(catLen) {
		t.Errorf("slot = %v, want %v (one past the catalog)", slot, Slot(catLen))
	}
	if !r.IsEmojiSlot(slot) {
		t.Error("IsEmojiSlot should report the emoji slot")
	}
	if active, has := r.ActiveEmoji(); !has || active != slot {
		t.Errorf("ActiveEmoji() = %v, %v; want %v, true", active, has, slot)
	}

	// Repeated resolves within the idle window reuse the resident face.
	for i := 0; i < 3; i++ {
		again, _, ok := r.Resolve(NewCluster("🚀"), Style{})
		if !ok || again != slot {
			t.Fatalf("repeat resolve = %v, %v; want %v, true", again, ok, slot)
		}
	}
	if *reads != 1 {
		t.Errorf("file reads = %d, want 1", *reads)
	}
	if r.EmojiLoads() != 1 {
		t.Errorf("EmojiLoads() = %d, want 1", r.EmojiLoads())
	}
}

func TestResolveEmojiIdleEviction(t *testing.T) {
	r, clock, reads := newEmojiResolver(t)
	emoji := NewCluster("😀")

	first, _, ok := r.Resolve(emoji, Style{})
	if !ok {
		t.Fatal("first emoji resolve should hit")
	}

	// Still resident just inside the window.
	clock.advance(3 * time.Second)
	r.Resolve(ClusterFromRune('A'), Style{})
	if _, has := r.ActiveEmoji(); !has {
		t.Fatal("emoji face evicted before the idle threshold")
	}

	// The 3s-old use refreshed nothing; past the threshold any resolve
	// evicts, emoji or not.
	clock.advance(5 * time.Second)
	r.Resolve(ClusterFromRune('A'), Style{})
	if _, has := r.ActiveEmoji(); has {
		t.Fatal("emoji face should be evicted after sitting idle")
	}

	// Re-resolving reloads from disk but yields the same slot identity.
	second, _, ok := r.Resolve(emoji, Style{})
	if !ok {
		t.Fatal("emoji resolve after eviction should reload")
	}
	if second != first {
		t.Errorf("slot after reload = %v, want %v", second, first)
	}
	if *reads != 2 {
		t.Errorf("file reads = %d, want 2", *reads)
	}
}

func TestResolveEmojiUseRefreshesTimer(t *testing.T) {
	r, clock, _ := newEmojiResolver(t)
	emoji := NewCluster("😀")

	r.Resolve(emoji, Style{})
	for i := 0; i < 3; i++ {
		clock.advance(3 * time.Second)
		if _, _, ok := r.Resolve(emoji, Style{}); !ok {
			t.Fatalf("resolve %d should hit the resident face", i)
		}
	}
	if _, has := r.ActiveEmoji(); !has {
		t.Error("each use should push the idle deadline out")
	}
	if r.EmojiLoads() != 1 {
		t.Errorf("EmojiLoads() = %d, want 1", r.EmojiLoads())
	}
}

func TestResolveEmojiLoadFailure(t *testing.T) {
	path := writeFontFile(t, gomono.TTF)
	idx := MapIndex{"test emoji": {Path: path}}
	lib := NewLibrary(Build(Spec{Fallbacks: []string{"Test Emoji"}}, idx))

	r := NewResolver(lib, WithFileReader(func(string) ([]byte, error) {
		return nil, errors.New("disk gone")
	}))

	// The load fails and the cluster falls through to the loaded faces,
	// none of which cover it.
	_, _, ok := r.Resolve(NewCluster("😀"), Style{})
	if ok {
		t.Error("resolve should miss when the emoji face cannot load")
	}
	if _, has := r.ActiveEmoji(); has {
		t.Error("no emoji face should be resident after a failed load")
	}

	// 'A' is plain text; the failure above must not disturb it.
	if _, _, ok := r.Resolve(ClusterFromRune('A'), Style{}); !ok {
		t.Error("regular text should still resolve")
	}
}

func TestResolveEmojiNoLazyRef(t *testing.T) {
	r := NewResolver(NewLibrary(Build(DefaultSpec(), nil)))

	// No lazy emoji is registered; the cluster walks the fallback chain
	// and misses.
	_, _, ok := r.Resolve(NewCluster("😀"), Style{})
	if ok {
		t.Error("resolve should miss without an emoji face")
	}
	if r.EmojiLoads() != 0 {
		t.Errorf("EmojiLoads() = %d, want 0", r.EmojiLoads())
	}
}

func TestResolverClearCache(t *testing.T) {
	r, _, reads := newEmojiResolver(t)
	emoji := NewCluster("😀")

	r.Resolve(emoji, Style{})
	r.ClearCache()

	if _, has := r.ActiveEmoji(); has {
		t.Error("ClearCache should drop the emoji face")
	}

	slot, _, ok := r.Resolve(emoji, Style{})
	if !ok || !r.IsEmojiSlot(slot) {
		t.Errorf("resolve after clear = %v, %v; want emoji slot, true", slot, ok)
	}
	if *reads != 2 {
		t.Errorf("file reads = %d, want 2 (reload after clear)", *reads)
	}
}

func TestResolverFace(t *testing.T) {
	r := NewResolver(NewLibrary(Build(DefaultSpec(), nil)))

	if r.Face(SlotRegular) == nil {
		t.Error("regular face should pull through from the catalog")
	}
	if r.Face(Slot(99)) != nil {
		t.Error("out-of-range slot should be nil")
	}

	// Pull-through caching returns the identical source.
	a := r.Face(SlotBold)
	b := r.Face(SlotBold)
	if a != b {
		t.Error("repeated Face lookups should return the cached source")
	}
}

func TestResolverSurvivesLibrarySwap(t *testing.T) {
	lib := NewLibrary(Build(DefaultSpec(), nil))
	r := NewResolver(lib)

	before, _, _ := r.Resolve(ClusterFromRune('A'), Style{})

	lib.Swap(Build(DefaultSpec(), nil))
	after, _, ok := r.Resolve(ClusterFromRune('A'), Style{})
	if !ok || after != before {
		t.Errorf("resolve after swap = %v, %v; want %v, true", after, ok, before)
	}
}
