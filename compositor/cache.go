package compositor

import (
	"sort"
	"sync"
)

// Cache is a generic thread-safe cache with a soft limit. When the cache
// grows past the limit the least recently used quarter is evicted, keeping
// the per-character metadata bounded even for pathological input.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64 // monotonic access counter
}

// cacheEntry holds a cached value with its access time.
type cacheEntry[V any] struct {
	value V
	atime int64
}

// NewCache creates a cache with the given soft limit.
// A softLimit of 0 means unlimited.
func NewCache[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value, refreshing its access time.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	entry.atime = c.tick
	return entry.value, true
}

// GetOrCreate returns the cached value or creates and stores it.
// create runs under the lock, so concurrent callers never duplicate work.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.tick++
		entry.atime = c.tick
		return entry.value
	}

	value := create()
	c.tick++
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return value
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest trims back to 75% of the soft limit, oldest first.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	target := c.softLimit * 3 / 4
	if target < 1 {
		target = 1
	}
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		all = append(all, aged{key: key, atime: e.atime})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].atime < all[j].atime })

	for i := 0; i < toEvict; i++ {
		delete(c.entries, all[i].key)
	}
}
