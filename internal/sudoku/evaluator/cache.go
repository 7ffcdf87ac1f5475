package evaluator

import "sync"

// CacheEntry is what the cache remembers for one genome: the fitness value
// and the solve count that produced it, so a cache hit can still report a
// meaningful SolveCount without re-solving.
type CacheEntry struct {
	Fitness    float64
	SolveCount int
}

// Cache is a concurrency-safe, read-through memoization table keyed by a
// genome's 81-tuple contents. Writes are monotonic: a key, once set, is
// never overwritten, so concurrent evaluators racing to fill the same key
// is harmless -- whichever write lands first wins and every later write of
// the same key is a no-op.
type Cache struct {
	mu      sync.RWMutex
	entries map[[81]int]CacheEntry
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[[81]int]CacheEntry)}
}

// Get returns the cached entry for grid, if any.
func (c *Cache) Get(grid [81]int) (CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[grid]
	return entry, ok
}

// Put stores entry for grid unless a value is already present.
func (c *Cache) Put(grid [81]int, entry CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[grid]; ok {
		return
	}
	c.entries[grid] = entry
}

// Len returns the number of distinct genomes currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
