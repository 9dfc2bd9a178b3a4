package jsonparse

import (
	"sync"
	"sync/atomic"
	"time"
)

// CacheStats reports path cache counters.
type CacheStats struct {
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	Entries   int     `json:"entries"`
	HitRatio  float64 `json:"hit_ratio"`
}

// pathCache memoizes parsed step sequences keyed by the literal path
// string. Parsed steps never go stale, so entries carry no TTL; the
// cache is bounded and evicts the least recently used entries in bulk
// once full.
type pathCache struct {
	mu      sync.RWMutex
	entries map[string]*pathCacheEntry
	maxSize int

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type pathCacheEntry struct {
	steps    []pathStep
	lastUsed atomic.Int64 // Unix nano for cheap comparison
}

// newPathCache creates a bounded parsed-steps cache.
func newPathCache(maxSize int) *pathCache {
	return &pathCache{
		entries: make(map[string]*pathCacheEntry, maxSize),
		maxSize: maxSize,
	}
}

// get retrieves the parsed steps for path. The returned slice is shared
// and must be treated as read-only by callers.
func (c *pathCache) get(path string) ([]pathStep, bool) {
	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}

	entry.lastUsed.Store(time.Now().UnixNano())
	c.hits.Add(1)
	return entry.steps, true
}

// set stores the parsed steps for path, evicting old entries when full.
func (c *pathCache) set(path string, steps []pathStep) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[path]; !exists && len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	entry := &pathCacheEntry{steps: steps}
	entry.lastUsed.Store(time.Now().UnixNano())
	c.entries[path] = entry
}

// evictLocked removes the oldest entries until the cache holds
// cacheKeepQuarters/4 of maxSize. Must be called with the lock held.
func (c *pathCache) evictLocked() {
	targetSize := c.maxSize * cacheKeepQuarters / 4
	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type keyTime struct {
		key  string
		time int64
	}
	oldest := make([]keyTime, 0, toEvict)

	for key, entry := range c.entries {
		used := entry.lastUsed.Load()
		if len(oldest) < toEvict {
			oldest = append(oldest, keyTime{key, used})
			continue
		}
		// Replace the newest candidate when this entry is older.
		maxIdx := 0
		for i := 1; i < len(oldest); i++ {
			if oldest[i].time > oldest[maxIdx].time {
				maxIdx = i
			}
		}
		if used < oldest[maxIdx].time {
			oldest[maxIdx] = keyTime{key, used}
		}
	}

	for _, kt := range oldest {
		delete(c.entries, kt.key)
		c.evictions.Add(1)
	}
}

// clear removes all entries, keeping counters intact.
func (c *pathCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*pathCacheEntry, c.maxSize)
}

// stats returns a snapshot of the cache counters.
func (c *pathCache) stats() CacheStats {
	c.mu.RLock()
	entries := len(c.entries)
	c.mu.RUnlock()

	hits := c.hits.Load()
	misses := c.misses.Load()
	ratio := 0.0
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}

	return CacheStats{
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		Entries:   entries,
		HitRatio:  ratio,
	}
}
