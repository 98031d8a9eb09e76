/*
Package cache provides the eviction-policy caches used by the dictionary
service: LRU for validation results, LFU with TTL for definitions, and a
strictly time-expired cache for search result sets.

All three share one contract. Every mutating operation, including the
promotion a Get performs, runs under the cache's mutex, so concurrent
callers never observe a partially evicted or partially inserted entry.
Caches across languages are independent instances and never contend.
*/
package cache

import "time"

// Cache is the common contract of all eviction policies.
type Cache interface {
	// Get returns the stored value, or false when the key is absent,
	// evicted or expired.
	Get(key string) (any, bool)
	// Put stores a value, evicting per policy when capacity is exceeded.
	Put(key string, value any)
	// InvalidateAll drops every entry. Statistics counters survive.
	InvalidateAll()
	// Stats returns a consistent snapshot of the counters.
	Stats() Stats
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Size      int
	Capacity  int
}

// HitRate returns hits over total lookups, zero when nothing was looked up.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// clock is overridable in tests to drive TTL expiry deterministically.
type clock func() time.Time
