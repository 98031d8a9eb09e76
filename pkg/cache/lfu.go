package cache

import (
	"sync"
	"time"
)

type lfuEntry struct {
	value     any
	frequency uint64
	seq       uint64
	createdAt time.Time
}

// LFU evicts the least frequently used entry on capacity overflow, ties
// broken by oldest insertion. An optional TTL treats aged entries as
// absent regardless of their frequency.
type LFU struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*lfuEntry
	seq       uint64
	hits      uint64
	misses    uint64
	evictions uint64
	now       clock
}

// NewLFU creates an LFU cache. A non-positive ttl disables time expiry.
func NewLFU(capacity int, ttl time.Duration) *LFU {
	if capacity < 1 {
		capacity = 1
	}
	return &LFU{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*lfuEntry, capacity),
		now:      time.Now,
	}
}

func (c *LFU) expired(e *lfuEntry) bool {
	return c.ttl > 0 && c.now().Sub(e.createdAt) > c.ttl
}

func (c *LFU) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	if c.expired(e) {
		delete(c.items, key)
		c.misses++
		c.evictions++
		return nil, false
	}
	e.frequency++
	c.hits++
	return e.value, true
}

func (c *LFU) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	if e, ok := c.items[key]; ok {
		e.value = value
		e.createdAt = c.now()
		e.seq = c.seq
		return
	}
	if len(c.items) >= c.capacity {
		c.evictVictim()
	}
	c.items[key] = &lfuEntry{value: value, seq: c.seq, createdAt: c.now()}
}

// evictVictim removes the lowest-frequency entry, preferring expired ones.
// Frequency ties go to the oldest insertion. Linear scan; capacities here
// are in the low thousands.
func (c *LFU) evictVictim() {
	var victim string
	var victimEntry *lfuEntry
	for key, e := range c.items {
		if c.expired(e) {
			victim, victimEntry = key, e
			break
		}
		if victimEntry == nil ||
			e.frequency < victimEntry.frequency ||
			(e.frequency == victimEntry.frequency && e.seq < victimEntry.seq) {
			victim, victimEntry = key, e
		}
	}
	if victimEntry != nil {
		delete(c.items, victim)
		c.evictions++
	}
}

func (c *LFU) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*lfuEntry, c.capacity)
}

func (c *LFU) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}
