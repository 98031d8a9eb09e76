package cache

import (
	"container/list"
	"sync"
	"time"
)

type ttlEntry struct {
	key       string
	value     any
	createdAt time.Time
}

// TTL is a strictly time-expired cache. Entries past their TTL are absent
// no matter how often they were read; when the cache is full, the oldest
// insertion is removed.
type TTL struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	ll        *list.List // front = newest insertion
	items     map[string]*list.Element
	hits      uint64
	misses    uint64
	evictions uint64
	now       clock
}

// NewTTL creates a TTL cache. A non-positive ttl makes entries immortal
// until capacity pressure removes them.
func NewTTL(capacity int, ttl time.Duration) *TTL {
	if capacity < 1 {
		capacity = 1
	}
	return &TTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
		now:      time.Now,
	}
}

func (c *TTL) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	e := ele.Value.(ttlEntry)
	if c.ttl > 0 && c.now().Sub(e.createdAt) > c.ttl {
		c.ll.Remove(ele)
		delete(c.items, key)
		c.misses++
		c.evictions++
		return nil, false
	}
	c.hits++
	return e.value, true
}

func (c *TTL) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := ttlEntry{key: key, value: value, createdAt: c.now()}
	if ele, ok := c.items[key]; ok {
		ele.Value = entry
		c.ll.MoveToFront(ele)
		return
	}
	c.items[key] = c.ll.PushFront(entry)
	if c.ll.Len() > c.capacity {
		if last := c.ll.Back(); last != nil {
			c.ll.Remove(last)
			delete(c.items, last.Value.(ttlEntry).key)
			c.evictions++
		}
	}
}

func (c *TTL) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.items = make(map[string]*list.Element, c.capacity)
}

func (c *TTL) Stats() Stats {
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
