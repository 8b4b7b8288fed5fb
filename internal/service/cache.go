// Package service contains the business logic for the cafe service.
package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/metrics"
)

// CacheMetrics holds cache performance counters.
type CacheMetrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// listCache is a thread-safe LRU cache with TTL expiration for derived
// shopping lists, keyed by daily cup target. Lists are cheap to compute but
// the ingredient catalog changes rarely, so a short TTL takes most of the
// read load off MongoDB.
type listCache struct {
	mu        sync.RWMutex
	capacity  int
	ttl       time.Duration
	items     map[int]*listCacheEntry
	head      *listCacheEntry
	tail      *listCacheEntry
	stopCh    chan struct{}
	hits      int64
	misses    int64
	evictions int64
}

type listCacheEntry struct {
	key       int
	value     model.ShoppingList
	expiresAt time.Time
	prev      *listCacheEntry
	next      *listCacheEntry
}

// newListCache creates a cache with the given capacity and TTL. A background
// goroutine periodically removes expired entries.
func newListCache(capacity int, ttl time.Duration) *listCache {
	c := &listCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[int]*listCacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Stop shuts down the cleanup goroutine.
func (c *listCache) Stop() {
	close(c.stopCh)
}

// Get retrieves a cached list if present and not expired. The lookup, the
// LRU bump and the value read happen under one lock, so a concurrent Set
// cannot tear the returned list and the entry cannot be re-inserted after
// cleanup already dropped it.
func (c *listCache) Get(key int) (model.ShoppingList, bool) {
	c.mu.Lock()

	entry, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.ShoppingList{}, false
	}

	if time.Now().After(entry.expiresAt) {
		c.removeEntry(entry)
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.ShoppingList{}, false
	}

	c.moveToFront(entry)
	value := entry.value
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return value, true
}

// Set adds or refreshes a cached list. The least recently used entry is
// evicted at capacity.
func (c *listCache) Set(key int, value model.ShoppingList) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &listCacheEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Clear removes all entries. Called whenever the ingredient catalog changes.
func (c *listCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[int]*listCacheEntry, c.capacity)
	c.head = nil
	c.tail = nil
	metrics.RecordCacheOperation("clear", "success")
}

// Metrics returns current cache performance counters.
func (c *listCache) Metrics() CacheMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CacheMetrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

func (c *listCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *listCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

func (c *listCache) removeEntry(entry *listCacheEntry) {
	delete(c.items, entry.key)
	c.remove(entry)
}

func (c *listCache) moveToFront(entry *listCacheEntry) {
	if entry == c.head {
		return
	}
	c.remove(entry)
	c.addToFront(entry)
}

func (c *listCache) addToFront(entry *listCacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *listCache) remove(entry *listCacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
}

func (c *listCache) removeTail() {
	if c.tail == nil {
		return
	}
	delete(c.items, c.tail.key)
	c.remove(c.tail)
}
