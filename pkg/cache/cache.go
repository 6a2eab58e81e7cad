// Package cache provides a thread-safe LRU cache for variable
// extraction results.
//
// Extracting the variables of an expression means re-tokenizing it, so
// interactive callers that probe the same expression repeatedly (show
// the variables, then evaluate) benefit from memoizing the result by
// the exact input string. The cache is transparent: extraction is a
// pure function, so a hit and a recomputation are indistinguishable.
//
// # Example
//
//	c := cache.New(256)
//	vars, err := c.GetOrExtract("A + B * C", extract)
package cache

import (
	"container/list"
	"sync"
)

// entry is a cache entry stored in the doubly-linked list.
type entry struct {
	key  string
	vars []string
}

// Cache is a thread-safe LRU (Least Recently Used) cache mapping
// expression strings to their sorted variable names. Once the capacity
// is reached, the least recently accessed entry is evicted.
//
// Safe for concurrent use by multiple goroutines.
type Cache struct {
	mu       sync.RWMutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

// New creates a new LRU cache with the given capacity.
// capacity must be > 0; if <= 0, a default of 256 is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 256
	}
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get retrieves a variable list from the cache.
// Returns (vars, true) if found and moves the entry to front (MRU).
// Returns (nil, false) if not present.
func (c *Cache) Get(key string) ([]string, bool) {
	// vars must be read before the lock is dropped; Set can replace it
	// on an existing entry at any time.
	c.mu.RLock()
	el, ok := c.items[key]
	if ok && c.ll.Front() == el {
		// Already at the front, skip the write lock entirely.
		vars := el.Value.(*entry).vars
		c.mu.RUnlock()
		return vars, true
	}
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	// Promote to front under write lock; re-check in case of concurrent eviction.
	c.mu.Lock()
	el, ok = c.items[key]
	if !ok {
		c.mu.Unlock()
		return nil, false
	}
	c.ll.MoveToFront(el)
	vars := el.Value.(*entry).vars
	c.mu.Unlock()
	return vars, true
}

// Set inserts or replaces a variable list in the cache.
// If at capacity, the least recently used entry is evicted first.
func (c *Cache) Set(key string, vars []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry).vars = vars
		c.ll.MoveToFront(el)
		return
	}

	if c.ll.Len() >= c.capacity {
		c.evictLocked()
	}

	el := c.ll.PushFront(&entry{key: key, vars: vars})
	c.items[key] = el
}

// GetOrExtract retrieves the variable list for key from cache, or calls
// extract() to compute it, caches the result, and returns it.
// Errors are never cached; a failing expression is re-examined on every
// call.
func (c *Cache) GetOrExtract(key string, extract func() ([]string, error)) ([]string, error) {
	if vars, ok := c.Get(key); ok {
		return vars, nil
	}
	vars, err := extract()
	if err != nil {
		return nil, err
	}
	c.Set(key, vars)
	return vars, nil
}

// Len returns the number of entries currently in the cache.
func (c *Cache) Len() int {
	c.mu.RLock()
	n := len(c.items)
	c.mu.RUnlock()
	return n
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Invalidate removes a single entry from the cache.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.ll.Remove(el)
		delete(c.items, key)
	}
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[string]*list.Element, c.capacity)
}

// evictLocked removes the least recently used entry.
// Must be called with c.mu held for writing.
func (c *Cache) evictLocked() {
	el := c.ll.Back()
	if el == nil {
		return
	}
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
