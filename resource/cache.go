package resource

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache keeps the rewritten text of a resource per URL. Entries live as long
// as the cache; there is no eviction and no invalidation, so configuration
// changes are not picked up for URLs that were already served. One cache is
// created per process and shared by every resolver chain.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]string, 1)}
}

// Get returns the text cached for url, calling compute to fill the entry when
// it is missing. Concurrent callers for the same url share one computation.
// Failed computations are not cached.
func (c *Cache) Get(url string, compute func() (string, error)) (string, error) {
	c.mu.RLock()
	text, ok := c.entries[url]
	c.mu.RUnlock()
	if ok {
		return text, nil
	}

	v, err, _ := c.group.Do(url, func() (any, error) {
		c.mu.RLock()
		text, ok := c.entries[url]
		c.mu.RUnlock()
		if ok {
			return text, nil
		}
		text, err := compute()
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.entries[url] = text
		c.mu.Unlock()
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
