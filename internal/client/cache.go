package client

import "sync"

// Cache tags. Every read result is stored under a tag; every successful
// mutation invalidates its tag wholesale, forcing the next read to refetch.
const tagDocument = "Document"

// tagCache is a small tag-invalidated read cache. It never patches entries
// incrementally: mutation acknowledgment drops the whole tag, trading some
// efficiency for freshness.
type tagCache struct {
	mu      sync.RWMutex
	entries map[string]map[string]any
}

func newTagCache() *tagCache {
	return &tagCache{entries: make(map[string]map[string]any)}
}

func (c *tagCache) get(tag, key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	byKey, ok := c.entries[tag]
	if !ok {
		return nil, false
	}
	v, ok := byKey[key]
	return v, ok
}

func (c *tagCache) put(tag, key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byKey, ok := c.entries[tag]
	if !ok {
		byKey = make(map[string]any)
		c.entries[tag] = byKey
	}
	byKey[key] = v
}

// invalidate drops every entry stored under tag.
func (c *tagCache) invalidate(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, tag)
}
