package cache

import (
	"sync"
	"time"
)

type entry struct {
	url      string
	expireAt time.Time
}

// URLCache memoizes presigned download links so the downloads page does not
// re-sign every object on every request. Thread-safe.
type URLCache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewURLCache() *URLCache {
	return &URLCache{entries: make(map[string]entry)}
}

// Get returns the cached URL for key if it has not expired.
func (c *URLCache) Get(key string) (string, bool) {
	c.mu.RLock()
	e, found := c.entries[key]
	c.mu.RUnlock()

	if found && time.Now().Before(e.expireAt) {
		return e.url, true
	}
	return "", false
}

// Set stores a URL until expireAt.
func (c *URLCache) Set(key, url string, expireAt time.Time) {
	c.mu.Lock()
	c.entries[key] = entry{url: url, expireAt: expireAt}
	c.mu.Unlock()
}

// Sweep drops expired entries. Called periodically by the app's background
// task.
func (c *URLCache) Sweep() {
	now := time.Now()

	c.mu.Lock()
	for key, e := range c.entries {
		if now.After(e.expireAt) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}
