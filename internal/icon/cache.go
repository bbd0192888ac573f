package icon

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

// sourceCache holds fetched sources for the process lifetime. An entry is written
// once and never replaced; concurrent misses for a key share one fetch.
type sourceCache struct {
	mu      sync.RWMutex
	settled map[model.CacheKey]model.IconSource
	group   singleflight.Group
}

func newSourceCache() *sourceCache {
	return &sourceCache{settled: make(map[model.CacheKey]model.IconSource)}
}

func (c *sourceCache) get(key model.CacheKey) (model.IconSource, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	src, ok := c.settled[key]
	return src, ok
}

// settle stores src unless the key already settled, and returns the stored value.
func (c *sourceCache) settle(key model.CacheKey, src model.IconSource) model.IconSource {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.settled[key]; ok {
		return existing
	}
	c.settled[key] = src
	return src
}

// load joins the in-flight fetch for key or starts one with fetch.
func (c *sourceCache) load(key model.CacheKey, fetch func() model.IconSource) <-chan singleflight.Result {
	return c.group.DoChan(key.String(), func() (any, error) {
		if src, ok := c.get(key); ok {
			return src, nil
		}
		return c.settle(key, fetch()), nil
	})
}
