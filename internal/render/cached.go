package render

import (
	"github.com/couchcryptid/volcano-map-service/internal/cache"
)

// Output formats understood by [CachedMap].
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// MapKey identifies one rendered map. Generation changes whenever the dataset
// is reloaded, so stale renders are never served.
type MapKey struct {
	Generation uint64
	Format     string
	Width      int
	Height     int
	// HoverID is the highlighted record, or -1 for none.
	HoverID int
}

// CachedMap memoizes encoded map renders in an LRU.
type CachedMap struct {
	cache    *cache.LRU[MapKey, []byte]
	onLookup func(hit bool)
}

// NewCachedMap creates a render cache. onLookup, when non-nil, is told about
// every hit and miss.
func NewCachedMap(maxEntries int, onLookup func(hit bool)) *CachedMap {
	return &CachedMap{
		cache:    cache.New[MapKey, []byte](maxEntries),
		onLookup: onLookup,
	}
}

// Get returns the cached bytes for key, calling render on a miss. Failed
// renders are not cached.
func (c *CachedMap) Get(key MapKey, render func() ([]byte, error)) ([]byte, error) {
	if b, ok := c.cache.Get(key); ok {
		c.observe(true)
		return b, nil
	}
	c.observe(false)
	b, err := render()
	if err != nil {
		return nil, err
	}
	c.cache.Put(key, b)
	return b, nil
}

// Purge drops every cached render.
func (c *CachedMap) Purge() {
	c.cache.Purge()
}

func (c *CachedMap) observe(hit bool) {
	if c.onLookup != nil {
		c.onLookup(hit)
	}
}
