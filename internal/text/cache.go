package text

import "sync"

type advanceKey struct {
	s    string
	size float64
}

// Cache memoizes the advances and line heights of another Metrics. It is
// safe for concurrent use when the wrapped Metrics is.
type Cache struct {
	m Metrics

	mu       sync.RWMutex
	advances map[advanceKey]int
	heights  map[float64]int
	limit    int
}

// NewCache wraps m. limit bounds the number of cached advances; when it is
// reached the cache is cleared. Zero means 4096.
func NewCache(m Metrics, limit int) *Cache {
	if limit <= 0 {
		limit = 4096
	}
	return &Cache{
		m:        m,
		advances: make(map[advanceKey]int),
		heights:  make(map[float64]int),
		limit:    limit,
	}
}

// Advance implements Metrics.
func (c *Cache) Advance(s string, size float64) int {
	k := advanceKey{s: s, size: size}
	c.mu.RLock()
	v, ok := c.advances[k]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = c.m.Advance(s, size)
	c.mu.Lock()
	if len(c.advances) >= c.limit {
		clear(c.advances)
	}
	c.advances[k] = v
	c.mu.Unlock()
	return v
}

// LineHeight implements Metrics.
func (c *Cache) LineHeight(size float64) int {
	c.mu.RLock()
	v, ok := c.heights[size]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = c.m.LineHeight(size)
	c.mu.Lock()
	c.heights[size] = v
	c.mu.Unlock()
	return v
}

// Len returns the number of cached advances.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.advances)
}
