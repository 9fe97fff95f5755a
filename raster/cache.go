package raster

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gradient"
)

// Cache keeps recently rendered images so that repeated requests for the
// same descriptor, size and options skip shading. Least recently used
// images are evicted first.
//
// Cached images are shared: callers must not modify them.
// Cache is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[cacheKey]*cacheNode
	head     *cacheNode // most recently used
	tail     *cacheNode
	hits     uint64
	misses   uint64
}

type cacheKey struct {
	descriptor    string
	width, height int
	interpolation Interpolation
	supersample   int
}

type cacheNode struct {
	key        cacheKey
	img        *image.NRGBA
	prev, next *cacheNode
}

// CacheStats reports cache usage.
type CacheStats struct {
	Len, Capacity int
	Hits, Misses  uint64
}

// NewCache returns a cache holding at most capacity images (minimum 1).
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: max(capacity, 1),
		entries:  make(map[cacheKey]*cacheNode),
	}
}

func newCacheKey(d *gradient.Descriptor, width, height int, o options) cacheKey {
	return cacheKey{
		descriptor:    fmt.Sprintf("%T%v|%v", d.Geometry, d.Geometry, d.Stops),
		width:         width,
		height:        height,
		interpolation: o.interpolation,
		supersample:   o.supersample,
	}
}

func (c *Cache) get(k cacheKey) (*image.NRGBA, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[k]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.unlink(n)
	c.pushFront(n)
	return n.img, true
}

func (c *Cache) put(k cacheKey, img *image.NRGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[k]; ok {
		n.img = img
		c.unlink(n)
		c.pushFront(n)
		return
	}
	n := &cacheNode{key: k, img: img}
	c.entries[k] = n
	c.pushFront(n)
	for len(c.entries) > c.capacity {
		old := c.tail
		c.unlink(old)
		delete(c.entries, old.key)
	}
}

// Clear drops every entry and resets the counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*cacheNode)
	c.head, c.tail = nil, nil
	c.hits, c.misses = 0, 0
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Len: len(c.entries), Capacity: c.capacity, Hits: c.hits, Misses: c.misses}
}

func (c *Cache) pushFront(n *cacheNode) {
	n.prev, n.next = nil, c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *Cache) unlink(n *cacheNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
