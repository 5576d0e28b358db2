package assertion

import (
	"container/list"
	"regexp"
	"sync"
)

const patternCacheSize = 256

var patterns = newPatternCache(patternCacheSize)

// compile returns the compiled pattern, reusing earlier compilations.
func compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := patterns.get(pattern); ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patterns.put(pattern, re)
	return re, nil
}

type patternEntry struct {
	pattern string
	re      *regexp.Regexp
}

// patternCache is a fixed size LRU of compiled expressions.
type patternCache struct {
	capacity int
	items    map[string]*list.Element
	order    *list.List
	mu       sync.Mutex
}

func newPatternCache(capacity int) *patternCache {
	return &patternCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *patternCache) get(pattern string) (*regexp.Regexp, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[pattern]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*patternEntry).re, true
}

func (c *patternCache) put(pattern string, re *regexp.Regexp) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[pattern]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*patternEntry).re = re
		return
	}

	c.items[pattern] = c.order.PushFront(&patternEntry{pattern: pattern, re: re})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*patternEntry).pattern)
	}
}

func (c *patternCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
