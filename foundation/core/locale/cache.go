// File: cache.go
// Title: Codec Cache
// Description: Caches resolved charset codecs by canonical codeset name so
//              repeated conversions skip the IANA registry lookup. Codecs are
//              immutable and shared between goroutines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package locale

import (
	"sync"
	"sync/atomic"
)

// CacheStats reports codec cache usage
type CacheStats struct {
	Entries int
	Hits    int64
	Misses  int64
}

type codecCache struct {
	mu    sync.RWMutex
	items map[string]Codec

	hits   atomic.Int64
	misses atomic.Int64
}

var codecs = &codecCache{items: make(map[string]Codec)}

func (c *codecCache) get(name string) (Codec, bool) {
	c.mu.RLock()
	codec, ok := c.items[name]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return codec, ok
}

// put stores codec unless another goroutine got there first and returns the
// stored value
func (c *codecCache) put(name string, codec Codec) Codec {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[name]; ok {
		return existing
	}
	c.items[name] = codec
	return codec
}

func (c *codecCache) stats() CacheStats {
	c.mu.RLock()
	n := len(c.items)
	c.mu.RUnlock()
	return CacheStats{Entries: n, Hits: c.hits.Load(), Misses: c.misses.Load()}
}

func (c *codecCache) reset() {
	c.mu.Lock()
	c.items = make(map[string]Codec)
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}

// CodecCacheStats returns the usage of the process-wide codec cache
func CodecCacheStats() CacheStats {
	return codecs.stats()
}

// ResetCodecCache empties the codec cache and its counters
func ResetCodecCache() {
	codecs.reset()
}
