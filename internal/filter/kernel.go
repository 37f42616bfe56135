// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import "sync"

// WindowSide returns the side length 2*radius+1 of a square window.
func WindowSide(radius int) int {
	return 2*radius + 1
}

// WindowArea returns the number of cells (2*radius+1)² in a square window.
func WindowArea(radius int) int {
	side := WindowSide(radius)
	return side * side
}

// WindowFits reports whether a window of the given radius has at most cells
// cells. It never overflows, unlike comparing against WindowArea.
func WindowFits(radius, cells int) bool {
	if radius < 0 || cells <= 0 {
		return false
	}
	if radius > (cells-1)/2 {
		return false
	}
	side := WindowSide(radius)
	return side <= cells/side
}

// offsetKey identifies a stride offset table.
type offsetKey struct {
	radius int
	stride int
}

// offsetCache caches window offset tables to avoid recomputation per pixel.
type offsetCache struct {
	mu     sync.RWMutex
	cache  map[offsetKey][]int
	maxLen int
}

var defaultOffsetCache = newOffsetCache(64)

// newOffsetCache creates an offset cache with the given maximum entries.
func newOffsetCache(maxLen int) *offsetCache {
	return &offsetCache{
		cache:  make(map[offsetKey][]int),
		maxLen: maxLen,
	}
}

// get retrieves a table from cache or generates and caches it.
func (c *offsetCache) get(radius, stride int) []int {
	key := offsetKey{radius: radius, stride: stride}

	c.mu.RLock()
	if offsets, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return offsets
	}
	c.mu.RUnlock()

	offsets := make([]int, 0, WindowArea(radius))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			offsets = append(offsets, dx+dy*stride)
		}
	}

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = offsets
	c.mu.Unlock()

	return offsets
}

// StrideOffsets returns the linear offsets dx + dy*stride of every window
// cell in row-major order (dy outer, dx inner). The returned slice is shared
// and must not be modified.
func StrideOffsets(radius, stride int) []int {
	return defaultOffsetCache.get(radius, stride)
}
