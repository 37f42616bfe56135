// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package image

import "sync"

// Pool is a thread-safe pool for reusing Grid instances.
//
// Pool groups grids by their dimensions and format, so repeated benchmark
// passes over the same image can reuse output grids instead of allocating.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Grid
	maxSize int // max grids per bucket
}

// poolKey identifies a bucket of identical grid specifications.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a new grid pool with the given maximum grids per bucket.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Grid),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a grid from the pool or creates a new one.
// A reused grid is cleared (all pixels zeroed).
// Returns an error only if the dimensions or format are invalid.
func (p *Pool) Get(width, height int, format Format) (*Grid, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		g := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		g.Clear()
		return g, nil
	}
	p.mu.Unlock()

	return NewGrid(width, height, format)
}

// Put returns a grid to the pool for reuse.
// If g is nil or the bucket is at max capacity, the grid is discarded.
func (p *Pool) Put(g *Grid) {
	if g == nil {
		return
	}

	key := poolKey{
		width:  g.width,
		height: g.height,
		format: g.format,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, g)
}

// Len returns the number of pooled grids across all buckets.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// Default returns the package-level pool.
func Default() *Pool {
	return defaultPool
}
