// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package parallel

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrPoolClosed is returned when work is dispatched on a closed pool.
var ErrPoolClosed = errors.New("parallel: worker pool is closed")

// CellFunc is a kernel invocation for one grid coordinate.
type CellFunc func(x, y int) error

// Dispatcher runs a CellFunc over every coordinate of a grid.
//
// Dispatch splits the grid into tiles and runs one tile per work item on a
// WorkerPool. Nothing is guaranteed about the order in which coordinates
// are visited, so kernels must not depend on other invocations' output.
type Dispatcher struct {
	pool  *WorkerPool
	owned bool

	mu    sync.Mutex
	tiles *TileGrid
}

// NewDispatcher creates a dispatcher with its own pool of the given number
// of workers (0 or negative means GOMAXPROCS). Close releases the pool.
func NewDispatcher(workers int) *Dispatcher {
	return &Dispatcher{pool: NewWorkerPool(workers), owned: true}
}

// NewDispatcherWithPool creates a dispatcher over a shared pool.
// Close does not close a shared pool.
func NewDispatcherWithPool(pool *WorkerPool) *Dispatcher {
	return &Dispatcher{pool: pool}
}

// Workers returns the number of pool workers.
func (d *Dispatcher) Workers() int {
	return d.pool.Workers()
}

// Tiles returns the tile layout used for a width x height grid.
func (d *Dispatcher) Tiles(width, height int) []*Tile {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.tiles == nil {
		d.tiles = NewTileGrid(width, height)
	} else {
		d.tiles.Resize(width, height)
	}
	return d.tiles.AllTiles()
}

// Dispatch runs fn once for each coordinate of a width x height grid in
// parallel. The first error stops tiles that have not started yet, and
// tiles in flight stop at their next coordinate; that error is returned.
func (d *Dispatcher) Dispatch(width, height int, fn CellFunc) error {
	tiles := d.Tiles(width, height)
	if len(tiles) == 0 {
		return nil
	}

	var (
		stop     atomic.Bool
		once     sync.Once
		firstErr error
	)

	wrapped := func(x, y int) error {
		if stop.Load() {
			return errStopped
		}
		return fn(x, y)
	}

	work := make([]func(), len(tiles))
	for i, tile := range tiles {
		work[i] = func() {
			if stop.Load() {
				return
			}
			if err := tile.ForEach(wrapped); err != nil && err != errStopped {
				once.Do(func() {
					firstErr = err
					stop.Store(true)
				})
			}
		}
	}

	if !d.pool.ExecuteAll(work) {
		return ErrPoolClosed
	}
	return firstErr
}

// errStopped ends a tile early after another tile failed.
var errStopped = errors.New("parallel: dispatch stopped")

// Sequential runs fn for each coordinate in row-major order on the calling
// goroutine and returns the first error.
func (d *Dispatcher) Sequential(width, height int, fn CellFunc) error {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if err := fn(x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

// Rows runs fn for each row index in [0, height) in parallel, one band of
// TileHeight rows per work item, and returns when all rows are done.
// On a closed pool the rows run on the calling goroutine.
func (d *Dispatcher) Rows(height int, fn func(y int)) {
	if height <= 0 {
		return
	}

	bands := (height + TileHeight - 1) / TileHeight
	work := make([]func(), bands)
	for b := range bands {
		y0 := b * TileHeight
		y1 := min(y0+TileHeight, height)
		work[b] = func() {
			for y := y0; y < y1; y++ {
				fn(y)
			}
		}
	}

	if !d.pool.ExecuteAll(work) {
		for _, w := range work {
			w()
		}
	}
}

// Close shuts down the pool if the dispatcher owns it.
func (d *Dispatcher) Close() {
	if d.owned {
		d.pool.Close()
	}
}
