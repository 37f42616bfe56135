// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package parallel provides tile-based parallel dispatch of per-coordinate
// kernels.
//
// The grid is divided into 64x64 pixel tiles. Each tile is one work item
// on a work-stealing WorkerPool, and every coordinate inside a tile is
// handed to the kernel exactly once. Kernels that write only their own
// output cell need no locking.
//
// Thread safety: TileGrid is NOT thread-safe. Dispatcher and WorkerPool
// are safe for concurrent use.
package parallel

// Tile size constants.
const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	// A full RGBA8 tile is 16KB, which fits in L1 cache.
	TileHeight = 64
)

// Tile is a rectangular region of the grid processed as one work item.
//
// Edge tiles may have smaller actual dimensions when the grid is not
// evenly divisible by the tile size.
type Tile struct {
	// X is the tile column index (0-based).
	X int

	// Y is the tile row index (0-based).
	Y int

	// Width is the actual width in pixels (may be < TileWidth for edge tiles).
	Width int

	// Height is the actual height in pixels (may be < TileHeight for edge tiles).
	Height int
}

// Bounds returns the pixel bounds of this tile in grid space.
// Returns (x, y, width, height) where x,y is the top-left corner.
func (t *Tile) Bounds() (x, y, w, h int) {
	return t.X * TileWidth, t.Y * TileHeight, t.Width, t.Height
}

// ForEach calls fn for each coordinate of the tile in row-major order and
// stops at the first error.
func (t *Tile) ForEach(fn func(x, y int) error) error {
	x0, y0, w, h := t.Bounds()
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if err := fn(x, y); err != nil {
				return err
			}
		}
	}
	return nil
}
