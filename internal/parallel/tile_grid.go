// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package parallel

// TileGrid divides a grid into tiles for parallel dispatch.
//
// Edge tiles may have smaller dimensions when the grid is not evenly
// divisible by the tile size. Tiles are stored in a flat slice, accessed
// via index calculation: index = ty * tilesX + tx.
//
// Thread safety: TileGrid is NOT thread-safe.
type TileGrid struct {
	// tiles is a flat slice of all tiles (row-major order).
	tiles []*Tile

	// tilesX is the number of tiles horizontally.
	tilesX int

	// tilesY is the number of tiles vertically.
	tilesY int

	// width is the grid width in pixels.
	width int

	// height is the grid height in pixels.
	height int
}

// NewTileGrid creates a tile grid covering width x height pixels.
// Non-positive dimensions produce an empty grid.
func NewTileGrid(width, height int) *TileGrid {
	g := &TileGrid{}
	g.Resize(width, height)
	return g
}

// allocateTiles creates all tiles for the grid.
func (g *TileGrid) allocateTiles() {
	g.tiles = make([]*Tile, g.tilesX*g.tilesY)
	for ty := range g.tilesY {
		for tx := range g.tilesX {
			tileW := TileWidth
			tileH := TileHeight

			// Right edge tile
			if (tx+1)*TileWidth > g.width {
				tileW = g.width - tx*TileWidth
			}
			// Bottom edge tile
			if (ty+1)*TileHeight > g.height {
				tileH = g.height - ty*TileHeight
			}

			g.tiles[ty*g.tilesX+tx] = &Tile{X: tx, Y: ty, Width: tileW, Height: tileH}
		}
	}
}

// Resize changes the grid dimensions, reallocating tiles as needed.
// If dimensions haven't changed, this is a no-op.
func (g *TileGrid) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		*g = TileGrid{}
		return
	}
	if g.width == width && g.height == height {
		return
	}

	g.tilesX = (width + TileWidth - 1) / TileWidth
	g.tilesY = (height + TileHeight - 1) / TileHeight
	g.width = width
	g.height = height
	g.allocateTiles()
}

// AllTiles returns all tiles in the grid.
// The returned slice should not be modified.
func (g *TileGrid) AllTiles() []*Tile {
	return g.tiles
}
