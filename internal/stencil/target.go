// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stencil

import (
	"github.com/gogpu/stencilbench/internal/color"
	"github.com/gogpu/stencilbench/internal/image"
)

// Target is the write side of a kernel invocation over an output grid.
//
// Set and SetGray are the explicit setter path. Cell returns the raw bytes
// of one pixel, the pointer-out path. PutAtOffset writes at a stride offset
// from a center pixel. Out-of-grid writes follow the edge policy.
type Target struct {
	grid *image.Grid
	edge EdgePolicy
}

// NewTarget binds a target to g.
func NewTarget(g *image.Grid, edge EdgePolicy) *Target {
	return &Target{grid: g, edge: edge}
}

// Grid returns the output grid.
func (t *Target) Grid() *image.Grid { return t.grid }

// Edge returns the edge policy.
func (t *Target) Edge() EdgePolicy { return t.edge }

func (t *Target) resolve(x, y int) (int, int, error) {
	rx, okX := t.edge.Resolve(x, t.grid.Width())
	ry, okY := t.edge.Resolve(y, t.grid.Height())
	if !okX || !okY {
		return 0, 0, &OutOfBoundsError{X: x, Y: y}
	}
	return rx, ry, nil
}

// Set writes an RGBA8 pixel at (x, y).
func (t *Target) Set(x, y int, c color.ColorU8) error {
	rx, ry, err := t.resolve(x, y)
	if err != nil {
		return err
	}
	return t.grid.SetRGBA(rx, ry, c)
}

// SetGray writes a Gray8 pixel at (x, y).
func (t *Target) SetGray(x, y int, v uint8) error {
	rx, ry, err := t.resolve(x, y)
	if err != nil {
		return err
	}
	return t.grid.SetGray(rx, ry, v)
}

// Cell returns the raw bytes of pixel (x, y). Writing them writes the pixel.
// (x, y) must be inside the grid.
func (t *Target) Cell(x, y int) ([]byte, error) {
	p := t.grid.PixelBytes(x, y)
	if p == nil {
		return nil, &OutOfBoundsError{X: x, Y: y}
	}
	return p, nil
}

// PutAtOffset writes c at linear offset base + dx + dy*stride, where base is
// the linear index of an in-grid pixel of an RGBA8 grid.
func (t *Target) PutAtOffset(base, dx, dy int, c color.ColorU8) error {
	if t.grid.Format() != image.FormatRGBA8 {
		return image.ErrFormatMismatch
	}
	w, h := t.grid.Width(), t.grid.Height()
	if base < 0 || base >= w*h {
		return &OutOfBoundsError{X: base % w, Y: base / w}
	}
	x, y := base%w+dx, base/w+dy
	if x >= 0 && x < w && y >= 0 && y < h {
		i := (base + dx + dy*w) * 4
		StoreRGBA(t.grid.Data()[i:i+4], c)
		return nil
	}
	return t.Set(x, y, c)
}

// StoreRGBA writes c into a 4-byte pixel cell.
func StoreRGBA(cell []byte, c color.ColorU8) {
	_ = cell[3]
	cell[0] = c.R
	cell[1] = c.G
	cell[2] = c.B
	cell[3] = c.A
}
