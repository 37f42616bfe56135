// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stencil

import (
	"sync/atomic"

	"github.com/gogpu/stencilbench/internal/color"
	"github.com/gogpu/stencilbench/internal/image"
)

// Source is a read-only RGBA8 pixel source with row-major layout.
//
// Pixel takes a linear pixel index in [0, Len()). Implementations never
// mutate their backing storage through this interface.
type Source interface {
	Width() int
	Height() int
	Stride() int
	Len() int
	Pixel(i int) color.ColorU8
}

// GridSource reads from a live RGBA8 grid.
type GridSource struct {
	grid *image.Grid
}

// NewGridSource binds a source to an RGBA8 grid.
func NewGridSource(g *image.Grid) (*GridSource, error) {
	if g == nil {
		return nil, image.ErrInvalidDimensions
	}
	if g.Format() != image.FormatRGBA8 {
		return nil, image.ErrFormatMismatch
	}
	return &GridSource{grid: g}, nil
}

// Width returns the grid width.
func (s *GridSource) Width() int { return s.grid.Width() }

// Height returns the grid height.
func (s *GridSource) Height() int { return s.grid.Height() }

// Stride returns the grid stride in pixels.
func (s *GridSource) Stride() int { return s.grid.Stride() }

// Len returns the number of pixels.
func (s *GridSource) Len() int { return s.grid.Len() }

// Pixel returns the pixel at linear index i.
func (s *GridSource) Pixel(i int) color.ColorU8 { return s.grid.RGBAAtIndex(i) }

// BufferSource is a fixed-size preloaded scratch buffer with the same
// row-major layout as the grid it is filled from.
//
// The buffer must be filled once with Fill before any view reads it.
// Fill returns only after every row has been copied, so a successful Fill
// is the barrier between the fill pass and the kernels reading the buffer.
type BufferSource struct {
	pixels []color.ColorU8
	width  int
	height int
	ready  atomic.Bool
}

// NewBufferSource allocates an unfilled buffer of the given dimensions.
func NewBufferSource(width, height int) (*BufferSource, error) {
	if width <= 0 || height <= 0 {
		return nil, image.ErrInvalidDimensions
	}
	return &BufferSource{
		pixels: make([]color.ColorU8, width*height),
		width:  width,
		height: height,
	}, nil
}

// RowRunner runs fn once for every row in [0, height) and returns after
// all calls have finished. Rows may run concurrently.
type RowRunner func(height int, fn func(y int))

// Fill copies g into the buffer, one row per fn call of run.
// A nil run copies rows sequentially on the calling goroutine.
// g must be an RGBA8 grid with the buffer's dimensions.
func (b *BufferSource) Fill(g *image.Grid, run RowRunner) error {
	if g == nil || g.Width() != b.width || g.Height() != b.height {
		return ErrSizeMismatch
	}
	if g.Format() != image.FormatRGBA8 {
		return image.ErrFormatMismatch
	}

	copyRow := func(y int) {
		row := y * b.width
		for x := range b.width {
			b.pixels[row+x] = g.RGBAAtIndex(row + x)
		}
	}

	if run == nil {
		for y := range b.height {
			copyRow(y)
		}
	} else {
		run(b.height, copyRow)
	}

	b.ready.Store(true)
	return nil
}

// Ready reports whether Fill has completed.
func (b *BufferSource) Ready() bool { return b.ready.Load() }

// Width returns the buffer width.
func (b *BufferSource) Width() int { return b.width }

// Height returns the buffer height.
func (b *BufferSource) Height() int { return b.height }

// Stride returns the buffer stride in pixels.
func (b *BufferSource) Stride() int { return b.width }

// Len returns the number of pixels.
func (b *BufferSource) Len() int { return len(b.pixels) }

// Pixel returns the pixel at linear index i.
func (b *BufferSource) Pixel(i int) color.ColorU8 { return b.pixels[i] }
