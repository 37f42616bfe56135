// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package stencil provides bounds-aware windowed access to pixel sources.
//
// A View reads a Source in two styles: coordinate lookups (At) and
// stride-based linear offsets from a center pixel (AtOffset, Cursor). Both
// styles resolve out-of-grid positions through the same EdgePolicy, so they
// always return identical values for identical positions. A Target is the
// write-side counterpart over an output grid.
package stencil

import (
	"errors"
	"fmt"

	"github.com/gogpu/stencilbench/internal/color"
)

// Errors returned by views and targets.
var (
	// ErrOutOfBounds is matched by every *OutOfBoundsError.
	ErrOutOfBounds = errors.New("stencil: access out of bounds")

	// ErrStrideMismatch is returned when a source's stride or length does
	// not match its width and height.
	ErrStrideMismatch = errors.New("stencil: stride does not match source width")

	// ErrSizeMismatch is returned when a fill source has other dimensions
	// than the buffer being filled.
	ErrSizeMismatch = errors.New("stencil: source and buffer dimensions differ")

	// ErrNotFilled is returned when a view is bound to a BufferSource that
	// has not been filled yet.
	ErrNotFilled = errors.New("stencil: preload buffer not filled")
)

// OutOfBoundsError reports a rejected access at grid coordinate (X, Y).
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("stencil: access (%d, %d) out of bounds", e.X, e.Y)
}

// Unwrap returns ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// readiness is implemented by sources that need a fill pass before reads.
type readiness interface {
	Ready() bool
}

// View is a read-only windowed view over a Source.
// A View is immutable and safe for concurrent use.
type View struct {
	src    Source
	width  int
	height int
	stride int
	edge   EdgePolicy
}

// NewView binds a view to src with the given edge policy.
// The source stride must equal its width and its length must cover
// width*height pixels.
func NewView(src Source, edge EdgePolicy) (*View, error) {
	if r, ok := src.(readiness); ok && !r.Ready() {
		return nil, ErrNotFilled
	}
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 || src.Stride() != w || src.Len() != w*h {
		return nil, ErrStrideMismatch
	}
	if !edge.IsValid() {
		return nil, fmt.Errorf("stencil: invalid edge policy %d", uint8(edge))
	}

	return &View{
		src:    src,
		width:  w,
		height: h,
		stride: w,
		edge:   edge,
	}, nil
}

// Width returns the view width in pixels.
func (v *View) Width() int { return v.width }

// Height returns the view height in pixels.
func (v *View) Height() int { return v.height }

// Stride returns the distance in pixels between vertically adjacent pixels.
func (v *View) Stride() int { return v.stride }

// Edge returns the edge policy.
func (v *View) Edge() EdgePolicy { return v.edge }

// Source returns the bound source.
func (v *View) Source() Source { return v.src }

// Interior reports whether the whole window of the given radius centered
// on (x, y) lies inside the grid.
func (v *View) Interior(x, y, radius int) bool {
	return x-radius >= 0 && x+radius < v.width &&
		y-radius >= 0 && y+radius < v.height
}

// Index resolves (x, y) through the edge policy to a linear pixel index.
func (v *View) Index(x, y int) (int, error) {
	rx, okX := v.edge.Resolve(x, v.width)
	ry, okY := v.edge.Resolve(y, v.height)
	if !okX || !okY {
		return 0, &OutOfBoundsError{X: x, Y: y}
	}
	return rx + ry*v.stride, nil
}

// At returns the pixel at grid coordinate (x, y).
func (v *View) At(x, y int) (color.ColorU8, error) {
	i, err := v.Index(x, y)
	if err != nil {
		return color.ColorU8{}, err
	}
	return v.src.Pixel(i), nil
}

// AtOffset returns the pixel at linear offset base + dx + dy*stride, where
// base is the linear index of an in-grid pixel. Offsets that leave the grid
// are resolved through the edge policy relative to base's coordinate, so
// they never wrap into a neighboring row.
func (v *View) AtOffset(base, dx, dy int) (color.ColorU8, error) {
	if base < 0 || base >= v.width*v.height {
		return color.ColorU8{}, &OutOfBoundsError{X: base % v.stride, Y: base / v.stride}
	}
	bx, by := base%v.stride, base/v.stride
	x, y := bx+dx, by+dy
	if x >= 0 && x < v.width && y >= 0 && y < v.height {
		return v.src.Pixel(base + dx + dy*v.stride), nil
	}
	return v.At(x, y)
}

// Cursor returns a strided read position centered on (x, y) for reads
// within radius of the center. (x, y) must be inside the grid.
func (v *View) Cursor(x, y, radius int) (Cursor, error) {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return Cursor{}, &OutOfBoundsError{X: x, Y: y}
	}
	return Cursor{
		view:     v,
		base:     x + y*v.stride,
		radius:   radius,
		interior: v.Interior(x, y, radius),
	}, nil
}

// Cursor is a raw-pointer style read position: reads are addressed as
// offsets from the center pixel using the view stride.
type Cursor struct {
	view     *View
	base     int
	radius   int
	interior bool
}

// Base returns the linear index of the center pixel.
func (c Cursor) Base() int { return c.base }

// Interior reports whether the full window around the center is in the grid,
// so every offset within the radius addresses the source directly.
func (c Cursor) Interior() bool { return c.interior }

// At returns the pixel at offset (dx, dy) from the center.
func (c Cursor) At(dx, dy int) (color.ColorU8, error) {
	if c.interior && dx >= -c.radius && dx <= c.radius && dy >= -c.radius && dy <= c.radius {
		return c.view.src.Pixel(c.base + dx + dy*c.view.stride), nil
	}
	return c.view.AtOffset(c.base, dx, dy)
}
