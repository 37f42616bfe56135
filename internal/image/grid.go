// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package image provides the pixel grids read and written by the stencil
// kernels.
//
// A Grid is a fixed-size, row-major buffer of RGBA8 or Gray8 pixels. Grids
// are created once per benchmark run and never resized.
package image

import (
	"bytes"
	"errors"

	"github.com/gogpu/stencilbench/internal/color"
)

// Common errors for grid operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrOutOfBounds is returned when pixel coordinates are outside grid bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrFormatMismatch is returned when a grid is accessed with the wrong
	// pixel type (for example SetGray on an RGBA8 grid).
	ErrFormatMismatch = errors.New("image: pixel format mismatch")
)

// Grid is a contiguous row-major pixel buffer.
//
// Pixel (x, y) lives at pixel index x + y*width, and at byte offset
// index * BytesPerPixel. There is no row padding, so the stride in pixels
// always equals the width.
//
// Thread safety: Grid is safe for concurrent reads. Concurrent writes are
// safe only when they target distinct pixels.
type Grid struct {
	data   []byte
	width  int
	height int
	format Format
}

// NewGrid creates a zero-initialized grid with the given dimensions and format.
func NewGrid(width, height int, format Format) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	return &Grid{
		data:   make([]byte, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]byte, len(g.data))
	copy(data, g.data)

	return &Grid{
		data:   data,
		width:  g.width,
		height: g.height,
		format: g.format,
	}
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in pixels.
func (g *Grid) Height() int {
	return g.height
}

// Stride returns the distance in pixels between vertically adjacent pixels.
func (g *Grid) Stride() int {
	return g.width
}

// Len returns the number of pixels in the grid.
func (g *Grid) Len() int {
	return g.width * g.height
}

// Format returns the pixel format.
func (g *Grid) Format() Format {
	return g.format
}

// Data returns the raw pixel data slice.
func (g *Grid) Data() []byte {
	return g.data
}

// SameSize reports whether o has the same width and height as g.
func (g *Grid) SameSize(o *Grid) bool {
	return o != nil && g.width == o.width && g.height == o.height
}

// Equal reports whether o has identical dimensions, format and pixels.
func (g *Grid) Equal(o *Grid) bool {
	return g.SameSize(o) && g.format == o.format && bytes.Equal(g.data, o.data)
}

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (g *Grid) PixelOffset(x, y int) int {
	if !g.InBounds(x, y) {
		return -1
	}
	return (y*g.width + x) * g.format.BytesPerPixel()
}

// PixelBytes returns a slice of the raw bytes for pixel (x, y).
// Writing to the slice writes the pixel. Returns nil if out of bounds.
func (g *Grid) PixelBytes(x, y int) []byte {
	offset := g.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	bpp := g.format.BytesPerPixel()
	return g.data[offset : offset+bpp : offset+bpp]
}

// RGBAAt returns the RGBA8 pixel at (x, y).
func (g *Grid) RGBAAt(x, y int) (color.ColorU8, error) {
	if g.format != FormatRGBA8 {
		return color.ColorU8{}, ErrFormatMismatch
	}
	offset := g.PixelOffset(x, y)
	if offset < 0 {
		return color.ColorU8{}, ErrOutOfBounds
	}
	p := g.data[offset : offset+4 : offset+4]
	return color.ColorU8{R: p[0], G: p[1], B: p[2], A: p[3]}, nil
}

// RGBAAtIndex returns the RGBA8 pixel at linear pixel index i.
// The caller guarantees 0 <= i < Len() and an RGBA8 format.
func (g *Grid) RGBAAtIndex(i int) color.ColorU8 {
	p := g.data[i*4 : i*4+4 : i*4+4]
	return color.ColorU8{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// SetRGBA sets the RGBA8 pixel at (x, y).
func (g *Grid) SetRGBA(x, y int, c color.ColorU8) error {
	if g.format != FormatRGBA8 {
		return ErrFormatMismatch
	}
	offset := g.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	g.data[offset] = c.R
	g.data[offset+1] = c.G
	g.data[offset+2] = c.B
	g.data[offset+3] = c.A
	return nil
}

// GrayAt returns the Gray8 pixel at (x, y).
func (g *Grid) GrayAt(x, y int) (uint8, error) {
	if g.format != FormatGray8 {
		return 0, ErrFormatMismatch
	}
	offset := g.PixelOffset(x, y)
	if offset < 0 {
		return 0, ErrOutOfBounds
	}
	return g.data[offset], nil
}

// SetGray sets the Gray8 pixel at (x, y).
func (g *Grid) SetGray(x, y int, v uint8) error {
	if g.format != FormatGray8 {
		return ErrFormatMismatch
	}
	offset := g.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	g.data[offset] = v
	return nil
}

// Clear sets all pixels to zero.
func (g *Grid) Clear() {
	clear(g.data)
}

// Fill sets every pixel of an RGBA8 grid to c.
func (g *Grid) Fill(c color.ColorU8) error {
	if g.format != FormatRGBA8 {
		return ErrFormatMismatch
	}
	for i := 0; i < len(g.data); i += 4 {
		g.data[i] = c.R
		g.data[i+1] = c.G
		g.data[i+2] = c.B
		g.data[i+3] = c.A
	}
	return nil
}
