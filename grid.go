// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stencilbench

import (
	stdimage "image"

	"github.com/gogpu/stencilbench/internal/color"
	"github.com/gogpu/stencilbench/internal/image"
	"github.com/gogpu/stencilbench/internal/parallel"
)

// PixelGrid is a fixed-size row-major pixel buffer.
type PixelGrid = image.Grid

// Format is the pixel format of a PixelGrid.
type Format = image.Format

// Pixel formats.
const (
	FormatGray8 = image.FormatGray8
	FormatRGBA8 = image.FormatRGBA8
)

// Color is an 8-bit RGBA pixel.
type Color = color.ColorU8

// WorkerPool is a work-stealing goroutine pool shared by contexts via WithPool.
type WorkerPool = parallel.WorkerPool

// NewPixelGrid creates a zeroed grid.
func NewPixelGrid(width, height int, format Format) (*PixelGrid, error) {
	return image.NewGrid(width, height, format)
}

// LoadImage decodes a PNG, JPEG, BMP, TIFF or WebP file into an RGBA8 grid.
func LoadImage(path string) (*PixelGrid, error) {
	return image.LoadImage(path)
}

// FromImage converts any image into an RGBA8 grid.
func FromImage(img stdimage.Image) (*PixelGrid, error) {
	return image.FromImage(img)
}

// NewWorkerPool creates a pool with the given number of workers
// (0 means GOMAXPROCS).
func NewWorkerPool(workers int) *WorkerPool {
	return parallel.NewWorkerPool(workers)
}
