// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package image

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// LoadImage loads an image from the given file path, auto-detecting the
// format from its content. Supported formats: PNG, JPEG, BMP, TIFF, WebP.
// The result is always an RGBA8 grid.
func LoadImage(path string) (*Grid, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromImage(img)
}

// FromImage converts a standard library image into an RGBA8 grid.
// Non-premultiplied sources are copied directly; every other image type is
// converted with golang.org/x/image/draw.
func FromImage(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	g, err := NewGrid(bounds.Dx(), bounds.Dy(), FormatRGBA8)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		rowBytes := g.width * 4
		for y := range g.height {
			src := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(g.data[y*rowBytes:(y+1)*rowBytes], nrgba.Pix[src:src+rowBytes])
		}
		return g, nil
	}

	dst := &image.NRGBA{
		Pix:    g.data,
		Stride: g.width * 4,
		Rect:   image.Rect(0, 0, g.width, g.height),
	}
	xdraw.Copy(dst, image.Point{}, img, bounds, xdraw.Src, nil)
	return g, nil
}

// ToImage returns a standard library view of the grid sharing its pixels.
// RGBA8 grids become *image.NRGBA, Gray8 grids become *image.Gray.
func (g *Grid) ToImage() image.Image {
	rect := image.Rect(0, 0, g.width, g.height)
	if g.format == FormatGray8 {
		return &image.Gray{Pix: g.data, Stride: g.width, Rect: rect}
	}
	return &image.NRGBA{Pix: g.data, Stride: g.width * 4, Rect: rect}
}

// EncodePNG encodes the grid as PNG to the given writer.
func (g *Grid) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, g.ToImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the grid as a PNG file.
func (g *Grid) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := g.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
