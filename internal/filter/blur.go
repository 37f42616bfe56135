// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"github.com/gogpu/stencilbench/internal/color"
	"github.com/gogpu/stencilbench/internal/stencil"
)

// BlurFunctional computes the box blur at (x, y) from coordinate lookups
// and returns the pixel.
func BlurFunctional(in *stencil.View, x, y, radius int) (color.ColorU8, error) {
	sum, err := sumCoords(in, x, y, radius)
	if err != nil {
		return color.ColorU8{}, err
	}
	return sum.Div(uint64(WindowArea(radius))), nil
}

// BlurPointerInPointerOut reads the window by stride offsets from the
// center and writes the result into the raw output cell.
func BlurPointerInPointerOut(in *stencil.View, out []byte, x, y, radius int) error {
	sum, err := sumStrided(in, x, y, radius)
	if err != nil {
		return err
	}
	stencil.StoreRGBA(out, sum.Div(uint64(WindowArea(radius))))
	return nil
}

// BlurPointerInSetterOut reads the window by stride offsets and writes the
// result with an explicit setter call.
func BlurPointerInSetterOut(in *stencil.View, out *stencil.Target, x, y, radius int) error {
	sum, err := sumStrided(in, x, y, radius)
	if err != nil {
		return err
	}
	return out.Set(x, y, sum.Div(uint64(WindowArea(radius))))
}

// BlurGetterInPointerOut reads the window by coordinate lookups and writes
// the result into the raw output cell.
func BlurGetterInPointerOut(in *stencil.View, out []byte, x, y, radius int) error {
	sum, err := sumCoords(in, x, y, radius)
	if err != nil {
		return err
	}
	stencil.StoreRGBA(out, sum.Div(uint64(WindowArea(radius))))
	return nil
}

// BlurBufferIndexed reads the preloaded buffer by computing a direct linear
// index for every window cell, then writes the raw output cell.
func BlurBufferIndexed(buf *stencil.View, out []byte, x, y, radius int) error {
	src := buf.Source()
	var sum color.Sum4
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			idx, err := buf.Index(x+dx, y+dy)
			if err != nil {
				return err
			}
			sum.Add(src.Pixel(idx))
		}
	}
	stencil.StoreRGBA(out, sum.Div(uint64(WindowArea(radius))))
	return nil
}

// BlurBufferPointer reads the preloaded buffer by stride offsets from the
// center, then writes the raw output cell.
func BlurBufferPointer(buf *stencil.View, out []byte, x, y, radius int) error {
	return BlurPointerInPointerOut(buf, out, x, y, radius)
}

// sumCoords accumulates the window around (x, y) with coordinate lookups.
func sumCoords(in *stencil.View, x, y, radius int) (color.Sum4, error) {
	var sum color.Sum4
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p, err := in.At(x+dx, y+dy)
			if err != nil {
				return sum, err
			}
			sum.Add(p)
		}
	}
	return sum, nil
}

// sumStrided accumulates the window around (x, y) with stride offsets from
// the center pixel. Interior windows read the source through a cached
// offset table; edge windows go through the cursor's edge resolution.
func sumStrided(in *stencil.View, x, y, radius int) (color.Sum4, error) {
	var sum color.Sum4

	cur, err := in.Cursor(x, y, radius)
	if err != nil {
		return sum, err
	}

	if cur.Interior() {
		src := in.Source()
		base := cur.Base()
		for _, off := range StrideOffsets(radius, in.Stride()) {
			sum.Add(src.Pixel(base + off))
		}
		return sum, nil
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p, err := cur.At(dx, dy)
			if err != nil {
				return sum, err
			}
			sum.Add(p)
		}
	}
	return sum, nil
}
