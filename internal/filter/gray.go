// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"github.com/gogpu/stencilbench/internal/color"
	"github.com/gogpu/stencilbench/internal/stencil"
)

// GrayFunctional reads (x, y) by coordinate and returns its luminance.
func GrayFunctional(in *stencil.View, x, y int) (uint8, error) {
	p, err := in.At(x, y)
	if err != nil {
		return 0, err
	}
	return color.Luminance(p), nil
}

// GrayPointerInSetterOut reads (x, y) through a cursor and writes the
// luminance with a setter call.
func GrayPointerInSetterOut(in *stencil.View, out *stencil.Target, x, y int) error {
	v, err := grayCursor(in, x, y)
	if err != nil {
		return err
	}
	return out.SetGray(x, y, v)
}

// GrayGetterInSetterOut reads (x, y) by coordinate and writes the luminance
// with a setter call.
func GrayGetterInSetterOut(in *stencil.View, out *stencil.Target, x, y int) error {
	v, err := GrayFunctional(in, x, y)
	if err != nil {
		return err
	}
	return out.SetGray(x, y, v)
}

// GrayPointerInPointerOut reads (x, y) through a cursor and stores the
// luminance into the raw output cell.
func GrayPointerInPointerOut(in *stencil.View, out []byte, x, y int) error {
	v, err := grayCursor(in, x, y)
	if err != nil {
		return err
	}
	out[0] = v
	return nil
}

// GrayGetterInPointerOut reads (x, y) by coordinate and stores the
// luminance into the raw output cell.
func GrayGetterInPointerOut(in *stencil.View, out []byte, x, y int) error {
	v, err := GrayFunctional(in, x, y)
	if err != nil {
		return err
	}
	out[0] = v
	return nil
}

func grayCursor(in *stencil.View, x, y int) (uint8, error) {
	cur, err := in.Cursor(x, y, 0)
	if err != nil {
		return 0, err
	}
	p, err := cur.At(0, 0)
	if err != nil {
		return 0, err
	}
	return color.Luminance(p), nil
}
