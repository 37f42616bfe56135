// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"github.com/gogpu/stencilbench/internal/color"
	"github.com/gogpu/stencilbench/internal/stencil"
)

// Stamp is the result of a functional broadcast: Value is to be written to
// every cell of the window of Radius centered on (X, Y).
type Stamp struct {
	X, Y   int
	Radius int
	Value  color.ColorU8
}

// Cells calls yield for each window cell in row-major order until yield
// returns false.
func (s Stamp) Cells(yield func(x, y int) bool) {
	for dy := -s.Radius; dy <= s.Radius; dy++ {
		for dx := -s.Radius; dx <= s.Radius; dx++ {
			if !yield(s.X+dx, s.Y+dy) {
				return
			}
		}
	}
}

// Apply writes the stamp into out.
func (s Stamp) Apply(out *stencil.Target) error {
	var err error
	s.Cells(func(x, y int) bool {
		err = out.Set(x, y, s.Value)
		return err == nil
	})
	return err
}

// BroadcastFunctional reads the pixel at (x, y) and returns it as a stamp
// for the caller to write.
func BroadcastFunctional(in *stencil.View, x, y, radius int) (Stamp, error) {
	p, err := in.At(x, y)
	if err != nil {
		return Stamp{}, err
	}
	return Stamp{X: x, Y: y, Radius: radius, Value: p}, nil
}

// BroadcastPointer reads the pixel at (x, y) through a cursor and writes it
// over the window with strided raw writes.
func BroadcastPointer(in *stencil.View, out *stencil.Target, x, y, radius int) error {
	cur, err := in.Cursor(x, y, radius)
	if err != nil {
		return err
	}
	p, err := cur.At(0, 0)
	if err != nil {
		return err
	}
	base := cur.Base()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if err := out.PutAtOffset(base, dx, dy, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// BroadcastSetter reads the pixel at (x, y) through a cursor and writes it
// over the window with one setter call per cell.
func BroadcastSetter(in *stencil.View, out *stencil.Target, x, y, radius int) error {
	cur, err := in.Cursor(x, y, radius)
	if err != nil {
		return err
	}
	p, err := cur.At(0, 0)
	if err != nil {
		return err
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if err := out.Set(x+dx, y+dy, p); err != nil {
				return err
			}
		}
	}
	return nil
}
