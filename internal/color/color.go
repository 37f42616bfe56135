// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package color provides the 8-bit pixel types shared by the stencil kernels.
package color

// ColorU8 represents a color with uint8 components in [0,255].
// It is the RGBA8 pixel read and written by every kernel.
type ColorU8 struct {
	R, G, B, A uint8
}

// Sum4 accumulates RGBA channels. Each channel holds up to 2^56 full-scale
// samples without overflow.
type Sum4 struct {
	R, G, B, A uint64
}

// Add accumulates c into the sum.
func (s *Sum4) Add(c ColorU8) {
	s.R += uint64(c.R)
	s.G += uint64(c.G)
	s.B += uint64(c.B)
	s.A += uint64(c.A)
}

// Div returns the per-channel quotient sum/count, truncating.
// count must be positive.
func (s Sum4) Div(count uint64) ColorU8 {
	return ColorU8{
		R: uint8(s.R / count),
		G: uint8(s.G / count),
		B: uint8(s.B / count),
		A: uint8(s.A / count),
	}
}

// RGBA8 builds an opaque color from its RGB channels.
func RGBA8(r, g, b uint8) ColorU8 {
	return ColorU8{R: r, G: g, B: b, A: 255}
}
