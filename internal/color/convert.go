// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package color

// Luminance weights applied to (r, g, b) for gray conversion (BT.601).
const (
	LumaR float32 = 0.299
	LumaG float32 = 0.587
	LumaB float32 = 0.114
)

// Luminance converts an RGBA8 color to an 8-bit gray value.
// Formula: floor(r*0.299 + g*0.587 + b*0.114), clamped to [0,255].
// Alpha is ignored.
func Luminance(c ColorU8) uint8 {
	return clampFloor(float32(c.R)*LumaR + float32(c.G)*LumaG + float32(c.B)*LumaB)
}

// clampFloor truncates v toward zero and clamps it to [0,255].
// Inputs are non-negative, so truncation equals floor.
func clampFloor(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
