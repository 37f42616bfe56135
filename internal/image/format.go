// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package image

import "github.com/gogpu/gputypes"

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGBA8 is 32-bit RGBA, non-premultiplied (4 bytes per pixel).
	// This is the format of every blur input and output.
	FormatRGBA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// TextureFormat is the matching GPU texture format.
	TextureFormat gputypes.TextureFormat
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {
		BytesPerPixel: 1,
		Channels:      1,
		TextureFormat: gputypes.TextureFormatR8Unorm,
	},
	FormatRGBA8: {
		BytesPerPixel: 4,
		Channels:      4,
		TextureFormat: gputypes.TextureFormatRGBA8Unorm,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// TextureFormat returns the GPU texture format with the same layout.
// Unknown formats map to gputypes.TextureFormatUndefined.
func (f Format) TextureFormat() gputypes.TextureFormat {
	if !f.IsValid() {
		return gputypes.TextureFormatUndefined
	}
	return f.Info().TextureFormat
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return width * height * f.BytesPerPixel()
}
