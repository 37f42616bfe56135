// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shader holds WGSL compute descriptions of the blur and grayscale
// kernels, compiled to SPIR-V with naga.
//
// Both kernels share one bind group:
//
//	@binding(0) uniform Params (width, height, radius, pad)
//	@binding(1) storage(read) input pixels, packed RGBA8 u32
//	@binding(2) storage(read_write) output, one u32 per pixel
//
// The GPU blur clamps at the edges, matching EdgeClamp on the CPU.
package shader

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
)

//go:embed shaders/blur.wgsl
var blurShaderSource string

//go:embed shaders/gray.wgsl
var grayShaderSource string

// ErrUnknownKernel is returned for a kernel name with no shader.
var ErrUnknownKernel = errors.New("shader: unknown kernel")

// WorkgroupSize is the workgroup edge length declared by every kernel.
const WorkgroupSize = 8

// ParamsSize is the size in bytes of the Params uniform.
const ParamsSize = 16

// Source describes one compute kernel.
type Source struct {
	// Name identifies the kernel ("blur" or "gray").
	Name string

	// WGSL is the shader source.
	WGSL string

	// EntryPoint is the compute entry point.
	EntryPoint string

	// Input and Output are the texture formats of the pixel data bound at
	// bindings 1 and 2.
	Input  gputypes.TextureFormat
	Output gputypes.TextureFormat
}

var sources = []Source{
	{
		Name:       "blur",
		WGSL:       blurShaderSource,
		EntryPoint: "main",
		Input:      gputypes.TextureFormatRGBA8Unorm,
		Output:     gputypes.TextureFormatRGBA8Unorm,
	},
	{
		Name:       "gray",
		WGSL:       grayShaderSource,
		EntryPoint: "main",
		Input:      gputypes.TextureFormatRGBA8Unorm,
		Output:     gputypes.TextureFormatR8Unorm,
	},
}

// Sources returns all kernel descriptions.
func Sources() []Source {
	out := make([]Source, len(sources))
	copy(out, sources)
	return out
}

// Lookup returns the kernel description with the given name.
func Lookup(name string) (Source, error) {
	for _, s := range sources {
		if s.Name == name {
			return s, nil
		}
	}
	return Source{}, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}

// Compile compiles the named kernel to SPIR-V words.
func Compile(name string) ([]uint32, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return CompileWGSL(s.WGSL)
}

// CompileWGSL compiles WGSL source to SPIR-V words.
func CompileWGSL(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return words, nil
}

// Layout returns the bind group layout entries of the named kernel.
func Layout(name string) ([]gputypes.BindGroupLayoutEntry, error) {
	if _, err := Lookup(name); err != nil {
		return nil, err
	}

	// @binding(0) uniform params
	// @binding(1) storage(read) src
	// @binding(2) storage(read_write) dst
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageCompute,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
		{
			Binding:    1,
			Visibility: gputypes.ShaderStageCompute,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage},
		},
		{
			Binding:    2,
			Visibility: gputypes.ShaderStageCompute,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage},
		},
	}, nil
}

// Params is the uniform block shared by all kernels.
type Params struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
	Radius uint32 `json:"radius"`
}

// Bytes packs p into the little-endian uniform layout.
func (p Params) Bytes() []byte {
	b := make([]byte, 0, ParamsSize)
	b = binary.LittleEndian.AppendUint32(b, p.Width)
	b = binary.LittleEndian.AppendUint32(b, p.Height)
	b = binary.LittleEndian.AppendUint32(b, p.Radius)
	b = binary.LittleEndian.AppendUint32(b, 0)
	return b
}

// Workgroups returns the dispatch size covering a width x height grid.
func Workgroups(width, height int) (x, y uint32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return uint32((width + WorkgroupSize - 1) / WorkgroupSize),
		uint32((height + WorkgroupSize - 1) / WorkgroupSize)
}
