// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stencilbench

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/stencilbench/internal/filter"
	"github.com/gogpu/stencilbench/internal/image"
	"github.com/gogpu/stencilbench/internal/stencil"
)

// Sentinel errors.
var (
	// ErrConfig is matched by every *ConfigError.
	ErrConfig = errors.New("stencilbench: invalid config")

	// ErrDimensionMismatch is matched by every *DimensionMismatchError.
	ErrDimensionMismatch = errors.New("stencilbench: dimension mismatch")

	// ErrOutOfBounds is matched by errors from kernels that read or write
	// outside the grid under EdgeReject.
	ErrOutOfBounds = stencil.ErrOutOfBounds

	// ErrNilInput is returned when a context is created without an input grid.
	ErrNilInput = errors.New("stencilbench: input grid is nil")

	// ErrFormatMismatch is returned when a grid has the wrong pixel format
	// for its role.
	ErrFormatMismatch = image.ErrFormatMismatch

	// ErrClosed is returned by Run after Close.
	ErrClosed = errors.New("stencilbench: context is closed")
)

// Config holds the benchmark configuration.
type Config struct {
	// Width and Height are the grid dimensions. Zero takes them from the
	// input grid; a nonzero value must match it.
	Width  int
	Height int

	// BlurRadius is the window radius r of the blur and broadcast kernels.
	// The window has (2r+1)² cells and must not exceed Width*Height.
	BlurRadius int

	// PiIterations is the number of series terms. Zero is valid and yields 3.
	PiIterations int

	// Variant is the kernel variant run by Run.
	Variant Variant

	// Edge resolves window cells that fall outside the grid.
	Edge EdgePolicy

	// Workers is the number of dispatch workers. Zero means GOMAXPROCS.
	Workers int

	// Passes is the number of timed passes per Bench call.
	Passes int
}

// DefaultConfig returns the default benchmark configuration.
func DefaultConfig() Config {
	return Config{
		BlurRadius:   3,
		PiIterations: 30,
		Variant:      BlurFunctional,
		Edge:         EdgeClamp,
		Workers:      0,
		Passes:       1,
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Width < 0 {
		return &ConfigError{Field: "Width", Reason: "must not be negative"}
	}
	if c.Height < 0 {
		return &ConfigError{Field: "Height", Reason: "must not be negative"}
	}
	if c.BlurRadius < 0 {
		return &ConfigError{Field: "BlurRadius", Reason: "must not be negative"}
	}
	if c.Width > 0 && c.Height > 0 {
		if c.Height > math.MaxInt/c.Width {
			return &ConfigError{Field: "Width", Reason: "image area overflows int"}
		}
		if !filter.WindowFits(c.BlurRadius, c.Width*c.Height) {
			return &ConfigError{
				Field:  "BlurRadius",
				Reason: "window of radius " + strconv.Itoa(c.BlurRadius) + " exceeds the image area",
			}
		}
	}
	if c.PiIterations < 0 {
		return &ConfigError{Field: "PiIterations", Reason: "must not be negative"}
	}
	if !c.Variant.IsValid() {
		return &ConfigError{Field: "Variant", Reason: "unknown variant"}
	}
	if !c.Edge.IsValid() {
		return &ConfigError{Field: "Edge", Reason: "unknown edge policy"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must not be negative"}
	}
	if c.Passes < 0 {
		return &ConfigError{Field: "Passes", Reason: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "stencilbench: invalid config." + e.Field + ": " + e.Reason
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Size is a grid size in pixels.
type Size struct {
	Width, Height int
}

func (s Size) String() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

// DimensionMismatchError reports a grid whose size disagrees with the
// configured dimensions.
type DimensionMismatchError struct {
	// Name is the grid role: "input", "output" or "gray".
	Name string
	Want Size
	Got  Size
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("stencilbench: %s grid is %v, want %v", e.Name, e.Got, e.Want)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// EdgePolicy selects how window cells outside the grid are resolved.
type EdgePolicy = stencil.EdgePolicy

// Edge policies.
const (
	// EdgeClamp reads and writes the nearest edge pixel.
	EdgeClamp = stencil.EdgeClamp
	// EdgeWrap wraps around to the opposite edge.
	EdgeWrap = stencil.EdgeWrap
	// EdgeReject fails the pass with an out-of-bounds error.
	EdgeReject = stencil.EdgeReject
)

// ParseEdgePolicy parses "clamp", "wrap" or "reject".
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	p, err := stencil.ParseEdgePolicy(s)
	if err != nil {
		return p, &ConfigError{Field: "Edge", Reason: strconv.Quote(s) + " is not clamp, wrap or reject"}
	}
	return p, nil
}
