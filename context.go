// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stencilbench

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/stencilbench/internal/image"
	"github.com/gogpu/stencilbench/internal/parallel"
	"github.com/gogpu/stencilbench/internal/stencil"
)

// BenchmarkContext binds a validated configuration to its grids.
//
// The configuration and grid bindings never change after NewContext. The
// preloaded buffer is filled once, on the first buffer variant run, before
// that pass is timed.
//
// Passes that write the same grid must not run concurrently: blur and
// broadcast variants all write Output, and gray variants all write Gray.
// A gray pass may run alongside one blur or broadcast pass.
type BenchmarkContext struct {
	cfg Config

	input  *image.Grid
	output *image.Grid
	gray   *image.Grid

	view    *stencil.View
	outTgt  *stencil.Target
	grayTgt *stencil.Target

	buffer   *stencil.BufferSource
	bufView  *stencil.View
	fillOnce sync.Once
	fillErr  error

	disp     *parallel.Dispatcher
	reporter Reporter

	// pooled holds grids taken from the shared grid pool.
	pooled []*image.Grid
	closed atomic.Bool
}

// NewContext validates cfg against input and creates a context.
// Width and Height of zero are taken from the input grid.
func NewContext(input *PixelGrid, cfg Config, opts ...Option) (*BenchmarkContext, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Format() != image.FormatRGBA8 {
		return nil, fmt.Errorf("stencilbench: input must be RGBA8, got %v: %w", input.Format(), ErrFormatMismatch)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasWorkers {
		cfg.Workers = o.workers
	}

	got := Size{Width: input.Width(), Height: input.Height()}
	if cfg.Width == 0 {
		cfg.Width = got.Width
	}
	if cfg.Height == 0 {
		cfg.Height = got.Height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	want := Size{Width: cfg.Width, Height: cfg.Height}
	if got != want {
		return nil, &DimensionMismatchError{Name: "input", Want: want, Got: got}
	}

	c := &BenchmarkContext{
		cfg:      cfg,
		input:    input,
		reporter: o.reporter,
	}

	var err error
	if c.output, err = c.bindGrid("output", o.output, image.FormatRGBA8); err != nil {
		return nil, err
	}
	if c.gray, err = c.bindGrid("gray", o.gray, image.FormatGray8); err != nil {
		c.release()
		return nil, err
	}

	src, err := stencil.NewGridSource(input)
	if err != nil {
		c.release()
		return nil, err
	}
	if c.view, err = stencil.NewView(src, cfg.Edge); err != nil {
		c.release()
		return nil, err
	}
	if c.buffer, err = stencil.NewBufferSource(cfg.Width, cfg.Height); err != nil {
		c.release()
		return nil, err
	}
	c.outTgt = stencil.NewTarget(c.output, cfg.Edge)
	c.grayTgt = stencil.NewTarget(c.gray, cfg.Edge)

	if o.pool != nil {
		c.disp = parallel.NewDispatcherWithPool(o.pool)
	} else {
		c.disp = parallel.NewDispatcher(cfg.Workers)
	}

	Logger().Info("stencilbench: context created",
		"size", want.String(),
		"radius", cfg.BlurRadius,
		"edge", cfg.Edge.String(),
		"workers", c.disp.Workers())

	return c, nil
}

// bindGrid validates a caller-supplied grid or takes one from the pool.
func (c *BenchmarkContext) bindGrid(name string, g *image.Grid, f image.Format) (*image.Grid, error) {
	want := Size{Width: c.cfg.Width, Height: c.cfg.Height}
	if g == nil {
		pg, err := image.Default().Get(want.Width, want.Height, f)
		if err != nil {
			return nil, err
		}
		c.pooled = append(c.pooled, pg)
		return pg, nil
	}
	if g.Format() != f {
		return nil, fmt.Errorf("stencilbench: %s grid must be %v, got %v: %w", name, f, g.Format(), ErrFormatMismatch)
	}
	if got := (Size{Width: g.Width(), Height: g.Height()}); got != want {
		return nil, &DimensionMismatchError{Name: name, Want: want, Got: got}
	}
	return g, nil
}

// Config returns the resolved configuration.
func (c *BenchmarkContext) Config() Config { return c.cfg }

// Input returns the input grid.
func (c *BenchmarkContext) Input() *PixelGrid { return c.input }

// Output returns the RGBA8 grid written by blur and broadcast variants.
func (c *BenchmarkContext) Output() *PixelGrid { return c.output }

// Gray returns the Gray8 grid written by gray variants.
func (c *BenchmarkContext) Gray() *PixelGrid { return c.gray }

// Workers returns the number of dispatch workers.
func (c *BenchmarkContext) Workers() int { return c.disp.Workers() }

// Preload fills the preloaded buffer from the input grid if it has not been
// filled yet. Buffer variants call it before their timed pass.
func (c *BenchmarkContext) Preload() error {
	c.fillOnce.Do(func() {
		Logger().Debug("stencilbench: filling preload buffer", "rows", c.cfg.Height)
		if err := c.buffer.Fill(c.input, c.disp.Rows); err != nil {
			c.fillErr = fmt.Errorf("stencilbench: preload fill: %w", err)
			return
		}
		c.bufView, c.fillErr = stencil.NewView(c.buffer, c.cfg.Edge)
	})
	return c.fillErr
}

// Close releases the worker pool unless it was shared and returns pooled
// grids. Output and Gray must not be used after Close.
func (c *BenchmarkContext) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.disp.Close()
	c.release()
}

func (c *BenchmarkContext) release() {
	for _, g := range c.pooled {
		image.Default().Put(g)
	}
	c.pooled = nil
}
