// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stencilbench

import (
	"fmt"
	"time"

	"github.com/gogpu/stencilbench/internal/filter"
	"github.com/gogpu/stencilbench/internal/parallel"
)

// KernelFunc computes one grid coordinate of a pass.
type KernelFunc func(x, y int) error

// kernelBuilder binds a variant to a context.
type kernelBuilder func(c *BenchmarkContext) KernelFunc

var kernels = [variantCount]kernelBuilder{
	BlurFunctional: func(c *BenchmarkContext) KernelFunc {
		r := c.cfg.BlurRadius
		return func(x, y int) error {
			p, err := filter.BlurFunctional(c.view, x, y, r)
			if err != nil {
				return err
			}
			return c.output.SetRGBA(x, y, p)
		}
	},
	BlurPointerInPointerOut: func(c *BenchmarkContext) KernelFunc {
		return c.cellKernel(func(cell []byte, x, y int) error {
			return filter.BlurPointerInPointerOut(c.view, cell, x, y, c.cfg.BlurRadius)
		})
	},
	BlurPointerInSetterOut: func(c *BenchmarkContext) KernelFunc {
		r := c.cfg.BlurRadius
		return func(x, y int) error {
			return filter.BlurPointerInSetterOut(c.view, c.outTgt, x, y, r)
		}
	},
	BlurGetterInPointerOut: func(c *BenchmarkContext) KernelFunc {
		return c.cellKernel(func(cell []byte, x, y int) error {
			return filter.BlurGetterInPointerOut(c.view, cell, x, y, c.cfg.BlurRadius)
		})
	},
	BlurBufferIndexed: func(c *BenchmarkContext) KernelFunc {
		return c.cellKernel(func(cell []byte, x, y int) error {
			return filter.BlurBufferIndexed(c.bufView, cell, x, y, c.cfg.BlurRadius)
		})
	},
	BlurBufferPointer: func(c *BenchmarkContext) KernelFunc {
		return c.cellKernel(func(cell []byte, x, y int) error {
			return filter.BlurBufferPointer(c.bufView, cell, x, y, c.cfg.BlurRadius)
		})
	},
	BroadcastFunctional: func(c *BenchmarkContext) KernelFunc {
		r := c.cfg.BlurRadius
		return func(x, y int) error {
			s, err := filter.BroadcastFunctional(c.view, x, y, r)
			if err != nil {
				return err
			}
			return s.Apply(c.outTgt)
		}
	},
	BroadcastPointer: func(c *BenchmarkContext) KernelFunc {
		r := c.cfg.BlurRadius
		return func(x, y int) error {
			return filter.BroadcastPointer(c.view, c.outTgt, x, y, r)
		}
	},
	BroadcastSetter: func(c *BenchmarkContext) KernelFunc {
		r := c.cfg.BlurRadius
		return func(x, y int) error {
			return filter.BroadcastSetter(c.view, c.outTgt, x, y, r)
		}
	},
	GrayFunctional: func(c *BenchmarkContext) KernelFunc {
		return func(x, y int) error {
			v, err := filter.GrayFunctional(c.view, x, y)
			if err != nil {
				return err
			}
			return c.gray.SetGray(x, y, v)
		}
	},
	GrayPointerInSetterOut: func(c *BenchmarkContext) KernelFunc {
		return func(x, y int) error {
			return filter.GrayPointerInSetterOut(c.view, c.grayTgt, x, y)
		}
	},
	GrayGetterInSetterOut: func(c *BenchmarkContext) KernelFunc {
		return func(x, y int) error {
			return filter.GrayGetterInSetterOut(c.view, c.grayTgt, x, y)
		}
	},
	GrayPointerInPointerOut: func(c *BenchmarkContext) KernelFunc {
		return c.grayCellKernel(func(cell []byte, x, y int) error {
			return filter.GrayPointerInPointerOut(c.view, cell, x, y)
		})
	},
	GrayGetterInPointerOut: func(c *BenchmarkContext) KernelFunc {
		return c.grayCellKernel(func(cell []byte, x, y int) error {
			return filter.GrayGetterInPointerOut(c.view, cell, x, y)
		})
	},
}

// cellKernel hands fn the raw output cell of each coordinate.
func (c *BenchmarkContext) cellKernel(fn func(cell []byte, x, y int) error) KernelFunc {
	return func(x, y int) error {
		cell, err := c.outTgt.Cell(x, y)
		if err != nil {
			return err
		}
		return fn(cell, x, y)
	}
}

// grayCellKernel hands fn the raw gray cell of each coordinate.
func (c *BenchmarkContext) grayCellKernel(fn func(cell []byte, x, y int) error) KernelFunc {
	return func(x, y int) error {
		cell, err := c.grayTgt.Cell(x, y)
		if err != nil {
			return err
		}
		return fn(cell, x, y)
	}
}

// Kernel returns the per-coordinate kernel of a grid variant. Buffer
// variants fill the preloaded buffer first. Series has no kernel.
func (c *BenchmarkContext) Kernel(v Variant) (KernelFunc, error) {
	if !v.IsValid() {
		return nil, &ConfigError{Field: "Variant", Reason: "unknown variant"}
	}
	if v.Family() == FamilySeries {
		return nil, &ConfigError{Field: "Variant", Reason: "series has no grid kernel"}
	}
	if v.UsesBuffer() {
		if err := c.Preload(); err != nil {
			return nil, err
		}
	}
	return kernels[v](c), nil
}

// Run times one full pass of the configured variant.
func (c *BenchmarkContext) Run() (Result, error) {
	return c.RunVariant(c.cfg.Variant)
}

// RunVariant times one full pass of v and hands the result to the reporter.
//
// Blur and gray variants run in parallel, one tile per work item. Broadcast
// variants write overlapping windows, so their passes always run on the
// calling goroutine in row-major order and the last writer wins.
func (c *BenchmarkContext) RunVariant(v Variant) (Result, error) {
	if c.closed.Load() {
		return Result{}, ErrClosed
	}

	res := Result{
		Variant: v,
		Width:   c.cfg.Width,
		Height:  c.cfg.Height,
	}

	if v == Series {
		start := time.Now()
		res.Series = ScalarSeries(c.cfg.PiIterations)
		res.Elapsed = time.Since(start)
		c.report(res)
		return res, nil
	}

	kernel, err := c.Kernel(v)
	if err != nil {
		return Result{}, err
	}

	log := Logger()
	sequential := v.Family() == FamilyBroadcast
	if sequential && c.disp.Workers() > 1 {
		log.Warn("stencilbench: broadcast variant runs sequentially",
			"variant", v.String(), "workers", c.disp.Workers())
	}
	if !sequential {
		res.Tiles = len(c.disp.Tiles(c.cfg.Width, c.cfg.Height))
	}
	log.Debug("stencilbench: pass start", "variant", v.String(), "tiles", res.Tiles)

	start := time.Now()
	if sequential {
		err = c.disp.Sequential(c.cfg.Width, c.cfg.Height, parallel.CellFunc(kernel))
	} else {
		err = c.disp.Dispatch(c.cfg.Width, c.cfg.Height, parallel.CellFunc(kernel))
	}
	res.Elapsed = time.Since(start)

	if err != nil {
		return Result{}, fmt.Errorf("stencilbench: %s pass: %w", v, err)
	}

	log.Debug("stencilbench: pass end", "variant", v.String(), "elapsed", res.Elapsed)
	c.report(res)
	return res, nil
}

func (c *BenchmarkContext) report(res Result) {
	if c.reporter != nil {
		c.reporter.Report(res)
	}
}
