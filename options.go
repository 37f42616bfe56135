// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stencilbench

// Option configures a BenchmarkContext during creation.
//
// Example:
//
//	// Default: grids from the shared pool, GOMAXPROCS workers
//	ctx, err := stencilbench.NewContext(input, stencilbench.DefaultConfig())
//
//	// Four workers, results printed as they arrive
//	ctx, err := stencilbench.NewContext(input, cfg,
//	    stencilbench.WithWorkers(4),
//	    stencilbench.WithReporter(stencilbench.ReporterFunc(func(r stencilbench.Result) {
//	        fmt.Println(r.Variant, r.Elapsed)
//	    })))
type Option func(*contextOptions)

// contextOptions holds optional configuration for context creation.
type contextOptions struct {
	workers    int
	hasWorkers bool
	reporter   Reporter
	output     *PixelGrid
	gray       *PixelGrid
	pool       *WorkerPool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{}
}

// WithWorkers overrides Config.Workers.
func WithWorkers(n int) Option {
	return func(o *contextOptions) {
		o.workers = n
		o.hasWorkers = true
	}
}

// WithReporter sets the collaborator that receives every pass result.
func WithReporter(r Reporter) Option {
	return func(o *contextOptions) {
		o.reporter = r
	}
}

// WithOutput sets the RGBA8 output grid for blur and broadcast variants.
// Its dimensions must match the input.
func WithOutput(g *PixelGrid) Option {
	return func(o *contextOptions) {
		o.output = g
	}
}

// WithGray sets the Gray8 output grid for gray variants.
// Its dimensions must match the input.
func WithGray(g *PixelGrid) Option {
	return func(o *contextOptions) {
		o.gray = g
	}
}

// WithPool runs passes on a shared worker pool. The pool takes precedence
// over the worker count and is not closed by BenchmarkContext.Close.
func WithPool(p *WorkerPool) Option {
	return func(o *contextOptions) {
		o.pool = p
	}
}
