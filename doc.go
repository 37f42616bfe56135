// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package stencilbench is a benchmark harness for per-pixel image kernels
// that compares memory-access patterns.
//
// Each workload has several variants that compute the same result and
// differ only in how they read input and write output: coordinate lookups,
// stride offsets from a center pixel, explicit setter calls and raw cell
// writes. Timing the variants against each other attributes cost to the
// access mechanism rather than the computation.
//
// Workloads:
//   - Box blur over a (2r+1)² window, six variants
//   - Value broadcast of one pixel over a window, three variants
//   - RGB to luminance, five variants
//   - A compute-only scalar series baseline
//
// # Quick Start
//
//	input, err := stencilbench.LoadImage("photo.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx, err := stencilbench.NewContext(input, stencilbench.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	res, err := ctx.RunVariant(stencilbench.BlurPointerInPointerOut)
//	fmt.Println(res.Elapsed)
//	ctx.Output().SavePNG("blurred.png")
//
// # Edges
//
// Windows that cross the grid edge are resolved by Config.Edge: EdgeClamp
// (default) repeats the edge pixel, EdgeWrap wraps around, and EdgeReject
// fails the pass with an error matching ErrOutOfBounds.
//
// # Concurrency
//
// Blur and gray passes run on a work-stealing pool, one 64x64 tile per work
// item, with no locking since every invocation writes only its own cell.
// Broadcast passes run sequentially in row-major order.
package stencilbench
