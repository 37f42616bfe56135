// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package filter provides the per-pixel stencil kernels of the benchmark.
//
// Every workload comes in several access-pattern variants that compute the
// same result and differ only in how they read input and write output:
//   - coordinate lookups through stencil.View.At (the "getter" path)
//   - stride offsets from a center pixel through stencil.Cursor (the
//     "pointer" path)
//   - explicit stencil.Target.Set calls (the "setter" path)
//   - writes into a pixel's raw bytes from stencil.Target.Cell (the
//     "pointer-out" path)
//
// Workloads:
//   - Box blur: mean of the (2r+1)² window, truncating per channel
//   - Value broadcast: one pixel written over a whole window
//   - Grayscale: floor(0.299r + 0.587g + 0.114b)
//
// Each kernel handles exactly one coordinate and never touches another
// invocation's output cell, except the broadcast kernels, whose windows
// overlap and must be run sequentially by the caller.
package filter
