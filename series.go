// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stencilbench

// ScalarSeries approximates pi with the Nilakantha series
//
//	pi = 3 + 4/(2·3·4) - 4/(4·5·6) + 4/(6·7·8) - ...
//
// using the given number of terms. It touches no memory beyond its locals
// and is the compute-only baseline of the benchmark. Zero or negative
// iterations return 3.
func ScalarSeries(iterations int) float64 {
	pi := 3.0
	s := 1.0
	for i := 2; i <= 2*iterations; i += 2 {
		f := float64(i)
		pi += s * 4 / (f * (f + 1) * (f + 2))
		s = -s
	}
	return pi
}
