// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stencilbench

import (
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result is the outcome of one timed pass.
type Result struct {
	Variant Variant
	Width   int
	Height  int

	// Tiles is the number of work items of a parallel pass, 0 for
	// sequential and series passes.
	Tiles int

	// Elapsed is the wall-clock time of the whole pass.
	Elapsed time.Duration

	// Series is the scalar series value of a Series pass.
	Series float64
}

// Pixels returns the number of grid coordinates of the pass.
func (r Result) Pixels() int {
	if r.Variant == Series {
		return 0
	}
	return r.Width * r.Height
}

// NsPerPixel returns the elapsed time per coordinate in nanoseconds.
func (r Result) NsPerPixel() float64 {
	n := r.Pixels()
	if n == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(n)
}

// Reporter receives the result of every pass.
type Reporter interface {
	Report(Result)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Result)

// Report calls f(r).
func (f ReporterFunc) Report(r Result) { f(r) }

// Summary aggregates several passes of one variant.
type Summary struct {
	Variant Variant
	Passes  int

	Mean   time.Duration
	StdDev time.Duration
	Median time.Duration
	Min    time.Duration
	Max    time.Duration

	// Last is the final pass, with its series value for Series runs.
	Last Result
}

// NsPerPixel returns the mean pass time per coordinate in nanoseconds.
func (s Summary) NsPerPixel() float64 {
	r := s.Last
	r.Elapsed = s.Mean
	return r.NsPerPixel()
}

// Summarize computes pass statistics. It returns the zero Summary for no
// results. StdDev is zero for a single pass.
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(results))
	for i, r := range results {
		xs[i] = float64(r.Elapsed)
	}
	slices.Sort(xs)

	s := Summary{
		Variant: results[0].Variant,
		Passes:  len(results),
		Mean:    time.Duration(stat.Mean(xs, nil)),
		Median:  time.Duration(stat.Quantile(0.5, stat.Empirical, xs, nil)),
		Min:     time.Duration(floats.Min(xs)),
		Max:     time.Duration(floats.Max(xs)),
		Last:    results[len(results)-1],
	}
	if len(xs) > 1 {
		s.StdDev = time.Duration(stat.StdDev(xs, nil))
	}
	return s
}

// Bench runs passes timed passes of v and summarizes them. Zero passes
// uses Config.Passes; the first error aborts the run.
func (c *BenchmarkContext) Bench(v Variant, passes int) (Summary, error) {
	if passes < 0 {
		return Summary{}, &ConfigError{Field: "Passes", Reason: "must not be negative"}
	}
	if passes == 0 {
		passes = max(c.cfg.Passes, 1)
	}

	results := make([]Result, 0, passes)
	for range passes {
		r, err := c.RunVariant(v)
		if err != nil {
			return Summary{}, err
		}
		results = append(results, r)
	}
	return Summarize(results), nil
}
