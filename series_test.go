package stencilbench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarSeries(t *testing.T) {
	assert.Equal(t, 3.0, ScalarSeries(0))
	assert.Equal(t, 3.0, ScalarSeries(-4))
	assert.InDelta(t, 3+4.0/24, ScalarSeries(1), 1e-15)
	assert.InDelta(t, 3+4.0/24-4.0/120, ScalarSeries(2), 1e-15)
}

func TestScalarSeriesConverges(t *testing.T) {
	prev := math.Inf(1)
	for _, n := range []int{1, 10, 100, 1000} {
		e := math.Abs(ScalarSeries(n) - math.Pi)
		assert.Less(t, e, prev, "error at %d terms", n)
		prev = e
	}
	assert.InDelta(t, math.Pi, ScalarSeries(30), 1e-4)
}

func TestScalarSeriesDeterministic(t *testing.T) {
	assert.Equal(t, ScalarSeries(30), ScalarSeries(30))
}

func BenchmarkScalarSeries(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = ScalarSeries(30)
	}
}
