package stencilbench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// gradient returns an RGBA8 grid with a different value in every channel.
func gradient(t testing.TB, w, h int) *PixelGrid {
	t.Helper()
	g, err := NewPixelGrid(w, h, FormatRGBA8)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Color{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x*7 + y*3) % 256),
				A: uint8(200 + (x+y)%56),
			}
			require.NoError(t, g.SetRGBA(x, y, c))
		}
	}
	return g
}

func solid(t testing.TB, w, h int, c Color) *PixelGrid {
	t.Helper()
	g, err := NewPixelGrid(w, h, FormatRGBA8)
	require.NoError(t, err)
	require.NoError(t, g.Fill(c))
	return g
}

func newContext(t testing.TB, input *PixelGrid, mutate func(*Config), opts ...Option) *BenchmarkContext {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	ctx, err := NewContext(input, cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(ctx.Close)
	return ctx
}

func variantsOf(f Family) []Variant {
	var out []Variant
	for _, v := range Variants() {
		if v.Family() == f {
			out = append(out, v)
		}
	}
	return out
}
