package filter

import (
	"testing"

	"github.com/gogpu/stencilbench/internal/color"
	"github.com/gogpu/stencilbench/internal/image"
	"github.com/gogpu/stencilbench/internal/stencil"
)

// pattern returns an RGBA8 grid with distinct values per channel.
func pattern(t testing.TB, w, h int) *image.Grid {
	t.Helper()
	g, err := image.NewGrid(w, h, image.FormatRGBA8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.ColorU8{
				R: uint8(x * 13),
				G: uint8(y * 29),
				B: uint8((x + y) * 7),
				A: uint8(255 - x*y%200),
			}
			if err := g.SetRGBA(x, y, c); err != nil {
				t.Fatalf("SetRGBA: %v", err)
			}
		}
	}
	return g
}

func uniform(t testing.TB, w, h int, c color.ColorU8) *image.Grid {
	t.Helper()
	g, err := image.NewGrid(w, h, image.FormatRGBA8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err := g.Fill(c); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	return g
}

func gridView(t testing.TB, g *image.Grid, edge stencil.EdgePolicy) *stencil.View {
	t.Helper()
	src, err := stencil.NewGridSource(g)
	if err != nil {
		t.Fatalf("NewGridSource: %v", err)
	}
	v, err := stencil.NewView(src, edge)
	if err != nil {
		t.Fatalf("NewView: %v", err)
	}
	return v
}

func bufferView(t testing.TB, g *image.Grid, edge stencil.EdgePolicy) *stencil.View {
	t.Helper()
	buf, err := stencil.NewBufferSource(g.Width(), g.Height())
	if err != nil {
		t.Fatalf("NewBufferSource: %v", err)
	}
	if err := buf.Fill(g, nil); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	v, err := stencil.NewView(buf, edge)
	if err != nil {
		t.Fatalf("NewView: %v", err)
	}
	return v
}

func newRGBA(t testing.TB, w, h int) *image.Grid {
	t.Helper()
	g, err := image.NewGrid(w, h, image.FormatRGBA8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestWindowFits(t *testing.T) {
	const maxInt = int(^uint(0) >> 1)
	tests := []struct {
		radius, cells int
		want          bool
	}{
		{0, 1, true},
		{1, 8, false},
		{1, 9, true},
		{2, 25, true},
		{2, 24, false},
		{3, 500 * 286, true},
		{maxInt/4 + 1, 500 * 286, false},
		{maxInt, maxInt, false},
		{maxInt / 2, maxInt, false},
		{-1, 9, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := WindowFits(tt.radius, tt.cells); got != tt.want {
			t.Errorf("WindowFits(%d, %d) = %v, want %v", tt.radius, tt.cells, got, tt.want)
		}
	}
}
