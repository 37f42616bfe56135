package filter

import (
	"errors"
	"testing"

	"github.com/gogpu/stencilbench/internal/color"
	"github.com/gogpu/stencilbench/internal/image"
	"github.com/gogpu/stencilbench/internal/stencil"
)

func grayPass(t *testing.T, in *image.Grid, variant string) *image.Grid {
	t.Helper()
	view := gridView(t, in, stencil.EdgeClamp)
	out, err := image.NewGrid(in.Width(), in.Height(), image.FormatGray8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	tgt := stencil.NewTarget(out, stencil.EdgeClamp)

	for y := 0; y < in.Height(); y++ {
		for x := 0; x < in.Width(); x++ {
			var err error
			switch variant {
			case "functional":
				var v uint8
				if v, err = GrayFunctional(view, x, y); err == nil {
					err = out.SetGray(x, y, v)
				}
			case "pointer in setter out":
				err = GrayPointerInSetterOut(view, tgt, x, y)
			case "getter in setter out":
				err = GrayGetterInSetterOut(view, tgt, x, y)
			case "pointer in pointer out", "getter in pointer out":
				var cell []byte
				if cell, err = tgt.Cell(x, y); err != nil {
					break
				}
				if variant == "pointer in pointer out" {
					err = GrayPointerInPointerOut(view, cell, x, y)
				} else {
					err = GrayGetterInPointerOut(view, cell, x, y)
				}
			}
			if err != nil {
				t.Fatalf("%s (%d, %d): %v", variant, x, y, err)
			}
		}
	}
	return out
}

var grayVariants = []string{
	"functional",
	"pointer in setter out",
	"getter in setter out",
	"pointer in pointer out",
	"getter in pointer out",
}

func TestGrayVariantsAgree(t *testing.T) {
	in := pattern(t, 13, 9)
	ref := grayPass(t, in, grayVariants[0])
	for _, v := range grayVariants[1:] {
		if got := grayPass(t, in, v); !got.Equal(ref) {
			t.Errorf("%s differs from functional", v)
		}
	}
}

func TestGrayPrimaries(t *testing.T) {
	tests := []struct {
		name string
		c    color.ColorU8
		want uint8
	}{
		{"red", color.RGBA8(255, 0, 0), 76},
		{"green", color.RGBA8(0, 255, 0), 149},
		{"blue", color.RGBA8(0, 0, 255), 29},
		{"black", color.RGBA8(0, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := uniform(t, 3, 2, tt.c)
			for _, v := range grayVariants {
				out := grayPass(t, in, v)
				for i, got := range out.Data() {
					if got != tt.want {
						t.Fatalf("%s: pixel %d = %d, want %d", v, i, got, tt.want)
					}
				}
			}
		})
	}
}

func TestGrayOutOfGrid(t *testing.T) {
	in := pattern(t, 4, 4)
	view := gridView(t, in, stencil.EdgeClamp)
	out, _ := image.NewGrid(4, 4, image.FormatGray8)

	if err := GrayPointerInPointerOut(view, make([]byte, 1), 4, 0); !errors.Is(err, stencil.ErrOutOfBounds) {
		t.Errorf("GrayPointerInPointerOut error = %v, want ErrOutOfBounds", err)
	}
	if err := GrayPointerInSetterOut(view, stencil.NewTarget(out, stencil.EdgeClamp), 0, -1); !errors.Is(err, stencil.ErrOutOfBounds) {
		t.Errorf("GrayPointerInSetterOut error = %v, want ErrOutOfBounds", err)
	}
}

func BenchmarkGrayPointerInPointerOut(b *testing.B) {
	in := pattern(b, 64, 64)
	view := gridView(b, in, stencil.EdgeClamp)
	cell := make([]byte, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GrayPointerInPointerOut(view, cell, i&63, (i>>6)&63)
	}
}
