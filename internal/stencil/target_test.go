package stencil

import (
	"errors"
	"testing"

	"github.com/gogpu/stencilbench/internal/color"
	"github.com/gogpu/stencilbench/internal/image"
)

func TestTargetSetEdges(t *testing.T) {
	c := color.ColorU8{R: 1, G: 2, B: 3, A: 4}

	tests := []struct {
		name         string
		edge         EdgePolicy
		x, y         int
		wantX, wantY int
		wantErr      bool
	}{
		{"inside", EdgeClamp, 1, 1, 1, 1, false},
		{"clamp", EdgeClamp, -4, 9, 0, 2, false},
		{"wrap", EdgeWrap, 3, -1, 0, 2, false},
		{"reject", EdgeReject, 3, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := image.NewGrid(3, 3, image.FormatRGBA8)
			err := NewTarget(g, tt.edge).Set(tt.x, tt.y, c)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfBounds) {
					t.Fatalf("Set error = %v, want ErrOutOfBounds", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set: %v", err)
			}
			if got, _ := g.RGBAAt(tt.wantX, tt.wantY); got != c {
				t.Errorf("pixel (%d, %d) = %v, want %v", tt.wantX, tt.wantY, got, c)
			}
		})
	}
}

func TestTargetCell(t *testing.T) {
	g, _ := image.NewGrid(4, 2, image.FormatRGBA8)
	tgt := NewTarget(g, EdgeClamp)

	cell, err := tgt.Cell(2, 1)
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	StoreRGBA(cell, color.RGBA8(9, 8, 7))
	if got, _ := g.RGBAAt(2, 1); got != color.RGBA8(9, 8, 7) {
		t.Errorf("pixel after raw write = %v", got)
	}

	if _, err := tgt.Cell(4, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Cell(4, 0) error = %v, want ErrOutOfBounds", err)
	}
}

func TestTargetPutAtOffset(t *testing.T) {
	g, _ := image.NewGrid(5, 5, image.FormatRGBA8)
	tgt := NewTarget(g, EdgeClamp)
	c := color.RGBA8(50, 60, 70)

	base := 2 + 2*5
	if err := tgt.PutAtOffset(base, 1, -1, c); err != nil {
		t.Fatalf("PutAtOffset: %v", err)
	}
	if got, _ := g.RGBAAt(3, 1); got != c {
		t.Errorf("pixel (3, 1) = %v, want %v", got, c)
	}

	// Leaving the right edge clamps into the same row, never the next one.
	base = 4 + 0*5
	if err := tgt.PutAtOffset(base, 1, 0, c); err != nil {
		t.Fatalf("PutAtOffset edge: %v", err)
	}
	if got, _ := g.RGBAAt(0, 1); got == c {
		t.Error("edge write leaked into the next row")
	}
	if got, _ := g.RGBAAt(4, 0); got != c {
		t.Errorf("pixel (4, 0) = %v, want %v", got, c)
	}

	if err := tgt.PutAtOffset(25, 0, 0, c); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("PutAtOffset(25) error = %v, want ErrOutOfBounds", err)
	}
}

func TestTargetGray(t *testing.T) {
	g, _ := image.NewGrid(2, 2, image.FormatGray8)
	tgt := NewTarget(g, EdgeReject)

	if err := tgt.SetGray(1, 0, 77); err != nil {
		t.Fatalf("SetGray: %v", err)
	}
	if v, _ := g.GrayAt(1, 0); v != 77 {
		t.Errorf("GrayAt(1, 0) = %d, want 77", v)
	}
	if err := tgt.SetGray(2, 0, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetGray(2, 0) error = %v, want ErrOutOfBounds", err)
	}
	if err := tgt.PutAtOffset(0, 0, 0, color.ColorU8{}); !errors.Is(err, image.ErrFormatMismatch) {
		t.Errorf("PutAtOffset on gray error = %v, want ErrFormatMismatch", err)
	}
}
