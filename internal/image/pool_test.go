package image

import (
	"sync"
	"testing"

	"github.com/gogpu/stencilbench/internal/color"
)

func TestPool_GetPut(t *testing.T) {
	pool := NewPool(4)

	g1, err := pool.Get(16, 8, FormatRGBA8)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if g1.Width() != 16 || g1.Height() != 8 || g1.Format() != FormatRGBA8 {
		t.Errorf("got %dx%d %v, want 16x8 RGBA8", g1.Width(), g1.Height(), g1.Format())
	}

	_ = g1.Fill(color.RGBA8(1, 2, 3))
	pool.Put(g1)
	if pool.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", pool.Len())
	}

	g2, _ := pool.Get(16, 8, FormatRGBA8)
	if g2 != g1 {
		t.Error("expected the pooled grid to be reused")
	}
	for i, b := range g2.Data() {
		if b != 0 {
			t.Fatalf("reused grid not cleared at byte %d", i)
		}
	}
}

func TestPool_SeparateBuckets(t *testing.T) {
	pool := NewPool(0)

	rgba, _ := pool.Get(4, 4, FormatRGBA8)
	pool.Put(rgba)

	gray, _ := pool.Get(4, 4, FormatGray8)
	if gray == rgba {
		t.Error("gray request must not reuse an RGBA grid")
	}
	if gray.Format() != FormatGray8 {
		t.Errorf("Format() = %v, want Gray8", gray.Format())
	}
}

func TestPool_MaxPerBucket(t *testing.T) {
	pool := NewPool(2)
	for range 5 {
		g, _ := NewGrid(2, 2, FormatGray8)
		pool.Put(g)
	}
	if pool.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pool.Len())
	}

	pool.Put(nil)
	if pool.Len() != 2 {
		t.Errorf("Len() after Put(nil) = %d, want 2", pool.Len())
	}
}

func TestPool_InvalidDimensions(t *testing.T) {
	pool := NewPool(1)
	if _, err := pool.Get(0, 4, FormatRGBA8); err == nil {
		t.Error("Get with zero width should fail")
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(0)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				g, err := pool.Get(8, 8, FormatRGBA8)
				if err != nil {
					t.Error(err)
					return
				}
				pool.Put(g)
			}
		}()
	}
	wg.Wait()

	if pool.Len() == 0 || pool.Len() > 8 {
		t.Errorf("Len() = %d, want 1..8", pool.Len())
	}
}
