package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestDispatcher_VisitsEveryCoordinateOnce(t *testing.T) {
	d := NewDispatcher(4)
	defer d.Close()

	sizes := [][2]int{{500, 286}, {64, 64}, {1, 1}, {65, 3}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		counts := make([]atomic.Int32, w*h)

		err := d.Dispatch(w, h, func(x, y int) error {
			counts[x+y*w].Add(1)
			return nil
		})
		if err != nil {
			t.Fatalf("%dx%d: Dispatch: %v", w, h, err)
		}
		for i := range counts {
			if n := counts[i].Load(); n != 1 {
				t.Fatalf("%dx%d: coordinate %d visited %d times", w, h, i, n)
			}
		}
	}
}

func TestDispatcher_FirstErrorAborts(t *testing.T) {
	d := NewDispatcher(2)
	defer d.Close()

	boom := errors.New("boom")
	var calls atomic.Int64
	err := d.Dispatch(512, 512, func(x, y int) error {
		calls.Add(1)
		if x == 0 && y == 0 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Dispatch error = %v, want boom", err)
	}
	if calls.Load() >= 512*512 {
		t.Errorf("calls = %d, want the pass to stop early", calls.Load())
	}
}

func TestDispatcher_EmptyGrid(t *testing.T) {
	d := NewDispatcher(1)
	defer d.Close()

	called := false
	if err := d.Dispatch(0, 10, func(int, int) error { called = true; return nil }); err != nil {
		t.Errorf("Dispatch on empty grid: %v", err)
	}
	if called {
		t.Error("kernel called for empty grid")
	}
}

func TestDispatcher_Closed(t *testing.T) {
	d := NewDispatcher(1)
	d.Close()

	err := d.Dispatch(4, 4, func(int, int) error { return nil })
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Dispatch after Close = %v, want ErrPoolClosed", err)
	}

	// Rows still completes on a closed pool.
	var n atomic.Int32
	d.Rows(5, func(int) { n.Add(1) })
	if n.Load() != 5 {
		t.Errorf("Rows ran %d rows, want 5", n.Load())
	}
}

func TestDispatcher_SharedPool(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	d := NewDispatcherWithPool(pool)
	d.Close()
	if !pool.IsRunning() {
		t.Error("closing a dispatcher closed its shared pool")
	}
	if d.Workers() != 2 {
		t.Errorf("Workers() = %d, want 2", d.Workers())
	}
}

func TestDispatcher_SequentialOrder(t *testing.T) {
	d := NewDispatcher(1)
	defer d.Close()

	var got []int
	err := d.Sequential(3, 2, func(x, y int) error {
		got = append(got, x+y*3)
		return nil
	})
	if err != nil {
		t.Fatalf("Sequential: %v", err)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("visit %d = %d, want row-major order", i, v)
		}
	}

	boom := errors.New("boom")
	n := 0
	err = d.Sequential(3, 2, func(x, y int) error {
		n++
		if x == 1 && y == 1 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) || n != 5 {
		t.Errorf("Sequential stopped after %d calls with %v, want 5 and boom", n, err)
	}
}

func TestDispatcher_Rows(t *testing.T) {
	d := NewDispatcher(3)
	defer d.Close()

	const h = 200
	rows := make([]atomic.Int32, h)
	d.Rows(h, func(y int) { rows[y].Add(1) })
	for y := range rows {
		if n := rows[y].Load(); n != 1 {
			t.Fatalf("row %d ran %d times, want 1", y, n)
		}
	}

	if tiles := d.Tiles(500, 286); len(tiles) != 40 {
		t.Errorf("Tiles(500, 286) = %d tiles, want 40", len(tiles))
	}
}

func BenchmarkDispatcher_Dispatch(b *testing.B) {
	d := NewDispatcher(0)
	defer d.Close()

	var sink atomic.Int64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Dispatch(500, 286, func(x, y int) error {
			if x == y {
				sink.Add(1)
			}
			return nil
		})
	}
}
