package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNewPoolWorkers(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{4, 4},
		{1, 1},
		{0, runtime.GOMAXPROCS(0)},
		{-3, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		p := NewPool(tt.in)
		if got := p.Workers(); got != tt.want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d", tt.in, got, tt.want)
		}
		p.Close()
	}
}

func TestPoolRun(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var n atomic.Int64
	work := make([]func(), 1000)
	for i := range work {
		work[i] = func() { n.Add(1) }
	}
	p.Run(work)
	if n.Load() != 1000 {
		t.Errorf("ran %d items, want 1000", n.Load())
	}
	p.Run(nil)
}

// Every row is visited exactly once regardless of band height.
func TestPoolRowsCoverage(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	for _, band := range []int{1, 7, 16, 100, 0} {
		const height = 97
		var hits [height]atomic.Int32
		p.Rows(height, band, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				hits[y].Add(1)
			}
		})
		for y := range hits {
			if got := hits[y].Load(); got != 1 {
				t.Fatalf("band %d: row %d visited %d times", band, y, got)
			}
		}
	}
}

func TestPoolRunAfterClose(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()

	var n atomic.Int64
	p.Run([]func(){func() { n.Add(1) }, func() { n.Add(1) }})
	if n.Load() != 2 {
		t.Errorf("ran %d items after Close, want 2", n.Load())
	}
}

func BenchmarkPoolRows(b *testing.B) {
	p := NewPool(0)
	defer p.Close()
	b.ReportAllocs()
	for b.Loop() {
		p.Rows(1024, 16, func(y0, y1 int) {})
	}
}
