package packing

import (
	"sync/atomic"
	"testing"
)

func TestParallelForRunsEveryIndexExactlyOnce(t *testing.T) {
	const n = 500
	var counts [n]int32
	ParallelFor(n, 8, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Errorf("index %d ran %d times, want 1", i, c)
		}
	}
}

func TestParallelForZeroItemsIsNoop(t *testing.T) {
	called := false
	ParallelFor(0, 4, func(i int) { called = true })
	if called {
		t.Errorf("ParallelFor should not invoke fn for n=0")
	}
}

func TestWorkerPoolSubmitAndWait(t *testing.T) {
	pool := NewWorkerPool(3)
	var total int64
	for i := 0; i < 100; i++ {
		pool.Submit(func() { atomic.AddInt64(&total, 1) })
	}
	pool.Wait()
	pool.Close()
	if total != 100 {
		t.Errorf("total = %d, want 100", total)
	}
}
