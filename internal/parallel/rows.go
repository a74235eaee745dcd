// Package parallel partitions per-pixel image loops across CPUs.
package parallel

import (
	"runtime"
	"sync"
)

// minRowsPerWorker keeps small buffers on the calling goroutine, where the
// goroutine fan-out would cost more than the pixel work it saves.
const minRowsPerWorker = 64

// Rows splits [0, height) into contiguous bands and invokes fn once per
// band, concurrently when the buffer is large enough. fn(y0, y1) processes
// rows y0 <= y < y1. Bands never overlap, so callers writing to disjoint
// output rows need no further coordination.
//
// Rows returns after every band has completed.
func Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if max := height / minRowsPerWorker; workers > max {
		workers = max
	}
	if workers <= 1 {
		fn(0, height)
		return
	}

	band := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += band {
		y1 := y0 + band
		if y1 > height {
			y1 = height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
