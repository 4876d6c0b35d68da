package api

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNextTimestampStrictlyIncreases(t *testing.T) {
	t.Cleanup(func() {
		atomic.StoreInt64(&lastTimestamp, 0)
	})
	atomic.StoreInt64(&lastTimestamp, time.Now().Add(time.Second).UnixNano())

	first := nextTimestamp()
	second := nextTimestamp()
	if second-first != 1 {
		t.Fatalf("expected clamped timestamps to increment by 1, got first=%d second=%d", first, second)
	}
}

func TestNextTimestampUniqueUnderConcurrency(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 100

	var mu sync.Mutex
	seen := make(map[int64]struct{}, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				ts := nextTimestamp()
				mu.Lock()
				if _, dup := seen[ts]; dup {
					t.Errorf("duplicate timestamp %d", ts)
				}
				seen[ts] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}
