package api

import (
	"sync/atomic"
	"time"
)

var (
	lastTimestamp int64
)

// nextTimestamp returns a strictly increasing wall-clock nanosecond value.
// Two tasks created in the same nanosecond still get distinct creation
// timestamps, keeping created-order sorts total.
func nextTimestamp() int64 {
	for {
		now := time.Now().UnixNano()
		last := atomic.LoadInt64(&lastTimestamp)
		if now <= last {
			now = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastTimestamp, last, now) {
			return now
		}
	}
}
