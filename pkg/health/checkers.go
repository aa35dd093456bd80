package health

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-faster/errors"
)

// Progress is a monotonically advancing counter that remembers when it last
// moved. It is safe for concurrent use.
type Progress struct {
	value   atomic.Int64
	changed atomic.Int64 // unix nanoseconds
}

// NewProgress returns a Progress whose last change is now.
func NewProgress(now time.Time) *Progress {
	p := &Progress{}
	p.changed.Store(now.UnixNano())
	return p
}

// Advance adds n and records now as the last change. Non-positive n is
// ignored.
func (p *Progress) Advance(n int64, now time.Time) {
	if n <= 0 {
		return
	}
	p.value.Add(n)
	p.changed.Store(now.UnixNano())
}

// Value returns the accumulated count.
func (p *Progress) Value() int64 { return p.value.Load() }

// LastChange returns the time of the last Advance.
func (p *Progress) LastChange() time.Time {
	return time.Unix(0, p.changed.Load())
}

// StallCheck reports unhealthy when p has not advanced for longer than stall.
// A nil now uses time.Now.
func StallCheck(p *Progress, stall time.Duration, now func() time.Time) CheckFunc {
	if now == nil {
		now = time.Now
	}
	return func(context.Context) error {
		if idle := now().Sub(p.LastChange()); idle > stall {
			return errors.Errorf("no progress for %s (at %d)", idle.Truncate(time.Second), p.Value())
		}
		return nil
	}
}

// GoroutineCountCheck reports unhealthy when the number of goroutines exceeds
// threshold.
func GoroutineCountCheck(threshold int) CheckFunc {
	return func(context.Context) error {
		if n := runtime.NumGoroutine(); n > threshold {
			return errors.Errorf("goroutine count %d exceeds threshold %d", n, threshold)
		}
		return nil
	}
}
