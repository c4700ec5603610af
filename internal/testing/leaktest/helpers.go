// Package leaktest checks that background workers exit when they are stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Polling bounds used by Check
const (
	SettleTimeout = 500 * time.Millisecond
	pollInterval  = 5 * time.Millisecond
)

// GoroutineChecker compares the goroutine count against a baseline taken at construction
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Check fails the test when more than tolerance goroutines above the baseline are
// still alive after SettleTimeout. Exiting goroutines get that long to finish.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if n, ok := settle(g.baseline+tolerance, SettleTimeout); !ok {
		g.t.Errorf("Goroutine leak: baseline=%d, now=%d, tolerance=%d", g.baseline, n, tolerance)
	}
}

// Leaked reports how many goroutines are alive above the baseline right now
func (g *GoroutineChecker) Leaked() int {
	return runtime.NumGoroutine() - g.baseline
}

// settle polls until at most limit goroutines are running or timeout expires
func settle(limit int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= limit {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}
