// Package clock reads a monotonic clock for interval timing.
package clock

import "time"

// Stopwatch measures one interval on the monotonic clock.
type Stopwatch struct {
	start int64
}

// Start returns a running Stopwatch.
func Start() Stopwatch {
	return Stopwatch{start: Nanotime()}
}

// Elapsed returns the time passed since Start.
func (s Stopwatch) Elapsed() time.Duration {
	return time.Duration(Nanotime() - s.start)
}
