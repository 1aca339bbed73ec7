//go:build !linux

package clock

// Nanotime returns a monotonic reading in nanoseconds.
func Nanotime() int64 {
	return fallbackNanotime()
}
