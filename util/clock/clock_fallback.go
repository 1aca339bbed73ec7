package clock

import "time"

var epoch = time.Now()

// fallbackNanotime reads the monotonic reading carried by time.Time.
func fallbackNanotime() int64 {
	return int64(time.Since(epoch))
}
