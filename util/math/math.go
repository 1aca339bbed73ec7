package math

import "math"

// MaxCapacity is the largest capacity that can still be doubled without overflowing int.
const MaxCapacity = math.MaxInt >> 1

// DoubleCapacity returns twice n. A non-positive n grows to 1.
// It reports false when the doubled value would overflow int.
func DoubleCapacity(n int) (int, bool) {
	if n <= 0 {
		return 1, true
	}
	if n > MaxCapacity {
		return 0, false
	}
	return n << 1, true
}

// GrowthSteps returns how many doublings take a buffer of capacity from
// up to at least need.
func GrowthSteps(from, need int) int {
	steps := 0
	for from < need {
		next, ok := DoubleCapacity(from)
		if !ok {
			break
		}
		from = next
		steps++
	}
	return steps
}
