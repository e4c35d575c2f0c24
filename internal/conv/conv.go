// Package conv provides checked integer conversions and overflow-safe
// accumulation for the benchmark harness.
//
// Narrowing conversions panic on overflow since that indicates a programming
// error. Accumulation saturates instead, because a very long run must still
// produce a report.
package conv

import (
	"math"
	"math/bits"
	"time"
)

// Uint64ToUint16 safely converts a uint64 to uint16.
// Panics if n > math.MaxUint16.
//
//go:inline
func Uint64ToUint16(n uint64) uint16 {
	if n > math.MaxUint16 {
		panic("integer overflow: uint64 value out of uint16 range")
	}
	return uint16(n)
}

// IntToUint64 safely converts an int to uint64.
// Panics if n < 0.
//
//go:inline
func IntToUint64(n int) uint64 {
	if n < 0 {
		panic("integer overflow: negative int value out of uint64 range")
	}
	return uint64(n)
}

// Nanos converts a duration to unsigned nanoseconds. Negative durations,
// which a monotonic clock never yields, are clamped to zero.
func Nanos(d time.Duration) uint64 {
	if d < 0 {
		return 0
	}
	return uint64(d)
}

// AddNanos adds d to total and reports whether the sum saturated at
// math.MaxUint64.
func AddNanos(total uint64, d time.Duration) (uint64, bool) {
	sum, carry := bits.Add64(total, Nanos(d), 0)
	if carry != 0 {
		return math.MaxUint64, true
	}
	return sum, false
}
