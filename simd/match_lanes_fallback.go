//go:build !amd64

package simd

// MatchLanes computes MatchMask for every row of a packed block and stores
// the results in dst, one result byte per row position.
//
// On non-AMD64 platforms this is MatchLanesGeneric.
func MatchLanes(dst, src *Lanes, color byte) {
	MatchLanesGeneric(dst, src, color)
}

// Implementation names the code path MatchLanes dispatches to.
func Implementation() string {
	return "swar"
}

// VectorWidth returns the number of bytes MatchLanes processes per step.
func VectorWidth() int {
	return 8
}
