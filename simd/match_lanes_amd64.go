//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// hasAVX2 selects the 256-bit kernel. AVX2 was introduced with Intel Haswell
// (2013) and AMD Excavator (2015).
var hasAVX2 = cpu.X86.HasAVX2

// matchLanesAVX2 is implemented in match_lanes_amd64.s. It processes the
// block 32 bytes (four lanes) per iteration using VPXOR/VPAND/VPSLLQ.
//
//go:noescape
func matchLanesAVX2(dst, src *Lanes, notColor uint64)

// MatchLanes computes MatchMask for every row of a packed block and stores
// the results in dst, one result byte per row position.
//
// For every lane w the result is
//
//	m := w ^ ^BroadcastMask(color)
//	m & HighBits & ((m & LowBits) << 1)
//
// so LaneByte(dst, i) == MatchMask(color, LaneByte(src, i)) for all i.
// dst and src may point to the same Lanes.
//
// On AMD64 with AVX2 this runs the assembly kernel; otherwise it uses
// MatchLanesGeneric.
func MatchLanes(dst, src *Lanes, color byte) {
	if hasAVX2 {
		matchLanesAVX2(dst, src, ^BroadcastMask(color))
		return
	}
	MatchLanesGeneric(dst, src, color)
}

// Implementation names the code path MatchLanes dispatches to.
func Implementation() string {
	if hasAVX2 {
		return "avx2"
	}
	return "swar"
}

// VectorWidth returns the number of bytes MatchLanes processes per step.
func VectorWidth() int {
	if hasAVX2 {
		return 32
	}
	return 8
}
