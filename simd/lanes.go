package simd

import "encoding/binary"

const (
	// BlockSize is the number of rows processed by one MatchLanes call.
	BlockSize = 512

	// LaneCount is the number of 64-bit lanes in a block.
	LaneCount = BlockSize / 8

	// HighBits selects the high bit of each 2-bit field in a lane.
	HighBits uint64 = 0xAAAAAAAAAAAAAAAA

	// LowBits selects the low bit of each 2-bit field in a lane.
	LowBits uint64 = 0x5555555555555555
)

// Block is a run of BlockSize packed rows.
type Block [BlockSize]byte

// Lanes is a Block viewed as 64-bit words.
//
// Row i of a block lives in lane i/8 at bit offset 8*(i%8), i.e. every lane
// holds eight consecutive rows in little-endian order. The packing is done
// explicitly by PackLanes and does not depend on the host byte order.
type Lanes [LaneCount]uint64

// PackLanes packs the rows of src into dst.
func PackLanes(dst *Lanes, src *Block) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(src[i*8:])
	}
}

// UnpackLanes is the inverse of PackLanes.
func UnpackLanes(dst *Block, src *Lanes) {
	for i, w := range src {
		binary.LittleEndian.PutUint64(dst[i*8:], w)
	}
}

// LaneByte extracts row i from a packed block.
// It panics if i is outside [0, BlockSize).
func LaneByte(l *Lanes, i int) byte {
	return byte(l[i/8] >> (8 * (i % 8)))
}

// BroadcastMask returns the 64-bit word with color replicated into every
// 2-bit field. Bits of color above the low two are ignored.
//
// Replicating a 2-bit value across a word can only give one of four
// patterns, so no shifting is needed:
//
//	0b00 -> 0x0000000000000000
//	0b01 -> 0x5555555555555555
//	0b10 -> 0xAAAAAAAAAAAAAAAA
//	0b11 -> 0xFFFFFFFFFFFFFFFF
func BroadcastMask(color byte) uint64 {
	switch color & 3 {
	case 0b01:
		return LowBits
	case 0b10:
		return HighBits
	case 0b11:
		return HighBits | LowBits
	default:
		return 0
	}
}

// MatchLanesGeneric is the pure Go implementation of MatchLanes.
//
// It applies the MatchMask formula to whole 64-bit lanes. The low-bit shift
// never crosses a field boundary, so eight rows are matched per operation.
// dst and src may point to the same Lanes.
func MatchLanesGeneric(dst, src *Lanes, color byte) {
	notColor := ^BroadcastMask(color)
	for i, w := range src {
		m := w ^ notColor
		dst[i] = m & HighBits & ((m & LowBits) << 1)
	}
}
