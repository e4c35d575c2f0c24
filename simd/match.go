// Package simd implements 2-bit color matching over packed cell rows, once
// as a scalar byte routine and once as a data-parallel routine over a
// 512-byte block.
//
// A byte holds a row of four cells, each a 2-bit color (0-3):
//
//	bit:   7 6 | 5 4 | 3 2 | 1 0
//	cell:   3  |  2  |  1  |  0
//
// Matching a row against a color yields a mask with the high bit of every
// matching field set and all low bits clear. The block routine computes the
// same mask for every byte of a block at once. On x86-64 with AVX2 it runs
// an assembly kernel over 256-bit registers; elsewhere it falls back to a
// pure Go SWAR (SIMD Within A Register) loop over uint64 lanes. Both paths
// produce identical results.
package simd

const (
	// HighBits8 selects the high bit of each 2-bit field in a byte.
	HighBits8 byte = 0b10_10_10_10

	// LowBits8 selects the low bit of each 2-bit field in a byte.
	LowBits8 byte = 0b01_01_01_01
)

// ColorMask replicates a 2-bit color into all four fields of a byte.
// Bits of color above the low two are ignored.
func ColorMask(color byte) byte {
	c := color & 3
	return c<<6 | c<<4 | c<<2 | c
}

// MatchMask returns a mask of the fields in row that equal color.
//
// XOR-ing the row with the complement of the replicated color turns each
// matching field into 0b11. A field is then reported by ANDing its high bit
// with its low bit shifted up into the high position:
//
//	m := row ^ ^ColorMask(color)
//	result := m & 0b10101010 & ((m & 0b01010101) << 1)
//
// Example:
//
//	simd.MatchMask(3, 0b11_01_11_00) // 0b10_00_10_00
func MatchMask(color, row byte) byte {
	m := row ^ ^ColorMask(color)
	return m & HighBits8 & ((m & LowBits8) << 1)
}

// MatchMaskLow is a variant of MatchMask that shifts the high bits down
// instead of the low bits up. The match flag for each field lands in its low
// bit, so MatchMaskLow(c, r) == MatchMask(c, r) >> 1.
func MatchMaskLow(color, row byte) byte {
	m := row ^ ^ColorMask(color)
	return (m&HighBits8)>>1 & m
}

// MatchAny reports whether at least one field of row equals color.
// It checks each field of the XOR-ed row against 0b11 directly.
func MatchAny(color, row byte) bool {
	m := row ^ ^ColorMask(color)
	return m&0b11 == 0b11 ||
		m&0b1100 == 0b1100 ||
		m&0b11_0000 == 0b11_0000 ||
		m&0b1100_0000 == 0b1100_0000
}

// Fields expands a MatchMask result into one flag per cell, cell 0 first.
func Fields(mask byte) [4]bool {
	return [4]bool{
		mask&0b10 != 0,
		mask&0b1000 != 0,
		mask&0b10_0000 != 0,
		mask&0b1000_0000 != 0,
	}
}
