package simd

import (
	"fmt"
	"testing"
)

func testBlock() *Block {
	var b Block
	x := uint32(0x9E3779B9)
	for i := range b {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		b[i] = byte(x >> 24)
	}
	return &b
}

func TestBroadcastMask(t *testing.T) {
	tests := []struct {
		color byte
		want  uint64
	}{
		{0b00, 0x0000000000000000},
		{0b01, 0x5555555555555555},
		{0b10, 0xAAAAAAAAAAAAAAAA},
		{0b11, 0xFFFFFFFFFFFFFFFF},
		{0b1110, 0xAAAAAAAAAAAAAAAA},
	}

	for _, tc := range tests {
		got := BroadcastMask(tc.color)
		if got != tc.want {
			t.Errorf("BroadcastMask(%#b) = %#016x, want %#016x", tc.color, got, tc.want)
		}
		// Every byte of the word is the scalar color mask.
		if want := uint64(ColorMask(tc.color)) * 0x0101010101010101; got != want {
			t.Errorf("BroadcastMask(%#b) = %#016x, replicated ColorMask = %#016x", tc.color, got, want)
		}
	}
}

func TestPackLanes_Layout(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = byte(i)
	}

	var l Lanes
	PackLanes(&l, &b)

	if l[0] != 0x0706050403020100 {
		t.Errorf("lane 0 = %#016x, want %#016x", l[0], uint64(0x0706050403020100))
	}
	if l[1] != 0x0F0E0D0C0B0A0908 {
		t.Errorf("lane 1 = %#016x, want %#016x", l[1], uint64(0x0F0E0D0C0B0A0908))
	}

	for i := 0; i < BlockSize; i++ {
		if got := LaneByte(&l, i); got != b[i] {
			t.Fatalf("LaneByte(%d) = %#02x, want %#02x", i, got, b[i])
		}
	}
}

func TestUnpackLanes_RoundTrip(t *testing.T) {
	src := testBlock()

	var l Lanes
	PackLanes(&l, src)
	var back Block
	UnpackLanes(&back, &l)

	if back != *src {
		t.Fatal("UnpackLanes(PackLanes(b)) != b")
	}
}

// Every color and every row, replicated across all lanes, must come back as
// the scalar result in every byte.
func TestMatchLanes_ReplicatedExhaustive(t *testing.T) {
	impls := []struct {
		name string
		fn   func(dst, src *Lanes, color byte)
	}{
		{"dispatch", MatchLanes},
		{"generic", MatchLanesGeneric},
	}

	for _, impl := range impls {
		t.Run(impl.name, func(t *testing.T) {
			for color := byte(0); color < 4; color++ {
				for r := 0; r < 256; r++ {
					row := byte(r)
					want := MatchMask(color, row)

					var src, dst Lanes
					for i := range src {
						src[i] = uint64(row) * 0x0101010101010101
					}
					impl.fn(&dst, &src, color)

					wantLane := uint64(want) * 0x0101010101010101
					for i, w := range dst {
						if w != wantLane {
							t.Fatalf("color %d row %#08b: lane %d = %#016x, want %#016x",
								color, row, i, w, wantLane)
						}
					}
				}
			}
		})
	}
}

func TestMatchLanes_MatchesScalar(t *testing.T) {
	block := testBlock()
	var src Lanes
	PackLanes(&src, block)

	for color := byte(0); color < 4; color++ {
		var dst Lanes
		MatchLanes(&dst, &src, color)

		for i := 0; i < BlockSize; i++ {
			want := MatchMask(color, block[i])
			if got := LaneByte(&dst, i); got != want {
				t.Fatalf("color %d: row %d = %#08b, want %#08b", color, i, got, want)
			}
		}
	}
}

func TestMatchLanes_Broadcast(t *testing.T) {
	var src, dst Lanes
	for i := range src {
		src[i] = 0xAAAAAAAAAAAAAAAA // every row is 0b10_10_10_10
	}

	MatchLanes(&dst, &src, 0b10)

	for i, w := range dst {
		if w&HighBits != HighBits {
			t.Errorf("lane %d = %#016x, want all high bits set", i, w)
		}
		if w&LowBits != 0 {
			t.Errorf("lane %d = %#016x, want no low bits set", i, w)
		}
	}
}

func TestMatchLanes_InPlace(t *testing.T) {
	block := testBlock()
	var l, want Lanes
	PackLanes(&l, block)

	MatchLanes(&want, &l, 1)
	MatchLanes(&l, &l, 1)

	if l != want {
		t.Error("in-place MatchLanes differs from out-of-place result")
	}
}

func TestMatchLanes_Pure(t *testing.T) {
	var src Lanes
	PackLanes(&src, testBlock())
	orig := src

	var a, b Lanes
	MatchLanes(&a, &src, 3)
	MatchLanes(&b, &src, 3)

	if a != b {
		t.Error("MatchLanes returned different results for identical input")
	}
	if src != orig {
		t.Error("MatchLanes modified its source")
	}
}

func TestImplementation(t *testing.T) {
	impl := Implementation()
	width := VectorWidth()

	switch impl {
	case "avx2":
		if width != 32 {
			t.Errorf("VectorWidth() = %d for avx2, want 32", width)
		}
	case "swar":
		if width != 8 {
			t.Errorf("VectorWidth() = %d for swar, want 8", width)
		}
	default:
		t.Errorf("Implementation() = %q, want avx2 or swar", impl)
	}

	if BlockSize%width != 0 {
		t.Errorf("BlockSize %d is not a multiple of VectorWidth %d", BlockSize, width)
	}
}

func BenchmarkMatchLanes(b *testing.B) {
	var src, dst Lanes
	PackLanes(&src, testBlock())

	impls := []struct {
		name string
		fn   func(dst, src *Lanes, color byte)
	}{
		{Implementation(), MatchLanes},
		{"generic", MatchLanesGeneric},
	}

	for _, impl := range impls {
		b.Run(fmt.Sprintf("%s_%d", impl.name, BlockSize), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(BlockSize)
			for i := 0; i < b.N; i++ {
				impl.fn(&dst, &src, byte(i)&3)
			}
		})
	}
}

func BenchmarkPackLanes(b *testing.B) {
	block := testBlock()
	var l Lanes
	b.ReportAllocs()
	b.SetBytes(BlockSize)
	for i := 0; i < b.N; i++ {
		PackLanes(&l, block)
	}
}
