// Package lfsr provides a deterministic pseudo-random byte source built on a
// 16-bit Fibonacci linear-feedback shift register.
//
// The register uses taps 0, 2, 3 and 5, which gives the maximal period of
// 65535 states for every non-zero seed. Each draw shifts the register right by
// one bit, feeds the XOR of the taps into bit 15 and returns the low 8 bits of
// the new state.
//
// Example:
//
//	r := lfsr.MustNew(lfsr.DefaultSeed)
//	color := r.NextByte() >> 6
//
//	var block [512]byte
//	r.Fill(block[:])
package lfsr

import "errors"

// DefaultSeed is the seed used by the benchmark harness.
const DefaultSeed uint16 = 0xAF23

// Period is the number of draws after which the register returns to its seed.
const Period = 1<<16 - 1

// ErrZeroSeed is returned by New for a zero seed. The all-zero state is a
// fixed point of the register and would produce an endless stream of zeros.
var ErrZeroSeed = errors.New("lfsr: seed must be non-zero")

// LFSR is a 16-bit Fibonacci shift register.
//
// An LFSR is not safe for concurrent use. Each consumer should own its own
// register; two registers built from the same seed produce the same stream.
type LFSR struct {
	seed  uint16
	state uint16
}

// New returns a register initialized to seed.
func New(seed uint16) (*LFSR, error) {
	if seed == 0 {
		return nil, ErrZeroSeed
	}
	return &LFSR{seed: seed, state: seed}, nil
}

// MustNew is like New but panics on a zero seed.
func MustNew(seed uint16) *LFSR {
	r, err := New(seed)
	if err != nil {
		panic(err)
	}
	return r
}

// NextByte advances the register by one step and returns the low byte of the
// new state.
func (r *LFSR) NextByte() byte {
	s := r.state
	bit := (s ^ s>>2 ^ s>>3 ^ s>>5) & 1
	r.state = s>>1 | bit<<15
	return byte(r.state)
}

// Fill draws len(dst) bytes into dst in order.
func (r *LFSR) Fill(dst []byte) {
	for i := range dst {
		dst[i] = r.NextByte()
	}
}

// State returns the current 16-bit register value.
func (r *LFSR) State() uint16 {
	return r.state
}

// Seed returns the value the register was constructed with.
func (r *LFSR) Seed() uint16 {
	return r.seed
}

// Reset rewinds the register to its seed.
func (r *LFSR) Reset() {
	r.state = r.seed
}
