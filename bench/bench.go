// Package bench drives the scalar and vector color matchers over the same
// pseudo-random input, checks that they agree and accumulates their timings.
//
// Each iteration draws a color and a 512-row block from an LFSR, times one
// vector call over the packed block and 512 scalar calls over the rows, then
// cross-checks the results. The first disagreement aborts the run with a
// *MismatchError.
//
// Example:
//
//	res, err := bench.Run(bench.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bench.WriteReport(os.Stdout, res)
package bench

import (
	"time"

	"github.com/coregx/colormatch/internal/conv"
	"github.com/coregx/colormatch/lfsr"
	"github.com/coregx/colormatch/simd"
)

// Result holds the accumulated timings of a run.
type Result struct {
	// Iterations is the number of blocks matched.
	Iterations int

	// Checked is the number of rows cross-checked across all iterations.
	Checked uint64

	// Implementation names the vector code path that was timed.
	Implementation string

	// VectorTotal and ScalarTotal are the summed wall times in nanoseconds.
	VectorTotal uint64
	ScalarTotal uint64

	// Saturated is set if either total overflowed and was clamped.
	Saturated bool
}

// Speedup returns ScalarTotal / VectorTotal. The second result is false when
// VectorTotal is zero, which can happen on short runs with a coarse clock.
func (r *Result) Speedup() (float64, bool) {
	if r.VectorTotal == 0 {
		return 0, false
	}
	return float64(r.ScalarTotal) / float64(r.VectorTotal), true
}

// Harness owns the input stream and buffers of a run.
// A Harness is not safe for concurrent use.
type Harness struct {
	cfg        Config
	rng        *lfsr.LFSR
	matchLanes func(dst, src *simd.Lanes, color byte)
	impl       string

	block  simd.Block
	src    simd.Lanes
	dst    simd.Lanes
	scalar simd.Block
}

// New validates cfg and returns a Harness ready to run.
func New(cfg Config) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng, err := lfsr.New(cfg.Seed)
	if err != nil {
		return nil, err
	}

	h := &Harness{
		cfg:        cfg,
		rng:        rng,
		matchLanes: simd.MatchLanes,
		impl:       simd.Implementation(),
	}
	if cfg.ForceGeneric {
		h.matchLanes = simd.MatchLanesGeneric
		h.impl = "swar"
	}
	return h, nil
}

// Run executes cfg.Iterations iterations and returns the accumulated result.
func (h *Harness) Run() (*Result, error) {
	res := &Result{Implementation: h.impl}
	for i := 0; i < h.cfg.Iterations; i++ {
		if err := h.step(i, res); err != nil {
			return nil, err
		}
		res.Iterations++
	}
	return res, nil
}

// Run is shorthand for New(cfg) followed by Run.
func Run(cfg Config) (*Result, error) {
	h, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return h.Run()
}

func (h *Harness) step(iter int, res *Result) error {
	color := h.rng.NextByte() >> 6
	h.rng.Fill(h.block[:])
	simd.PackLanes(&h.src, &h.block)

	start := time.Now()
	h.matchLanes(&h.dst, &h.src, color)
	vector := time.Since(start)

	start = time.Now()
	for i := range h.block {
		h.scalar[i] = simd.MatchMask(color, h.block[i])
	}
	scalar := time.Since(start)

	var satV, satS bool
	res.VectorTotal, satV = conv.AddNanos(res.VectorTotal, vector)
	res.ScalarTotal, satS = conv.AddNanos(res.ScalarTotal, scalar)
	res.Saturated = res.Saturated || satV || satS

	n := simd.BlockSize
	if h.cfg.Verify == VerifyFirstLane {
		n = simd.LaneCount
	}
	for i := 0; i < n; i++ {
		if v := simd.LaneByte(&h.dst, i); v != h.scalar[i] {
			return &MismatchError{
				Iteration: iter,
				Index:     i,
				Color:     color,
				Input:     h.block[i],
				Scalar:    h.scalar[i],
				Vector:    v,
			}
		}
	}
	res.Checked += conv.IntToUint64(n)
	return nil
}
