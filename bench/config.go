package bench

import (
	"fmt"

	"github.com/coregx/colormatch/lfsr"
)

// DefaultIterations is the number of blocks matched by a default run.
const DefaultIterations = 100_000

// VerifyMode selects how many rows of each block are cross-checked between
// the scalar and vector matchers.
type VerifyMode uint8

const (
	// VerifyAll checks every row of the block.
	VerifyAll VerifyMode = iota

	// VerifyFirstLane checks only the first simd.LaneCount rows.
	VerifyFirstLane
)

// String returns the flag spelling of the mode.
func (m VerifyMode) String() string {
	switch m {
	case VerifyAll:
		return "all"
	case VerifyFirstLane:
		return "first"
	default:
		return fmt.Sprintf("VerifyMode(%d)", m)
	}
}

// ParseVerifyMode parses "all" or "first".
func ParseVerifyMode(s string) (VerifyMode, error) {
	switch s {
	case "all":
		return VerifyAll, nil
	case "first":
		return VerifyFirstLane, nil
	default:
		return 0, fmt.Errorf("%w: unknown verify mode %q (want all or first)", ErrInvalidConfig, s)
	}
}

// Config controls a benchmark run.
//
// Example:
//
//	cfg := bench.DefaultConfig()
//	cfg.Iterations = 1000
//	res, err := bench.Run(cfg)
type Config struct {
	// Iterations is the number of blocks to generate and match.
	// Default: 100000
	Iterations int

	// Seed initializes the pseudo-random input stream. Must be non-zero.
	// Default: 0xAF23
	Seed uint16

	// Verify selects how many rows of each block are cross-checked.
	// Default: VerifyAll
	Verify VerifyMode

	// ForceGeneric times simd.MatchLanesGeneric instead of the dispatching
	// simd.MatchLanes, so the pure Go path can be measured on AVX2 hosts.
	// Default: false
	ForceGeneric bool
}

// DefaultConfig returns the configuration of the reference benchmark:
// 100000 iterations from seed 0xAF23 with every row verified.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		Seed:       lfsr.DefaultSeed,
		Verify:     VerifyAll,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("%w: Iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	}
	if c.Seed == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, lfsr.ErrZeroSeed)
	}
	if c.Verify > VerifyFirstLane {
		return fmt.Errorf("%w: unknown verify mode %v", ErrInvalidConfig, c.Verify)
	}
	return nil
}
