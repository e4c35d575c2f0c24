// Command colorbench times the scalar and vector 2-bit color matchers
// against each other and prints their total run times.
//
// Usage:
//
//	colorbench [options]           run the benchmark
//	colorbench -check < report     validate a previously printed report
//
// With no options it matches 100000 pseudo-random 512-row blocks from seed
// 0xAF23 and cross-checks every row. Output:
//
//	With SIMD:\t<ns>ns\t<ratio>xFaster
//	No SIMD:\t<ns>ns
//
// A disagreement between the matchers is reported on stderr with the failing
// row index and exits with status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/coregx/colormatch/bench"
	"github.com/coregx/colormatch/internal/conv"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, check, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "colorbench: %v\n", err)
		return 2
	}

	if check {
		rep, err := bench.ParseReport(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "colorbench: %v\n", err)
			return 1
		}
		if rep.HasSpeedup {
			fmt.Fprintf(stdout, "ok\t%.2fx\n", rep.Speedup)
		} else {
			fmt.Fprintln(stdout, "ok\tn/a")
		}
		return 0
	}

	res, err := bench.Run(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "colorbench: %v\n", err)
		return 1
	}
	if res.Saturated {
		fmt.Fprintln(stderr, "colorbench: warning: timing totals saturated")
	}
	if err := bench.WriteReport(stdout, res); err != nil {
		fmt.Fprintf(stderr, "colorbench: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (bench.Config, bool, error) {
	cfg := bench.DefaultConfig()

	fs := flag.NewFlagSet("colorbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	iterations := fs.Int("n", cfg.Iterations, "number of 512-row blocks to match")
	seed := fs.String("seed", fmt.Sprintf("%#04x", cfg.Seed), "non-zero 16-bit LFSR seed (decimal or 0x hex)")
	verify := fs.String("verify", cfg.Verify.String(), "rows to cross-check per block: all/first")
	generic := fs.Bool("generic", false, "time the pure Go matcher even if AVX2 is available")
	check := fs.Bool("check", false, "validate a report read from stdin instead of running")

	if err := fs.Parse(args); err != nil {
		return cfg, false, err
	}
	if fs.NArg() > 0 {
		return cfg, false, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	s, err := strconv.ParseUint(*seed, 0, 16)
	if err != nil {
		return cfg, false, fmt.Errorf("invalid -seed %q: %w", *seed, err)
	}
	mode, err := bench.ParseVerifyMode(*verify)
	if err != nil {
		return cfg, false, err
	}

	cfg.Iterations = *iterations
	cfg.Seed = conv.Uint64ToUint16(s)
	cfg.Verify = mode
	cfg.ForceGeneric = *generic

	if err := cfg.Validate(); err != nil {
		return cfg, false, err
	}
	return cfg, *check, nil
}
