package bench

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/coregx/ahocorasick"
)

const (
	vectorLabel = "With SIMD:"
	scalarLabel = "No SIMD:"
)

// WriteReport prints the two report lines:
//
//	With SIMD:\t<ns>ns\t<ratio>xFaster
//	No SIMD:\t<ns>ns
//
// The ratio is ScalarTotal / VectorTotal with two decimals, or "n/a" when
// VectorTotal is zero.
func WriteReport(w io.Writer, r *Result) error {
	ratio := "n/a"
	if s, ok := r.Speedup(); ok {
		ratio = strconv.FormatFloat(s, 'f', 2, 64)
	}
	_, err := fmt.Fprintf(w, "%s\t%dns\t%sxFaster\n%s\t%dns\n",
		vectorLabel, r.VectorTotal, ratio, scalarLabel, r.ScalarTotal)
	return err
}

// Report is a parsed WriteReport output.
type Report struct {
	VectorNanos uint64
	ScalarNanos uint64

	// Speedup is the printed ratio; HasSpeedup is false if it was "n/a".
	Speedup    float64
	HasSpeedup bool
}

var labelMatcher = sync.OnceValues(func() (*ahocorasick.Automaton, error) {
	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(vectorLabel))
	builder.AddPattern([]byte(scalarLabel))
	return builder.Build()
})

// ParseReport reads a report written by WriteReport and checks that it is
// well formed: both lines present exactly once, totals are integers and the
// ratio is finite, non-negative and consistent with the totals.
func ParseReport(r io.Reader) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	ac, err := labelMatcher()
	if err != nil {
		return nil, err
	}

	rep := &Report{}
	var seenVector, seenScalar bool
	for at := 0; at < len(data); {
		m := ac.Find(data, at)
		if m == nil {
			break
		}
		if m.Start != 0 && data[m.Start-1] != '\n' {
			return nil, fmt.Errorf("%w: label not at start of line (offset %d)", ErrMalformedReport, m.Start)
		}

		line := data[m.End:]
		if nl := bytes.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
		}
		at = m.End + len(line)

		switch string(data[m.Start:m.End]) {
		case vectorLabel:
			if seenVector {
				return nil, fmt.Errorf("%w: duplicate %q line", ErrMalformedReport, vectorLabel)
			}
			seenVector = true
			if err := rep.parseVectorLine(string(line)); err != nil {
				return nil, err
			}
		case scalarLabel:
			if seenScalar {
				return nil, fmt.Errorf("%w: duplicate %q line", ErrMalformedReport, scalarLabel)
			}
			seenScalar = true
			if err := rep.parseScalarLine(string(line)); err != nil {
				return nil, err
			}
		}
	}

	if !seenVector || !seenScalar {
		return nil, fmt.Errorf("%w: want %q and %q lines", ErrMalformedReport, vectorLabel, scalarLabel)
	}
	if err := rep.checkRatio(); err != nil {
		return nil, err
	}
	return rep, nil
}

// parseVectorLine parses "\t<ns>ns\t<ratio>xFaster".
func (rep *Report) parseVectorLine(line string) error {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 || fields[0] != "" {
		return fmt.Errorf("%w: %q line: want 2 tab-separated fields, got %q", ErrMalformedReport, vectorLabel, line)
	}

	ns, err := parseNanos(fields[1])
	if err != nil {
		return err
	}
	rep.VectorNanos = ns

	ratio, ok := strings.CutSuffix(fields[2], "xFaster")
	if !ok {
		return fmt.Errorf("%w: ratio %q lacks xFaster suffix", ErrMalformedReport, fields[2])
	}
	if ratio == "n/a" {
		return nil
	}
	s, err := strconv.ParseFloat(ratio, 64)
	if err != nil || math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return fmt.Errorf("%w: ratio %q is not a finite non-negative number", ErrMalformedReport, ratio)
	}
	rep.Speedup = s
	rep.HasSpeedup = true
	return nil
}

// parseScalarLine parses "\t<ns>ns".
func (rep *Report) parseScalarLine(line string) error {
	fields := strings.Split(line, "\t")
	if len(fields) != 2 || fields[0] != "" {
		return fmt.Errorf("%w: %q line: want 1 tab-separated field, got %q", ErrMalformedReport, scalarLabel, line)
	}
	ns, err := parseNanos(fields[1])
	if err != nil {
		return err
	}
	rep.ScalarNanos = ns
	return nil
}

func (rep *Report) checkRatio() error {
	if rep.VectorNanos == 0 {
		if rep.HasSpeedup {
			return fmt.Errorf("%w: ratio printed for a zero vector total", ErrMalformedReport)
		}
		return nil
	}
	if !rep.HasSpeedup {
		return fmt.Errorf("%w: ratio missing for a non-zero vector total", ErrMalformedReport)
	}
	want := float64(rep.ScalarNanos) / float64(rep.VectorNanos)
	if math.Abs(want-rep.Speedup) > 0.0051+1e-9*want {
		return fmt.Errorf("%w: ratio %.2f does not match totals (%.4f)", ErrMalformedReport, rep.Speedup, want)
	}
	return nil
}

func parseNanos(field string) (uint64, error) {
	digits, ok := strings.CutSuffix(field, "ns")
	if !ok {
		return 0, fmt.Errorf("%w: total %q lacks ns suffix", ErrMalformedReport, field)
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: total %q: %w", ErrMalformedReport, field, err)
	}
	return n, nil
}
