package verify

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for verification runs.
var (
	// ErrInvalidRange is returned when min > max.
	ErrInvalidRange = errors.New("verify: min is greater than max")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("verify: invalid option supplied")

	// ErrInvalidPattern is returned when a pattern given by WithPattern does not compile.
	ErrInvalidPattern = errors.New("verify: invalid pattern")

	// ErrMismatch is returned when at least one sample disagrees with the range.
	ErrMismatch = errors.New("verify: pattern disagrees with range")
)

// DefaultSamples is the number of random samples drawn per Check.
const DefaultSamples = 1000

// Option configures Check via functional arguments.
type Option func(*Options)

// Options holds the parameters of one verification run.
type Options struct {
	// Samples is the number of random values drawn in addition to the fixed edges.
	Samples int

	// Seed seeds the sample generator; equal seeds give equal samples.
	Seed int64

	// Logger receives per-mismatch warnings and a debug summary.
	Logger *slog.Logger

	// Pattern, when non-empty, is checked instead of the compiled one.
	// It is anchored as ^(?:Pattern)$ before matching.
	Pattern string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns DefaultSamples samples, seed 1 and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Samples: DefaultSamples,
		Seed:    1,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithSamples sets the number of random samples. n must be positive.
func WithSamples(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: samples must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Samples = n
	}
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger routes diagnostics to logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithPattern checks an externally produced pattern against [min, max]
// instead of the one rangeregex compiles.
func WithPattern(src string) Option {
	return func(o *Options) {
		if src == "" {
			o.err = fmt.Errorf("%w: empty pattern", ErrOptionViolation)
			return
		}
		o.Pattern = src
	}
}

// Mismatch is one sample whose match result disagreed with the range.
type Mismatch struct {
	Value   int64 `json:"value"`
	Matched bool  `json:"matched"`
	Want    bool  `json:"want"`
}

// Report summarises one verification run.
type Report struct {
	Min        int32      `json:"min"`
	Max        int32      `json:"max"`
	Pattern    string     `json:"pattern"`
	Samples    int        `json:"samples"`
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// OK reports whether every sample agreed with the range.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}
