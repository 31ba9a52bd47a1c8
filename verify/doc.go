// Package verify is a differential acceptance harness for rangeregex.
//
// Check compiles the anchored pattern for [min, max] with package regexp and
// matches it against sampled integers: both bounds and their neighbours, the
// 32-bit extremes, and seeded random values below, inside and above the
// range. Every sample must satisfy
//
//	matched(strconv.FormatInt(n, 10)) == (min <= n && n <= max)
//
// Disagreements are collected in the Report, logged at Warn level on the
// configured *slog.Logger, and surfaced as ErrMismatch.
//
// Usage
//
//	rep, err := verify.Check(-1154, 456415,
//	    verify.WithSamples(10_000),
//	    verify.WithSeed(42),
//	    verify.WithLogger(logger),
//	)
//	if errors.Is(err, verify.ErrMismatch) {
//	    // rep.Mismatches lists the offending values
//	}
package verify
