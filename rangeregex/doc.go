// Package rangeregex compiles an inclusive integer range [min, max] into a
// regular expression that matches exactly the decimal strings of the integers
// in that range.
//
// What
//
//   - Compile(min, max) returns a plain alternation of digit-class fragments,
//     e.g. Compile(12, 3456) == `1[2-9]|[2-9]\d|[1-9]\d{2}|[1-2]\d{3}|3[0-3]\d{2}|34[0-4]\d|345[0-6]`.
//   - Matched in full-string mode against the canonical form of n (no leading
//     zeros, '-' iff negative, "0" for zero), the pattern matches iff min ≤ n ≤ max.
//   - CompileWith adds anchors, a non-capturing group or a named capture.
//   - Branches explains a pattern: one Branch per alternation arm together with
//     the signed spans it covers.
//   - Regexp / MustRegexp return the anchored pattern compiled by package regexp.
//
// How
//
//  1. Widen to int64 so |math.MinInt32| and max+1 never overflow.
//  2. If min < 0, compile the magnitude range [max<0 ? |max| : 1, |min|] into
//     the negative fragment list and continue with min = 0.
//  3. If max ≥ 0, compile [min, max] into the positive fragment list.
//  4. Emit negative-only fragments as "-f", positive-only ones as "f", and
//     fragments present in both lists (exact string equality) once as "-?f",
//     in that order, joined with '|'.
//
// Each sign is compiled by the same routine (split.Spans + pattern.Printer),
// parameterised by the span transform that maps magnitudes back to values.
//
// Determinism and concurrency
//
//	Compile is a pure function: identical input always yields identical bytes.
//	It keeps no package-level mutable state, so it is safe to call from any
//	number of goroutines.
//
// Complexity (d = decimal digits of max(|min|, |max|))
//
//   - Time:   O(d²) (O(d) fragments of O(d) bytes)
//   - Memory: O(d²)
//
// Errors
//
//   - ErrInvalidRange     if min > max (CompileWith, Branches, Regexp).
//   - ErrOptionViolation  if an Option was invalid (e.g. a bad capture name).
//
// Compile itself never fails; for min > max it returns "", which matches no
// canonical integer.
package rangeregex
