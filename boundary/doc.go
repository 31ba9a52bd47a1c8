// Package boundary generates the breakpoints that cut a non-negative integer
// range [min, max] into digit-aligned blocks.
//
// Two lazy producers walk outward from the range ends:
//
//   - Nines (ascending, anchored at min): at step k the lowest k digits of min
//     are filled with 9s, giving the last value of the 10^k block that contains
//     min. The stream ends as soon as a value leaves [min, max].
//     When min > 0 is itself aligned to 10^k the stop is elided: the block
//     starting at min is whole, so [10, 99] and [270, 298] keep their leading
//     blocks together and the zeros stream places any inner cut.
//
//   - Zeros (descending, anchored at max+1): at step k the lowest k digits of
//     max+1 are zeroed and one is subtracted, giving the last value before the
//     10^k block that ends at max. The stream ends once a value is ≤ min.
//
// Both producers are single-use and hold no shared state; build a fresh one for
// every range. The split package merges their output into the final stop list.
//
// Domain
//
//	Inputs are expected to satisfy 0 ≤ min ≤ max. Arithmetic that would leave
//	the int64 range ends the stream instead of wrapping.
package boundary
