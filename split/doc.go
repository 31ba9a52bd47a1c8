// Package split partitions a non-negative integer range [min, max] into the
// fewest digit-aligned sub-ranges (Spans), each of which prints as a single
// fixed-width digit-class fragment.
//
// Algorithm
//
//  1. Drain the nines stepper (ascending), dropping adjacent repeats.
//  2. Append max unless it is already the last stop, then reverse to descending.
//  3. Merge that list with the zeros stepper (descending) into one strictly
//     ascending, duplicate-free list of stops (MergeDescToAsc).
//  4. Pair stops into Spans: the first starts at min, each next one starts
//     right after the previous stop.
//
// The merge is an iterative two-pointer walk over the heads of two descending
// producers, so the zeros stream is consumed lazily and never buffered. A value
// is kept only when it differs from the last kept one; the descending result
// is then reversed in place.
//
// Complexity (d = number of decimal digits of max)
//
//   - Time:   O(d)
//   - Memory: O(d)
package split
