// Package digits produces the decimal digits of a signed integer,
// most significant first, without ever formatting the number into a string.
//
// What
//
//   - Iterator yields '-' first for negative values, then one byte per decimal digit.
//   - Zero yields a single '0'; leading zeros are never produced otherwise.
//   - Count reports the number of decimal digits of |n| (sign excluded).
//   - Pow10 is a table lookup for 10^k, 0 ≤ k ≤ 18.
//
// Why
//
//	The range compiler walks two integers digit by digit in lockstep. Doing so on
//	the integers directly keeps the hot path free of per-call string allocation.
//
// Overflow
//
//	The magnitude is tracked as uint64, so every int64 (math.MinInt64 included)
//	is handled without negating into overflow.
//
// Complexity
//
//   - Time:   O(d) for d decimal digits
//   - Memory: O(1)
//
// Usage
//
//	it := digits.New(-2147483648)
//	for b, ok := it.Next(); ok; b, ok = it.Next() {
//	    fmt.Printf("%c", b) // -2147483648
//	}
package digits
