// Package pattern prints one digit-aligned sub-range as a compact regular
// expression fragment.
//
// Given start ≤ stop with the same number of decimal digits, the two numbers
// are walked digit by digit and each position becomes:
//
//	equal digits            → the literal digit        ("7")
//	differing, not (0, 9)   → a digit class            ("[2-7]")
//	exactly (0, 9)          → deferred "free" position
//
// Free positions are emitted once at the end as `\d`, followed by `{n}` when
// there is more than one. Splitting guarantees that free positions only ever
// form the tail of a span, so deferring them does not reorder anything.
//
//	Print(12, 19)     → "1[2-9]"
//	Print(100, 999)   → "[1-9]\d{2}"
//	Print(3000, 3399) → "3[0-3]\d{2}"
//
// A Printer reuses one scratch buffer across calls and hands out a copy, so a
// single Printer serves a whole compilation with one growing allocation.
// A Printer is not safe for concurrent use; create one per goroutine.
package pattern
