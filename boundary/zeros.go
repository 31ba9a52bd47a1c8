package boundary

import (
	"math"

	"github.com/katalvlaran/rangeregex/digits"
)

// NewZeros returns the descending zeros stepper for [min, max].
func NewZeros(min, max int64) *Zeros {
	return &Zeros{min: min, max: max, k: 1}
}

// Next returns the next descending stop: max+1 with its lowest k digits
// zeroed, minus one. The stream ends once that value is ≤ min.
func (s *Zeros) Next() (int64, bool) {
	if s.done {
		return 0, false
	}

	stop, ok := fillByZeros(s.max, s.k)
	if !ok || stop <= s.min || stop > s.max {
		s.done = true
		return 0, false
	}
	s.k++

	return stop, true
}

// fillByZeros zeroes the lowest k digits of max+1 and subtracts one.
func fillByZeros(max int64, k int) (int64, bool) {
	if k > digits.MaxPow10 || max == math.MaxInt64 {
		return 0, false
	}

	n := max + 1
	return n - n%digits.Pow10(k) - 1, true
}
