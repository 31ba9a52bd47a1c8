package boundary

import (
	"math"

	"github.com/katalvlaran/rangeregex/digits"
)

// NewNines returns the ascending nines stepper for [min, max].
func NewNines(min, max int64) *Nines {
	return &Nines{min: min, max: max, k: 1}
}

// Next returns the next ascending stop.
//
// Steps:
//  1. stop = min with its lowest k digits replaced by 9s.
//  2. If stop is outside [min, max], the stream ends.
//  3. If min > 0 is a multiple of 10^k, skip stop: min starts a whole block
//     of 10^k values, so [min, stop] is never a width boundary and the
//     zeros stream supplies any cut inside the wider block.
//  4. Otherwise emit stop.
func (s *Nines) Next() (int64, bool) {
	for !s.done {
		stop, ok := fillByNines(s.min, s.k)
		if !ok || stop < s.min || stop > s.max {
			s.done = true
			break
		}
		s.k++

		if s.min > 0 && s.min%digits.Pow10(s.k-1) == 0 {
			continue
		}

		return stop, true
	}

	return 0, false
}

// fillByNines replaces the lowest k digits of n with 9s.
// It reports false when 10^k or the result does not fit in an int64.
func fillByNines(n int64, k int) (int64, bool) {
	if k > digits.MaxPow10 {
		return 0, false
	}

	offset := digits.Pow10(k)
	prefix := n - n%offset
	if prefix > math.MaxInt64-(offset-1) {
		return 0, false
	}

	return prefix + offset - 1, true
}
