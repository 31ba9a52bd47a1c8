package split

import (
	"fmt"

	"github.com/katalvlaran/rangeregex/boundary"
)

// stopsCapacity covers every int64 range: at most 19 nines stops,
// 19 zeros stops and max itself.
const stopsCapacity = 40

// Stops returns the ascending, duplicate-free upper endpoints of the
// sub-ranges that partition [min, max]. The last element is always max.
func Stops(min, max int64) ([]int64, error) {
	if err := validate(min, max); err != nil {
		return nil, err
	}

	return stops(min, max), nil
}

// Spans pairs the stops of [min, max] into sub-ranges, lowest first.
// Every returned Span has endpoints of equal digit count.
func Spans(min, max int64) ([]Span, error) {
	if err := validate(min, max); err != nil {
		return nil, err
	}

	stopList := stops(min, max)
	spans := make([]Span, 0, len(stopList))
	start := min
	for _, stop := range stopList {
		spans = append(spans, Span{Start: start, Stop: stop})
		start = stop + 1
	}

	return spans, nil
}

// MergeDescToAsc merges two non-increasing sequences, a and the values
// produced by b, into one strictly ascending slice without repeats.
// a is not modified.
func MergeDescToAsc(a []int64, b boundary.Stepper) []int64 {
	out := make([]int64, 0, len(a)+stopsCapacity/2)

	i := 0
	vb, okB := b.Next()
	for i < len(a) || okB {
		var v int64
		if !okB || (i < len(a) && a[i] >= vb) {
			v = a[i]
			i++
		} else {
			v = vb
			vb, okB = b.Next()
		}

		if n := len(out); n == 0 || out[n-1] != v {
			out = append(out, v)
		}
	}

	reverse(out)

	return out
}

// stops implements Stops for a validated range.
func stops(min, max int64) []int64 {
	list := make([]int64, 0, stopsCapacity)

	nines := boundary.NewNines(min, max)
	for stop, ok := nines.Next(); ok; stop, ok = nines.Next() {
		if n := len(list); n == 0 || list[n-1] != stop {
			list = append(list, stop)
		}
	}
	if n := len(list); n == 0 || list[n-1] != max {
		list = append(list, max)
	}
	reverse(list)

	return MergeDescToAsc(list, boundary.NewZeros(min, max))
}

// validate enforces 0 ≤ min ≤ max.
func validate(min, max int64) error {
	if min > max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvertedRange, min, max)
	}
	if min < 0 {
		return fmt.Errorf("%w: min=%d", ErrNegativeRange, min)
	}

	return nil
}

// reverse reverses s in place.
func reverse(s []int64) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
