package split

import (
	"errors"
	"strconv"
)

// ErrInvertedRange is returned when min > max.
var ErrInvertedRange = errors.New("split: min is greater than max")

// ErrNegativeRange is returned when min < 0; signs are handled by the caller.
var ErrNegativeRange = errors.New("split: range must be non-negative")

// Span is one contiguous sub-range [Start, Stop] whose endpoints have the
// same number of decimal digits.
type Span struct {
	Start int64 `json:"start"`
	Stop  int64 `json:"stop"`
}

// Negate returns the span of the negated values, still ordered Start ≤ Stop.
func (s Span) Negate() Span {
	return Span{Start: -s.Stop, Stop: -s.Start}
}

// String renders the span as "[start, stop]".
func (s Span) String() string {
	b := make([]byte, 0, 32)
	b = append(b, '[')
	b = strconv.AppendInt(b, s.Start, 10)
	b = append(b, ", "...)
	b = strconv.AppendInt(b, s.Stop, 10)
	b = append(b, ']')

	return string(b)
}
