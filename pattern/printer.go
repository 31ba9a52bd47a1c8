package pattern

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/rangeregex/digits"
)

// Sentinel errors for malformed spans.
var (
	// ErrInvertedSpan indicates start > stop.
	ErrInvertedSpan = errors.New("pattern: start is greater than stop")

	// ErrWidthMismatch indicates start and stop differ in digit count.
	ErrWidthMismatch = errors.New("pattern: start and stop differ in digit count")

	// ErrNegativeSpan indicates a negative endpoint; the sign belongs to the caller.
	ErrNegativeSpan = errors.New("pattern: span must be non-negative")
)

// AnyDigit is the token emitted for free digit positions.
const AnyDigit = `\d`

// defaultBufferSize fits the widest 64-bit fragment: 19 classes of 5 bytes.
const defaultBufferSize = 96

// Printer turns spans into fragments using a reusable scratch buffer.
type Printer struct {
	buf []byte
}

// NewPrinter returns a Printer with a pre-sized scratch buffer.
func NewPrinter() *Printer {
	return &Printer{buf: make([]byte, 0, defaultBufferSize)}
}

// Print returns the fragment for [start, stop].
func (p *Printer) Print(start, stop int64) (string, error) {
	var err error
	p.buf, err = Append(p.buf[:0], start, stop)
	if err != nil {
		return "", err
	}

	return string(p.buf), nil
}

// Append appends the fragment for [start, stop] to dst.
// On error dst is returned unchanged.
func Append(dst []byte, start, stop int64) ([]byte, error) {
	if start < 0 || stop < 0 {
		return dst, fmt.Errorf("%w: [%d, %d]", ErrNegativeSpan, start, stop)
	}
	if start > stop {
		return dst, fmt.Errorf("%w: [%d, %d]", ErrInvertedSpan, start, stop)
	}
	if digits.Count(start) != digits.Count(stop) {
		return dst, fmt.Errorf("%w: [%d, %d]", ErrWidthMismatch, start, stop)
	}

	free := 0
	lo, hi := digits.New(start), digits.New(stop)
	for {
		a, okA := lo.Next()
		b, okB := hi.Next()
		if !okA || !okB {
			break
		}

		switch {
		case a == b:
			dst = append(dst, a)
		case a != '0' || b != '9':
			dst = append(dst, '[', a, '-', b, ']')
		default:
			free++
		}
	}

	if free > 0 {
		dst = append(dst, AnyDigit...)
	}
	if free > 1 {
		dst = append(dst, '{')
		dst = strconv.AppendInt(dst, int64(free), 10)
		dst = append(dst, '}')
	}

	return dst, nil
}
