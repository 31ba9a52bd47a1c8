package verify

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"regexp"
	"strconv"

	"github.com/katalvlaran/rangeregex/rangeregex"
)

// Check compiles [min, max] and matches the pattern against sampled values.
// The returned Report is filled in even when err is ErrMismatch.
func Check(min, max int32, opts ...Option) (Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Report{}, o.err
	}
	if min > max {
		return Report{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}

	re, err := compile(min, max, o.Pattern)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Min: min, Max: max, Pattern: re.String()}
	buf := make([]byte, 0, 24)
	for _, n := range samples(min, max, o.Samples, o.Seed) {
		rep.Samples++
		buf = strconv.AppendInt(buf[:0], n, 10)
		matched := re.Match(buf)
		want := int64(min) <= n && n <= int64(max)
		if matched == want {
			continue
		}

		rep.Mismatches = append(rep.Mismatches, Mismatch{Value: n, Matched: matched, Want: want})
		o.Logger.Warn("pattern mismatch",
			slog.Int64("min", int64(min)),
			slog.Int64("max", int64(max)),
			slog.Int64("value", n),
			slog.Bool("matched", matched),
			slog.Bool("want", want),
		)
	}

	o.Logger.LogAttrs(context.Background(), slog.LevelDebug, "verification finished",
		slog.Int64("min", int64(min)),
		slog.Int64("max", int64(max)),
		slog.Int("samples", rep.Samples),
		slog.Int("mismatches", len(rep.Mismatches)),
	)

	if !rep.OK() {
		first := rep.Mismatches[0]
		return rep, fmt.Errorf("%w: [%d, %d] value %d matched=%v (%d of %d samples)",
			ErrMismatch, min, max, first.Value, first.Matched, len(rep.Mismatches), rep.Samples)
	}

	return rep, nil
}

// compile returns the anchored regexp under test.
func compile(min, max int32, src string) (*regexp.Regexp, error) {
	if src == "" {
		return rangeregex.Regexp(min, max)
	}

	re, err := regexp.Compile(`^(?:` + src + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return re, nil
}

// samples returns the fixed edge values followed by n seeded random values,
// split evenly between below, inside and above [min, max]. Sides that are
// empty within the 32-bit domain fall back to in-range values.
func samples(min, max int32, n int, seed int64) []int64 {
	lo, hi := int64(min), int64(max)
	out := []int64{
		lo, hi, lo - 1, hi + 1,
		math.MinInt32, math.MaxInt32, math.MinInt32 - 1, math.MaxInt32 + 1,
		-1, 0, 1,
	}

	r := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		switch {
		case i%3 == 0 && lo > math.MinInt32:
			out = append(out, math.MinInt32+r.Int63n(lo-math.MinInt32))
		case i%3 == 1 && hi < math.MaxInt32:
			out = append(out, hi+1+r.Int63n(math.MaxInt32-hi))
		default:
			out = append(out, lo+r.Int63n(hi-lo+1))
		}
	}

	return out
}
