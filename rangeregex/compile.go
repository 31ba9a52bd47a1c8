package rangeregex

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rangeregex/pattern"
	"github.com/katalvlaran/rangeregex/split"
)

// fragment is one printed sub-range and the signed span it stands for.
type fragment struct {
	text string
	span split.Span
}

// Compile returns the alternation matching exactly the integers in [min, max].
// For min > max it returns "", which matches no canonical integer.
func Compile(min, max int32) string {
	if min > max {
		return ""
	}

	neg, pos := compileSides(int64(min), int64(max))

	var b strings.Builder
	b.Grow(alternationSize(neg, pos))
	writeAlternation(&b, neg, pos)

	return b.String()
}

// CompileWith is Compile with wrapping options and explicit validation.
//
// Example:
//
//	s, err := CompileWith(0, 255, WithAnchors())
//	// s == `^(?:\d|[1-9]\d|1\d{2}|2[0-4]\d|25[0-5])$`
func CompileWith(min, max int32, opts ...Option) (string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return "", o.err
	}
	if min > max {
		return "", fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}

	neg, pos := compileSides(int64(min), int64(max))

	var b strings.Builder
	b.Grow(alternationSize(neg, pos) + len(o.Capture) + 8)
	if o.Anchors {
		b.WriteByte('^')
	}
	switch {
	case o.Capture != "":
		b.WriteString("(?P<")
		b.WriteString(o.Capture)
		b.WriteByte('>')
	case o.Group || o.Anchors:
		b.WriteString("(?:")
	}
	writeAlternation(&b, neg, pos)
	if o.Capture != "" || o.Group || o.Anchors {
		b.WriteByte(')')
	}
	if o.Anchors {
		b.WriteByte('$')
	}

	return b.String(), nil
}

// Branches returns the arms of Compile(min, max) in emission order.
func Branches(min, max int32) ([]Branch, error) {
	if min > max {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}

	neg, pos := compileSides(int64(min), int64(max))
	out := make([]Branch, 0, len(neg)+len(pos))
	eachBranch(neg, pos, func(sign Sign, f fragment, twin *fragment) {
		spans := []split.Span{f.span}
		if twin != nil {
			spans = append(spans, twin.span)
		}
		out = append(out, Branch{Sign: sign, Fragment: f.text, Spans: spans})
	})

	return out, nil
}

// compileSides splits [min, max] at zero and compiles each side.
// Negative fragments are listed by ascending magnitude.
func compileSides(min, max int64) (neg, pos []fragment) {
	printer := pattern.NewPrinter()

	if min < 0 {
		lo := int64(1)
		if max < 0 {
			lo = -max
		}
		neg = compileSpans(printer, lo, -min, split.Span.Negate)
		min = 0
	}
	if max >= 0 {
		pos = compileSpans(printer, min, max, nil)
	}

	return neg, pos
}

// compileSpans prints every sub-range of the non-negative range [min, max].
// transform maps a magnitude span onto the values it represents; nil keeps it.
func compileSpans(printer *pattern.Printer, min, max int64, transform func(split.Span) split.Span) []fragment {
	spans, err := split.Spans(min, max)
	if err != nil {
		panic(fmt.Sprintf("rangeregex: split [%d, %d]: %v", min, max, err))
	}

	out := make([]fragment, 0, len(spans))
	for _, s := range spans {
		text, err := printer.Print(s.Start, s.Stop)
		if err != nil {
			panic(fmt.Sprintf("rangeregex: print %v: %v", s, err))
		}
		if transform != nil {
			s = transform(s)
		}
		out = append(out, fragment{text: text, span: s})
	}

	return out
}

// eachBranch visits the arms in emission order: negative-only, positive-only,
// then shared ones in negative order. twin is the positive counterpart of a
// shared arm and nil otherwise.
func eachBranch(neg, pos []fragment, visit func(sign Sign, f fragment, twin *fragment)) {
	for _, f := range neg {
		if indexOf(pos, f.text) < 0 {
			visit(Negative, f, nil)
		}
	}
	for _, f := range pos {
		if indexOf(neg, f.text) < 0 {
			visit(Positive, f, nil)
		}
	}
	for _, f := range neg {
		if i := indexOf(pos, f.text); i >= 0 {
			visit(Either, f, &pos[i])
		}
	}
}

// writeAlternation writes the '|'-joined arms into b.
func writeAlternation(b *strings.Builder, neg, pos []fragment) {
	first := true
	eachBranch(neg, pos, func(sign Sign, f fragment, _ *fragment) {
		if !first {
			b.WriteByte('|')
		}
		first = false
		b.WriteString(sign.Prefix())
		b.WriteString(f.text)
	})
}

// alternationSize is an upper bound on the written alternation length.
func alternationSize(neg, pos []fragment) int {
	n := 0
	for _, f := range neg {
		n += len(f.text) + 3
	}
	for _, f := range pos {
		n += len(f.text) + 1
	}

	return n
}

// indexOf returns the index of the first fragment whose text equals text, or -1.
func indexOf(list []fragment, text string) int {
	for i := range list {
		if list[i].text == text {
			return i
		}
	}

	return -1
}
