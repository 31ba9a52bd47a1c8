package rangeregex

import (
	"fmt"
	"regexp"
)

// Regexp compiles the anchored pattern for [min, max] with package regexp.
// The result reports MatchString(strconv.Itoa(n)) == (min <= n && n <= max).
func Regexp(min, max int32) (*regexp.Regexp, error) {
	src, err := CompileWith(min, max, WithAnchors())
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("rangeregex: compile %q: %w", src, err)
	}

	return re, nil
}

// MustRegexp is like Regexp but panics if min > max.
func MustRegexp(min, max int32) *regexp.Regexp {
	re, err := Regexp(min, max)
	if err != nil {
		panic(err)
	}

	return re
}
