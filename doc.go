// Package rangeregex turns a closed range of 32-bit integers into a regular
// expression that matches exactly the decimal spellings of its members.
//
//	rangeregex.Compile(0, 255)
//	// \d|[1-9]\d|1\d{2}|2[0-4]\d|25[0-5]
//
// The work is split into small packages, leaf first:
//
//	digits/       allocation-free most-significant-first digit iteration
//	boundary/     nines and zeros steppers producing aligned span boundaries
//	split/        merges both steppers into equal-width, digit-aligned spans
//	pattern/      prints one span as literal digits, [a-b] classes and \d{n}
//	rangeregex/   Compile, CompileWith, Branches and Regexp entry points
//	verify/       seeded differential check against package regexp
//
// A command-line front end lives in cmd/rangeregex:
//
//	go install github.com/katalvlaran/rangeregex/cmd/rangeregex@latest
//	rangeregex compile -- -128 127
//	rangeregex explain 0 255
//	rangeregex batch ranges.toml --output json
//	rangeregex verify 1 31 --samples 10000
//
// Emitted patterns are unanchored alternations in RE2 syntax, so they can be
// embedded directly or anchored with CompileWith(min, max, WithAnchors()).
package rangeregex
