package rangeregex

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rangeregex/split"
)

// Sentinel errors for range compilation.
var (
	// ErrInvalidRange is returned when min > max.
	ErrInvalidRange = errors.New("rangeregex: min is greater than max")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rangeregex: invalid option supplied")
)

// Option configures CompileWith via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation on use.
type Option func(*Options)

// Options controls how the alternation is wrapped.
type Options struct {
	// Anchors wraps the pattern as ^(?:…)$ for full-string matching.
	Anchors bool

	// Group wraps the pattern in a non-capturing group (?:…).
	Group bool

	// Capture, when non-empty, wraps the pattern in (?P<Capture>…).
	// It takes precedence over Group.
	Capture string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options that emit the bare alternation.
func DefaultOptions() Options {
	return Options{}
}

// WithAnchors requests a full-string pattern: ^(?:…)$.
func WithAnchors() Option {
	return func(o *Options) {
		o.Anchors = true
	}
}

// WithGroup wraps the alternation in a non-capturing group so that it can be
// embedded into a larger expression.
func WithGroup() Option {
	return func(o *Options) {
		o.Group = true
	}
}

// WithCapture wraps the alternation in a named capture group.
// The name must match [A-Za-z_][A-Za-z0-9_]*.
func WithCapture(name string) Option {
	return func(o *Options) {
		if !validGroupName(name) {
			o.err = fmt.Errorf("%w: capture name %q", ErrOptionViolation, name)
			return
		}
		o.Capture = name
	}
}

// validGroupName reports whether name is usable in (?P<name>…).
func validGroupName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

// Sign tells which integers an alternation arm applies to.
type Sign uint8

const (
	// Negative arms match "-f" only.
	Negative Sign = iota + 1
	// Positive arms match "f" only (zero included).
	Positive
	// Either arms match "-?f": the same digits occur on both sides of zero.
	Either
)

// Prefix returns the regex prefix emitted in front of the fragment.
func (s Sign) Prefix() string {
	switch s {
	case Negative:
		return "-"
	case Either:
		return "-?"
	default:
		return ""
	}
}

// String returns the lower-case sign name.
func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	case Either:
		return "either"
	default:
		return fmt.Sprintf("Sign(%d)", uint8(s))
	}
}

// MarshalText encodes the sign by name.
func (s Sign) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Branch is one arm of a compiled alternation.
type Branch struct {
	// Sign selects the prefix: "-", "" or "-?".
	Sign Sign `json:"sign"`

	// Fragment is the unsigned digit-class pattern.
	Fragment string `json:"fragment"`

	// Spans lists the signed integer spans matched by this arm, lowest first:
	// one span for Negative and Positive arms, two for Either.
	Spans []split.Span `json:"spans"`
}

// String renders the arm as it appears in the compiled pattern.
func (b Branch) String() string {
	return b.Sign.Prefix() + b.Fragment
}
