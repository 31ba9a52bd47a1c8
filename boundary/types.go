package boundary

// Stepper is a lazy, finite producer of breakpoints.
// Next returns the next value and true, or 0 and false once exhausted;
// an exhausted Stepper stays exhausted.
type Stepper interface {
	Next() (int64, bool)
}

// Nines yields ascending upper boundaries of the digit blocks that start at min.
type Nines struct {
	min, max int64
	k        int  // trailing nines count of the next candidate
	done     bool // stream has ended
}

// Zeros yields descending lower boundaries (minus one) of the digit blocks
// that end at max.
type Zeros struct {
	min, max int64
	k        int  // trailing zeros count of the next candidate
	done     bool // stream has ended
}

// Compile-time checks.
var (
	_ Stepper = (*Nines)(nil)
	_ Stepper = (*Zeros)(nil)
)
