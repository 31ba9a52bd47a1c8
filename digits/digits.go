package digits

import "fmt"

// MaxPow10 is the largest exponent k for which 10^k fits in an int64.
const MaxPow10 = 18

// pow10 holds 10^0 … 10^18.
var pow10 = [MaxPow10 + 1]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// Pow10 returns 10^k. It panics if k is outside [0, MaxPow10].
func Pow10(k int) int64 {
	if k < 0 || k > MaxPow10 {
		panic(fmt.Sprintf("digits: exponent %d out of range [0, %d]", k, MaxPow10))
	}

	return pow10[k]
}

// Count returns the number of decimal digits of |n|. Count(0) is 1.
func Count(n int64) int {
	m := magnitude(n)
	c := 1
	for m >= 10 {
		m /= 10
		c++
	}

	return c
}

// Iterator walks the decimal representation of one integer, left to right.
// An Iterator is single-use; create a fresh one per walk.
type Iterator struct {
	mag  uint64 // remaining magnitude
	div  uint64 // place value of the next digit; 0 once exhausted
	sign bool   // '-' still pending
}

// New returns an Iterator positioned before the first byte of n's
// canonical decimal form.
func New(n int64) *Iterator {
	it := &Iterator{
		mag:  magnitude(n),
		div:  1,
		sign: n < 0,
	}
	// div*10 <= mag here, so the multiplication cannot overflow.
	for it.mag/it.div >= 10 {
		it.div *= 10
	}

	return it
}

// Next returns the next byte ('-' or '0'…'9') and true,
// or 0 and false once every digit has been produced.
func (it *Iterator) Next() (byte, bool) {
	if it.sign {
		it.sign = false
		return '-', true
	}
	if it.div == 0 {
		return 0, false
	}

	d := it.mag / it.div
	it.mag %= it.div
	it.div /= 10

	return '0' + byte(d), true
}

// Append drains a fresh Iterator for n into dst and returns the extended slice.
// The result equals strconv.AppendInt(dst, n, 10).
func Append(dst []byte, n int64) []byte {
	it := New(n)
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		dst = append(dst, b)
	}

	return dst
}

// magnitude returns |n| as uint64 without overflowing on math.MinInt64.
func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}

	return uint64(n)
}
