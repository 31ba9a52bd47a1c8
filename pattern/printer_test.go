package pattern_test

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/katalvlaran/rangeregex/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Print(t *testing.T) {
	cases := []struct {
		start, stop int64
		want        string
	}{
		{1, 1, "1"},
		{0, 1, "[0-1]"},
		{0, 9, `\d`},
		{1, 9, "[1-9]"},
		{12, 19, "1[2-9]"},
		{10, 19, `1\d`},
		{20, 99, `[2-9]\d`},
		{100, 999, `[1-9]\d{2}`},
		{1000, 2999, `[1-2]\d{3}`},
		{3000, 3399, `3[0-3]\d{2}`},
		{3400, 3449, `34[0-4]\d`},
		{3450, 3456, "345[0-6]"},
		{65666, 65667, "6566[6-7]"},
		{1000000000, 1999999999, `1\d{9}`},
		{2147483640, 2147483648, "214748364[0-8]"},
	}

	p := pattern.NewPrinter()
	for _, tc := range cases {
		got, err := p.Print(tc.start, tc.stop)
		require.NoError(t, err, "Print(%d, %d)", tc.start, tc.stop)
		assert.Equal(t, tc.want, got, "Print(%d, %d)", tc.start, tc.stop)
	}
}

// TestPrinter_ReturnsCopies ensures earlier results survive buffer reuse.
func TestPrinter_ReturnsCopies(t *testing.T) {
	p := pattern.NewPrinter()
	first, err := p.Print(12, 19)
	require.NoError(t, err)
	_, err = p.Print(100, 999)
	require.NoError(t, err)

	assert.Equal(t, "1[2-9]", first)
}

func TestAppend(t *testing.T) {
	dst := []byte("^")
	dst, err := pattern.Append(dst, 20, 99)
	require.NoError(t, err)
	assert.Equal(t, `^[2-9]\d`, string(dst))
}

func TestPrinter_Errors(t *testing.T) {
	p := pattern.NewPrinter()

	_, err := p.Print(9, 10)
	assert.ErrorIs(t, err, pattern.ErrWidthMismatch)

	_, err = p.Print(19, 12)
	assert.ErrorIs(t, err, pattern.ErrInvertedSpan)

	_, err = p.Print(-5, 5)
	assert.ErrorIs(t, err, pattern.ErrNegativeSpan)

	dst, err := pattern.Append([]byte("keep"), 5, 50)
	assert.ErrorIs(t, err, pattern.ErrWidthMismatch)
	assert.Equal(t, "keep", string(dst))
}

// TestPrinter_MatchesSpan checks that a printed fragment matches exactly the
// values of its span among all numbers of the same width.
func TestPrinter_MatchesSpan(t *testing.T) {
	spans := [][2]int64{{12, 19}, {20, 99}, {100, 999}, {300, 349}, {450, 456}, {1000, 1999}}
	p := pattern.NewPrinter()
	for _, s := range spans {
		frag, err := p.Print(s[0], s[1])
		require.NoError(t, err)
		re := regexp.MustCompile(`^(?:` + frag + `)$`)
		for n := int64(0); n <= 9999; n++ {
			want := s[0] <= n && n <= s[1]
			require.Equal(t, want, re.MatchString(strconv.FormatInt(n, 10)), "fragment %q value %d", frag, n)
		}
	}
}
