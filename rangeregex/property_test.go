package rangeregex_test

import (
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"testing"

	"github.com/katalvlaran/rangeregex/rangeregex"
	"github.com/stretchr/testify/require"
)

// edgePoints are values next to digit-run boundaries in [-10000, 10000].
var edgePoints = func() []int32 {
	base := []int32{
		0, 1, 2, 5, 9, 10, 11, 19, 20, 21, 50, 99, 100, 101, 109, 110, 199,
		200, 999, 1000, 1001, 1009, 1010, 1099, 1100, 1234, 1999, 2000, 9990,
		9999, 10000,
	}
	out := make([]int32, 0, 2*len(base))
	for _, v := range base {
		out = append(out, v)
		if v != 0 {
			out = append(out, -v)
		}
	}

	return out
}()

// assertRange checks the anchored pattern for [min, max] against every value.
func assertRange(t *testing.T, re *regexp.Regexp, min, max int32, values []int64) {
	t.Helper()
	for _, n := range values {
		want := int64(min) <= n && n <= int64(max)
		got := re.MatchString(strconv.FormatInt(n, 10))
		if got != want {
			require.Failf(t, "pattern mismatch",
				"range [%d, %d] value %d: matched=%v want=%v pattern=%s", min, max, n, got, want, re)
		}
	}
}

// TestCompile_EdgeGrid checks every pair of edge points against edge-adjacent
// values and a stride through the whole window.
func TestCompile_EdgeGrid(t *testing.T) {
	values := make([]int64, 0, 1024)
	for _, p := range edgePoints {
		values = append(values, int64(p)-1, int64(p), int64(p)+1)
	}
	for n := int64(-10001); n <= 10001; n += 37 {
		values = append(values, n)
	}

	for _, min := range edgePoints {
		for _, max := range edgePoints {
			if min > max {
				continue
			}
			assertRange(t, rangeregex.MustRegexp(min, max), min, max, values)
		}
	}
}

// TestCompile_ExhaustiveWindow checks random ranges inside [-10000, 10000]
// against every integer of the window (and one past each end).
func TestCompile_ExhaustiveWindow(t *testing.T) {
	rounds := 40
	if testing.Short() {
		rounds = 4
	}

	window := make([]int64, 0, 20003)
	for n := int64(-10001); n <= 10001; n++ {
		window = append(window, n)
	}

	r := rand.New(rand.NewSource(7))
	for i := 0; i < rounds; i++ {
		a := int32(r.Intn(20001) - 10000)
		b := int32(r.Intn(20001) - 10000)
		min, max := a, b
		if min > max {
			min, max = max, min
		}
		assertRange(t, rangeregex.MustRegexp(min, max), min, max, window)
	}
}

// TestCompile_SmallExhaustive checks every range with both ends in
// [-150, 150] against every value of that window.
func TestCompile_SmallExhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive small window skipped in -short mode")
	}

	window := make([]int64, 0, 303)
	for n := int64(-151); n <= 151; n++ {
		window = append(window, n)
	}
	for min := int32(-150); min <= 150; min += 3 {
		for max := min; max <= 150; max += 2 {
			assertRange(t, rangeregex.MustRegexp(min, max), min, max, window)
		}
	}
}

// TestCompile_Extremes covers ranges touching the 32-bit limits.
func TestCompile_Extremes(t *testing.T) {
	ranges := [][2]int32{
		{math.MinInt32, math.MaxInt32},
		{math.MinInt32, math.MinInt32},
		{math.MaxInt32, math.MaxInt32},
		{math.MinInt32, 0},
		{0, math.MaxInt32},
		{math.MinInt32, -1},
		{1, math.MaxInt32},
		{math.MinInt32 + 1, math.MaxInt32 - 1},
		{-1000000000, 1000000000},
		{math.MinInt32, -2147483640},
		{2147483640, math.MaxInt32},
	}
	values := []int64{
		math.MinInt32 - 1, math.MinInt32, math.MinInt32 + 1, math.MinInt32 + 8, math.MinInt32 + 9,
		math.MaxInt32 - 9, math.MaxInt32 - 7, math.MaxInt32 - 1, math.MaxInt32, math.MaxInt32 + 1,
		-2147483640, -2147483639, 2147483639, 2147483640,
		-1000000001, -1000000000, -999999999, 999999999, 1000000000, 1000000001,
		-10, -9, -1, 0, 1, 9, 10, 9999999999, -9999999999,
	}
	for _, rg := range ranges {
		assertRange(t, rangeregex.MustRegexp(rg[0], rg[1]), rg[0], rg[1], values)
	}
}

// TestCompile_NoFalsePositives samples values strictly outside random ranges.
func TestCompile_NoFalsePositives(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		a, b := int32(r.Uint32()), int32(r.Uint32())
		min, max := a, b
		if min > max {
			min, max = max, min
		}
		re := rangeregex.MustRegexp(min, max)

		values := []int64{int64(min), int64(max)}
		for j := 0; j < 20; j++ {
			if min > math.MinInt32 {
				values = append(values, int64(min)-1-r.Int63n(int64(min)-math.MinInt32))
			}
			if max < math.MaxInt32 {
				values = append(values, int64(max)+1+r.Int63n(math.MaxInt32-int64(max)))
			}
			values = append(values, int64(min)+r.Int63n(int64(max)-int64(min)+1))
		}
		assertRange(t, re, min, max, values)
	}
}
