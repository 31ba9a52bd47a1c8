package rangeregex_test

import (
	"testing"

	"github.com/katalvlaran/rangeregex/rangeregex"
)

// sampleRanges is the fixed workload used across benchmarks.
var sampleRanges = [][2]int32{
	{65666, 65667},
	{12, 3456},
	{1, 19},
	{-1154, 456415},
	{-45566453, 0},
	{-45645446, -54656},
	{-1, 1},
	{-1, 5644},
	{0, 1},
	{0, 0},
	{-14564, 456138979},
}

var sink string

// BenchmarkCompile_Samples compiles the whole sample workload per iteration.
func BenchmarkCompile_Samples(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, r := range sampleRanges {
			sink = rangeregex.Compile(r[0], r[1])
		}
	}
}

// BenchmarkCompile_FullInt32 measures the widest possible range.
func BenchmarkCompile_FullInt32(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = rangeregex.Compile(-2147483648, 2147483647)
	}
}

// BenchmarkCompile_Parallel checks that concurrent callers do not contend.
func BenchmarkCompile_Parallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		var local string
		for pb.Next() {
			local = rangeregex.Compile(-1154, 456415)
		}
		_ = local
	})
}

// BenchmarkBranches measures the explain path on the sample workload.
func BenchmarkBranches(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, r := range sampleRanges {
			if _, err := rangeregex.Branches(r[0], r[1]); err != nil {
				b.Fatalf("Branches(%d, %d): %v", r[0], r[1], err)
			}
		}
	}
}
