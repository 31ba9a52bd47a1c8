package verify_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/rangeregex/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Passes(t *testing.T) {
	ranges := [][2]int32{
		{12, 3456},
		{-1154, 456415},
		{-45566453, 0},
		{-45645446, -54656},
		{math.MinInt32, math.MaxInt32},
		{math.MinInt32, math.MinInt32},
		{math.MaxInt32, math.MaxInt32},
		{0, 0},
	}
	for _, r := range ranges {
		rep, err := verify.Check(r[0], r[1], verify.WithSamples(300), verify.WithSeed(3))
		require.NoError(t, err, "range %v", r)
		assert.True(t, rep.OK())
		assert.Equal(t, 311, rep.Samples, "fixed edges plus random samples")
		assert.True(t, strings.HasPrefix(rep.Pattern, "^(?:"), "pattern %q", rep.Pattern)
	}
}

func TestCheck_DetectsMismatch(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// [1-9]\d misses 100..199.
	rep, err := verify.Check(10, 199,
		verify.WithPattern(`[1-9]\d`),
		verify.WithSamples(600),
		verify.WithLogger(logger),
	)
	require.ErrorIs(t, err, verify.ErrMismatch)
	require.False(t, rep.OK())

	for _, m := range rep.Mismatches {
		assert.True(t, m.Want)
		assert.False(t, m.Matched)
		assert.GreaterOrEqual(t, m.Value, int64(100))
		assert.LessOrEqual(t, m.Value, int64(199))
	}
	assert.Contains(t, logs.String(), `"msg":"pattern mismatch"`)
	assert.Contains(t, logs.String(), `"msg":"verification finished"`)
}

// TestCheck_Deterministic verifies that equal seeds give equal reports.
func TestCheck_Deterministic(t *testing.T) {
	a, errA := verify.Check(-500, 70000, verify.WithPattern(`\d{1,4}`), verify.WithSeed(9))
	b, errB := verify.Check(-500, 70000, verify.WithPattern(`\d{1,4}`), verify.WithSeed(9))
	require.ErrorIs(t, errA, verify.ErrMismatch)
	require.ErrorIs(t, errB, verify.ErrMismatch)
	assert.Equal(t, a, b)
}

func TestCheck_Errors(t *testing.T) {
	_, err := verify.Check(2, 1)
	assert.ErrorIs(t, err, verify.ErrInvalidRange)

	_, err = verify.Check(1, 2, verify.WithSamples(0))
	assert.ErrorIs(t, err, verify.ErrOptionViolation)

	_, err = verify.Check(1, 2, verify.WithPattern(""))
	assert.ErrorIs(t, err, verify.ErrOptionViolation)

	_, err = verify.Check(1, 2, verify.WithPattern("[1-"))
	assert.ErrorIs(t, err, verify.ErrInvalidPattern)
}

// TestWithLogger_NilIgnored keeps the default logger on nil input.
func TestWithLogger_NilIgnored(t *testing.T) {
	o := verify.DefaultOptions()
	verify.WithLogger(nil)(&o)
	assert.NotNil(t, o.Logger)
}
