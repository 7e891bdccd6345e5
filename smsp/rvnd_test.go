package smsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrodrigues/juice-schedule/smsp"
)

func TestRVND_ReachesFixedPoint(t *testing.T) {
	p := fourJobBlockShiftProblem()
	sd, err := smsp.Evaluate(p, smsp.Schedule{0, 1, 2, 3})
	require.NoError(t, err)

	opts := smsp.DefaultOptions()
	rng := smsp.NewRNG(11)
	stats := &smsp.Stats{}

	require.NoError(t, smsp.RVND(sd, p, opts, rng, stats))
	require.NoError(t, smsp.ValidateSchedule(sd.Schedule, p.N()))

	verify, err := smsp.Evaluate(p, sd.Schedule)
	require.NoError(t, err)
	require.Equal(t, verify.TotalPenalty, sd.TotalPenalty)
}

// TestRVND_SecondPassIsIdempotent covers the round-trip property (§8): once
// RVND reaches a fixed point, applying it again must not change anything.
func TestRVND_SecondPassIsIdempotent(t *testing.T) {
	p := fourJobBlockShiftProblem()
	sd, err := smsp.Evaluate(p, smsp.Schedule{0, 1, 2, 3})
	require.NoError(t, err)

	opts := smsp.DefaultOptions()
	rng := smsp.NewRNG(11)
	require.NoError(t, smsp.RVND(sd, p, opts, rng, nil))

	before := sd.Schedule.Clone()
	beforePenalty := sd.TotalPenalty
	require.NoError(t, smsp.RVND(sd, p, opts, rng, nil))
	require.Equal(t, before, sd.Schedule)
	require.Equal(t, beforePenalty, sd.TotalPenalty)
}

func TestRVND_NeverWorsens(t *testing.T) {
	p := fourJobBlockShiftProblem()
	sd, err := smsp.Evaluate(p, smsp.Schedule{0, 1, 2, 3})
	require.NoError(t, err)
	start := sd.TotalPenalty

	opts := smsp.DefaultOptions()
	require.NoError(t, smsp.RVND(sd, p, opts, smsp.NewRNG(3), nil))
	require.LessOrEqual(t, sd.TotalPenalty, start)
}
