package smsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrodrigues/juice-schedule/smsp"
)

func TestGRASP_ReturnsValidSchedule(t *testing.T) {
	p := fourJobBlockShiftProblem()
	opts := smsp.DefaultOptions()
	opts.GRASPIterations = 5

	result, err := smsp.GRASP(p, opts, smsp.NewRNG(17), nil)
	require.NoError(t, err)
	require.NoError(t, smsp.ValidateSchedule(result.Schedule, p.N()))
	require.GreaterOrEqual(t, result.TotalPenalty, 0.0)
}

func TestGRASP_EarlyExitsOnZeroPenalty(t *testing.T) {
	p := threeJobNoTardiness() // every permutation scores 0: all jobs finish before their due dates
	opts := smsp.DefaultOptions()
	opts.GRASPIterations = 100

	result, err := smsp.GRASP(p, opts, smsp.NewRNG(1), nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, result.TotalPenalty)
}

func TestGRASP_Deterministic(t *testing.T) {
	p := fourJobBlockShiftProblem()
	opts := smsp.DefaultOptions()
	opts.GRASPIterations = 3

	a, err := smsp.GRASP(p, opts, smsp.NewRNG(29), nil)
	require.NoError(t, err)
	b, err := smsp.GRASP(p, opts, smsp.NewRNG(29), nil)
	require.NoError(t, err)
	require.Equal(t, a.Schedule, b.Schedule)
	require.Equal(t, a.TotalPenalty, b.TotalPenalty)
}

func TestGRASP_RejectsInvalidOptions(t *testing.T) {
	p := fourJobBlockShiftProblem()
	opts := smsp.DefaultOptions()
	opts.GRASPIterations = 0
	_, err := smsp.GRASP(p, opts, smsp.NewRNG(1), nil)
	require.ErrorIs(t, err, smsp.ErrInvalidIterationCount)
}
