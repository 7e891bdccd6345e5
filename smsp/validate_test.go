package smsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrodrigues/juice-schedule/smsp"
)

func validProblem() *smsp.Problem {
	return &smsp.Problem{
		Jobs: []smsp.Job{
			{ID: 0, ProcessingTime: 1, DueTime: 1, PenaltyRate: 1},
			{ID: 1, ProcessingTime: 1, DueTime: 1, PenaltyRate: 1},
		},
		SetupTimes:        [][]int64{{0, 1}, {1, 0}},
		InitialSetupTimes: []int64{0, 0},
	}
}

func TestValidateProblem_Valid(t *testing.T) {
	require.NoError(t, smsp.ValidateProblem(validProblem()))
}

func TestValidateProblem_Empty(t *testing.T) {
	require.ErrorIs(t, smsp.ValidateProblem(&smsp.Problem{}), smsp.ErrEmptyProblem)
	require.ErrorIs(t, smsp.ValidateProblem(nil), smsp.ErrEmptyProblem)
}

func TestValidateProblem_DimensionMismatch(t *testing.T) {
	p := validProblem()
	p.InitialSetupTimes = []int64{0}
	require.ErrorIs(t, smsp.ValidateProblem(p), smsp.ErrDimensionMismatch)
}

func TestValidateProblem_NonPositiveProcessingTime(t *testing.T) {
	p := validProblem()
	p.Jobs[0].ProcessingTime = 0
	require.ErrorIs(t, smsp.ValidateProblem(p), smsp.ErrNonPositiveProcessingTime)
}

func TestValidateProblem_NegativeDueTime(t *testing.T) {
	p := validProblem()
	p.Jobs[0].DueTime = -1
	require.ErrorIs(t, smsp.ValidateProblem(p), smsp.ErrNegativeDueTime)
}

func TestValidateProblem_NegativePenaltyRate(t *testing.T) {
	p := validProblem()
	p.Jobs[0].PenaltyRate = -1
	require.ErrorIs(t, smsp.ValidateProblem(p), smsp.ErrNegativePenaltyRate)
}

func TestValidateProblem_NegativeSetupTime(t *testing.T) {
	p := validProblem()
	p.SetupTimes[0][1] = -1
	require.ErrorIs(t, smsp.ValidateProblem(p), smsp.ErrNegativeSetupTime)
}

func TestValidateProblem_IgnoresDiagonal(t *testing.T) {
	p := validProblem()
	p.SetupTimes[0][0] = -5 // diagonal unused by the solver, must not error
	require.NoError(t, smsp.ValidateProblem(p))
}

func TestValidateSchedule(t *testing.T) {
	require.NoError(t, smsp.ValidateSchedule(smsp.Schedule{1, 0, 2}, 3))
	require.ErrorIs(t, smsp.ValidateSchedule(smsp.Schedule{0, 0, 2}, 3), smsp.ErrNotPermutation) // duplicate
	require.ErrorIs(t, smsp.ValidateSchedule(smsp.Schedule{0, 1}, 3), smsp.ErrNotPermutation)    // wrong length
	require.ErrorIs(t, smsp.ValidateSchedule(smsp.Schedule{0, 1, 3}, 3), smsp.ErrNotPermutation) // out of range
}

func TestValidateOptions(t *testing.T) {
	opts := smsp.DefaultOptions()
	require.NoError(t, smsp.ValidateOptions(opts))

	bad := opts
	bad.Alpha = 1.5
	require.ErrorIs(t, smsp.ValidateOptions(bad), smsp.ErrInvalidAlpha)

	bad = opts
	bad.GRASPIterations = 0
	require.ErrorIs(t, smsp.ValidateOptions(bad), smsp.ErrInvalidIterationCount)
}
