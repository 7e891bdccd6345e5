package smsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrodrigues/juice-schedule/smsp"
)

// threeJobNoTardiness is scenario #1 from the reference table: every order
// finishes well before its due date, so total penalty is 0 regardless of
// permutation.
func threeJobNoTardiness() *smsp.Problem {
	return &smsp.Problem{
		Jobs: []smsp.Job{
			{ID: 0, ProcessingTime: 2, DueTime: 10, PenaltyRate: 1},
			{ID: 1, ProcessingTime: 3, DueTime: 10, PenaltyRate: 1},
			{ID: 2, ProcessingTime: 1, DueTime: 10, PenaltyRate: 1},
		},
		SetupTimes: [][]int64{
			{0, 1, 1},
			{1, 0, 1},
			{1, 1, 0},
		},
		InitialSetupTimes: []int64{1, 1, 1},
	}
}

func TestEvaluate_ScenarioOne_ZeroPenalty(t *testing.T) {
	p := threeJobNoTardiness()
	sd, err := smsp.Evaluate(p, smsp.Schedule{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 0.0, sd.TotalPenalty) // every job finishes before its due date
}

// TestEvaluate_ScenarioTwo is the two-job table entry: best order is [1,0]
// with total penalty 8, the other order scores 13.
func TestEvaluate_ScenarioTwo(t *testing.T) {
	p := &smsp.Problem{
		Jobs: []smsp.Job{
			{ID: 0, ProcessingTime: 5, DueTime: 4, PenaltyRate: 1},
			{ID: 1, ProcessingTime: 5, DueTime: 4, PenaltyRate: 2},
		},
		SetupTimes:        [][]int64{{0, 0}, {0, 0}},
		InitialSetupTimes: []int64{0, 0},
	}

	sdA, err := smsp.Evaluate(p, smsp.Schedule{1, 0})
	require.NoError(t, err)
	require.Equal(t, 8.0, sdA.TotalPenalty)
	require.Equal(t, []int64{5, 10}, sdA.ArrivalTimes)

	sdB, err := smsp.Evaluate(p, smsp.Schedule{0, 1})
	require.NoError(t, err)
	require.Equal(t, 13.0, sdB.TotalPenalty)
}

// TestEvaluate_ScenarioThree is the boundary case N=1.
func TestEvaluate_ScenarioThree_SingleJob(t *testing.T) {
	p := &smsp.Problem{
		Jobs:              []smsp.Job{{ID: 0, ProcessingTime: 10, DueTime: 5, PenaltyRate: 3}},
		SetupTimes:        [][]int64{{0}},
		InitialSetupTimes: []int64{2},
	}
	sd, err := smsp.Evaluate(p, smsp.Schedule{0})
	require.NoError(t, err)
	require.Equal(t, int64(12), sd.ArrivalTimes[0]) // 2 + 10
	require.Equal(t, 21.0, sd.TotalPenalty)          // 3 * (12 - 5)
}

// TestEvaluate_ScenarioFour checks the high-penalty-first heuristic's target
// on a tie-breaking, all-due-at-zero instance: with unit processing times
// and no setup, arrival time at position k is k+1, so total penalty is
// sum(rate[job] * position) over the chosen order. The lowest-cost order
// places the highest rate first: [2,1,0] scores 100*1+10*2+1*3=123, the
// minimum over all 6 permutations of {0,1,2}.
func TestEvaluate_ScenarioFour(t *testing.T) {
	p := &smsp.Problem{
		Jobs: []smsp.Job{
			{ID: 0, ProcessingTime: 1, DueTime: 0, PenaltyRate: 1},
			{ID: 1, ProcessingTime: 1, DueTime: 0, PenaltyRate: 10},
			{ID: 2, ProcessingTime: 1, DueTime: 0, PenaltyRate: 100},
		},
		SetupTimes:        [][]int64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		InitialSetupTimes: []int64{0, 0, 0},
	}

	sd, err := smsp.Evaluate(p, smsp.Schedule{2, 1, 0})
	require.NoError(t, err)
	require.Equal(t, 123.0, sd.TotalPenalty) // optimal over all 6 permutations

	sdOther, err := smsp.Evaluate(p, smsp.Schedule{1, 2, 0})
	require.NoError(t, err)
	require.Equal(t, 213.0, sdOther.TotalPenalty)
}

func TestReevaluate_RejectsWrongLength(t *testing.T) {
	p := threeJobNoTardiness()
	sd := &smsp.ScheduleData{Schedule: smsp.Schedule{0, 1}}
	err := sd.Reevaluate(p)
	require.ErrorIs(t, err, smsp.ErrNotPermutation)
}

func TestScheduleData_CopyFrom_ReusesBackingArrays(t *testing.T) {
	p := threeJobNoTardiness()
	dst, err := smsp.Evaluate(p, smsp.Schedule{0, 1, 2})
	require.NoError(t, err)
	src, err := smsp.Evaluate(p, smsp.Schedule{2, 1, 0})
	require.NoError(t, err)

	backing := &dst.Schedule[0]
	dst.CopyFrom(src)
	require.Same(t, backing, &dst.Schedule[0]) // same array, capacity already fits
	require.Equal(t, src.Schedule, dst.Schedule)
	require.Equal(t, src.TotalPenalty, dst.TotalPenalty)
}
