package smsp

import (
	"math"
	"math/rand"
	"sort"
)

// priorityDueTime clamps DueTime to 1 for use in the priority formula's
// division. The reference assumes strictly positive due dates; a DueTime of
// 0 is undefined there (§4.6, §9 Open Questions). Clamping to 1 keeps the
// constructor total and deterministic without special-casing the caller.
func priorityDueTime(dueTime int64) float64 {
	if dueTime <= 0 {
		return 1
	}
	return float64(dueTime)
}

// priority computes the construction heuristic's priority for scheduling
// job next with setup cost setup to append it to the current tail. Higher
// priority schedules earlier: prefer jobs that penalize heavily per unit
// time they occupy, have a short total time cost, and are due soon (§4.6).
func priority(job Job, setup int64) float64 {
	denom := float64(job.ProcessingTime + setup)
	return (job.PenaltyRate / denom) * (1.0 / priorityDueTime(job.DueTime))
}

type taskPriority struct {
	jobID    int
	priority float64
}

// GreedyConstruction builds a full permutation using a priority-based
// Restricted Candidate List heuristic. alpha in [0, 1] controls greediness:
// 0 reduces to pure greedy (RCL size 1), 1 is uniform random selection
// (§4.6). rng drives the RCL index draw at each step — exactly one draw per
// scheduled job, even when the RCL has size 1, to keep the RNG draw
// sequence identical across alpha values.
func GreedyConstruction(p *Problem, alpha float64, rng *rand.Rand) (Schedule, error) {
	if err := ValidateProblem(p); err != nil {
		return nil, err
	}
	if alpha < 0 || alpha > 1 {
		return nil, ErrInvalidAlpha
	}

	n := p.N()
	unscheduled := make([]taskPriority, n)
	for i, job := range p.Jobs {
		unscheduled[i] = taskPriority{jobID: i, priority: priority(job, p.InitialSetupTimes[i])}
	}

	schedule := make(Schedule, 0, n)
	currentTask := -1

	for len(unscheduled) > 0 {
		sort.Slice(unscheduled, func(a, b int) bool {
			return unscheduled[a].priority > unscheduled[b].priority
		})

		rclSize := 1
		if alpha >= 0.001 {
			rclSize = int(math.Ceil(alpha * float64(len(unscheduled))))
			if rclSize < 1 {
				rclSize = 1
			}
		}
		if rclSize > len(unscheduled) {
			rclSize = len(unscheduled)
		}

		chosen := rng.Intn(rclSize)
		selected := unscheduled[chosen]

		schedule = append(schedule, selected.jobID)
		unscheduled = append(unscheduled[:chosen], unscheduled[chosen+1:]...)
		currentTask = selected.jobID

		for i := range unscheduled {
			setup := p.SetupTimes[currentTask][unscheduled[i].jobID]
			unscheduled[i].priority = priority(p.Jobs[unscheduled[i].jobID], setup)
		}
	}

	return schedule, nil
}
