package smsp

// Evaluate walks schedule left to right, computing arrival times and
// tardiness penalties in one O(N) forward pass (§4.1), and returns a fresh
// ScheduleData. Use Reevaluate instead when reusing an existing
// ScheduleData's buffers (e.g. inside neighborhood scans) to avoid
// reallocating on every candidate.
func Evaluate(p *Problem, schedule Schedule) (*ScheduleData, error) {
	sd := &ScheduleData{Schedule: schedule.Clone()}
	if err := sd.Reevaluate(p); err != nil {
		return nil, err
	}
	return sd, nil
}

// Reevaluate recomputes ArrivalTimes, Penalties, and TotalPenalty from
// sd.Schedule, resizing the cached slices in place rather than reallocating
// when their capacity already fits. sd.Schedule must already be a valid
// permutation; callers that accept schedules from outside this package
// should run ValidateSchedule first.
//
// currentTime accumulates in a 64-bit integer: processing and setup times
// are non-negative integers, but the total horizon can exceed the 32-bit
// range on adversarial instances (§4.1). Penalties are real-valued and
// accumulated in floating point since PenaltyRate may be fractional.
func (sd *ScheduleData) Reevaluate(p *Problem) error {
	n := len(sd.Schedule)
	if n != p.N() {
		return ErrNotPermutation
	}

	if cap(sd.ArrivalTimes) < n {
		sd.ArrivalTimes = make([]int64, n)
	} else {
		sd.ArrivalTimes = sd.ArrivalTimes[:n]
	}
	if cap(sd.Penalties) < n {
		sd.Penalties = make([]float64, n)
	} else {
		sd.Penalties = sd.Penalties[:n]
	}

	var (
		currentTime int64
		total       float64
		prevTask    = -1 // "none" sentinel: no predecessor before position 0
	)

	for k, jobID := range sd.Schedule {
		job := p.Jobs[jobID]

		var setup int64
		if prevTask < 0 {
			setup = p.InitialSetupTimes[jobID]
		} else {
			setup = p.SetupTimes[prevTask][jobID]
		}

		currentTime += setup + job.ProcessingTime
		sd.ArrivalTimes[k] = currentTime

		var penalty float64
		if tardiness := currentTime - job.DueTime; tardiness > 0 {
			penalty = job.PenaltyRate * float64(tardiness)
		}
		sd.Penalties[k] = penalty
		total += penalty

		prevTask = jobID
	}

	sd.TotalPenalty = total
	return nil
}
