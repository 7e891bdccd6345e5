package smsp

import "math/rand"

// GRASP repeats (GreedyConstruction, then ILS) Options.GRASPIterations
// times and returns the best ScheduleData found across all iterations. It
// exits early once a zero-penalty solution is found, since TotalPenalty can
// never be negative (§4.7). stats, if non-nil, accumulates improvement
// counts across every ILS call the run makes — the same Stats a caller
// passes to a standalone RVND call can be reused here to get one set of
// counters for the whole run.
func GRASP(p *Problem, opts Options, rng *rand.Rand, stats *Stats) (*ScheduleData, error) {
	if err := ValidateProblem(p); err != nil {
		return nil, err
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	var best *ScheduleData

	for iter := 0; iter < opts.GRASPIterations; iter++ {
		schedule, err := GreedyConstruction(p, opts.Alpha, rng)
		if err != nil {
			return nil, err
		}

		candidate, err := ILS(p, schedule, opts, rng, stats)
		if err != nil {
			return nil, err
		}

		if best == nil || candidate.TotalPenalty < best.TotalPenalty {
			best = candidate
			if opts.OnIterationImproved != nil {
				opts.OnIterationImproved(iter, best.TotalPenalty)
			}
		}

		if best.TotalPenalty == 0 {
			break
		}
	}

	return best, nil
}
