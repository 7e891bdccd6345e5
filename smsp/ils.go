package smsp

import "math/rand"

// ILS drives alternating RVND and Double-Bridge perturbation from an
// initial schedule, returning the best ScheduleData seen (§4.5).
//
// Perturbation is unconditional: ILS diversifies after every RVND descent,
// even on an improving round, to keep exploring. Acceptance for "best" is
// strict-improvement-only, while "current" always advances to the
// perturbed neighbor of the last RVND fixed point. The iteration cap
// (4*N) scales with instance size so larger instances get proportionally
// more search.
func ILS(p *Problem, initial Schedule, opts Options, rng *rand.Rand, stats *Stats) (*ScheduleData, error) {
	current, err := Evaluate(p, initial)
	if err != nil {
		return nil, err
	}
	best := current.Clone()

	n := len(initial)
	maxNoImprovement := 4 * n
	noImprovement := 0

	for noImprovement < maxNoImprovement {
		if err := RVND(current, p, opts, rng, stats); err != nil {
			return nil, err
		}

		if current.TotalPenalty < best.TotalPenalty {
			best.CopyFrom(current)
			noImprovement = 0
		} else {
			noImprovement++
		}

		DoubleBridge(current.Schedule, rng, stats)
		if err := current.Reevaluate(p); err != nil {
			return nil, err
		}
	}

	return best, nil
}
