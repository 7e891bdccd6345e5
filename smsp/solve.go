package smsp

import "math/rand"

// Result bundles the three reference phases the CLI reports (§6.2): the
// pure-greedy construction, a single RVND descent from it, and the full
// GRASP+ILS search. RVND.TotalPenalty <= Construction.TotalPenalty always
// holds, since RVND only applies strictly improving moves. ILSGRASP starts
// from its own constructions and is not compared with the RVND phase, so
// ILSGRASP.TotalPenalty <= RVND.TotalPenalty is not enforced by Solve.
type Result struct {
	Construction *ScheduleData
	RVND         *ScheduleData
	ILSGRASP     *ScheduleData
}

// Solve runs all three reference phases against p with opts and rng, in the
// fixed draw order the CLI depends on for determinism: construction first
// (pure greedy, alpha=0, consuming one RCL draw per job), then a single RVND
// descent from a clone of that schedule, then the full GRASP+ILS search
// which starts its own construction draws from the same rng.
func Solve(p *Problem, opts Options, rng *rand.Rand, stats *Stats) (*Result, error) {
	if err := ValidateProblem(p); err != nil {
		return nil, err
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	greedySchedule, err := GreedyConstruction(p, 0, rng)
	if err != nil {
		return nil, err
	}
	construction, err := Evaluate(p, greedySchedule)
	if err != nil {
		return nil, err
	}

	rvndResult := construction.Clone()
	if err := RVND(rvndResult, p, opts, rng, stats); err != nil {
		return nil, err
	}

	ilsGrasp, err := GRASP(p, opts, rng, stats)
	if err != nil {
		return nil, err
	}

	return &Result{
		Construction: construction,
		RVND:         rvndResult,
		ILSGRASP:     ilsGrasp,
	}, nil
}
