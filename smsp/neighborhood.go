package smsp

// Neighborhood is the common capability shared by Swap, Reinsertion, and
// TwoOpt (§9 "function-pointer tables for neighborhoods"): examine every
// legal move in the family, and if any strictly improves sd's total
// penalty, apply the single best one in place and return true; otherwise
// leave sd untouched and return false.
//
// This is a best-improvement policy, not first-improvement: every
// candidate in the family is evaluated before a move is chosen. Combined
// with RVND's randomized neighborhood order, this avoids the cyclical
// ping-ponging that a fixed-order first-improvement descent is prone to
// (§4.2).
type Neighborhood interface {
	ApplyBestImprovement(sd *ScheduleData, p *Problem, stats *Stats) (bool, error)
}

// scratchFor returns a ScheduleData scanning buffer seeded from sd's current
// schedule. Candidate evaluation re-runs the full Evaluator on this scratch
// copy rather than computing an incremental delta: the reference
// implementation's final variant chose correctness over the O(N) -> O(1)
// optimization some earlier variants attempted and abandoned (§9).
func scratchFor(sd *ScheduleData) *ScheduleData {
	return sd.Clone()
}
