package smsp

// SwapNeighborhood exchanges the jobs at two positions. Candidates are every
// unordered pair (i, j) with 0 <= i < j < N: N*(N-1)/2 moves (§4.2.1).
type SwapNeighborhood struct{}

// ApplyBestImprovement implements Neighborhood for SwapNeighborhood.
func (SwapNeighborhood) ApplyBestImprovement(sd *ScheduleData, p *Problem, stats *Stats) (bool, error) {
	n := len(sd.Schedule)
	if n < 2 {
		return false, nil
	}

	trial := scratchFor(sd)
	bestTotal := sd.TotalPenalty
	bestI, bestJ := -1, -1

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			trial.Schedule[i], trial.Schedule[j] = trial.Schedule[j], trial.Schedule[i]
			if err := trial.Reevaluate(p); err != nil {
				return false, err
			}
			if trial.TotalPenalty < bestTotal {
				bestTotal = trial.TotalPenalty
				bestI, bestJ = i, j
			}
			// Undo: swap is its own inverse, restores trial to sd's schedule.
			trial.Schedule[i], trial.Schedule[j] = trial.Schedule[j], trial.Schedule[i]
		}
	}

	if bestI < 0 {
		return false, nil
	}

	sd.Schedule[bestI], sd.Schedule[bestJ] = sd.Schedule[bestJ], sd.Schedule[bestI]
	if err := sd.Reevaluate(p); err != nil {
		return false, err
	}
	stats.countSwap()
	return true, nil
}
