package smsp

// TwoOptNeighborhood reverses a segment of the schedule. Candidates range
// over every i in [0, N-1) and j in (i, min(N-1, i+MaxSegmentLen-1)]: the
// length cap is a deliberate pruning, since full 2-opt on long schedules
// degenerates into global shuffling and rarely improves tardiness cost
// (§4.2.3).
type TwoOptNeighborhood struct {
	// MaxSegmentLen bounds the reversed segment's length j-i+1. Zero means
	// DefaultTwoOptMaxSegmentLen.
	MaxSegmentLen int
}

func (t TwoOptNeighborhood) maxSegmentLen() int {
	if t.MaxSegmentLen <= 0 {
		return DefaultTwoOptMaxSegmentLen
	}
	return t.MaxSegmentLen
}

// ApplyBestImprovement implements Neighborhood for TwoOptNeighborhood.
func (t TwoOptNeighborhood) ApplyBestImprovement(sd *ScheduleData, p *Problem, stats *Stats) (bool, error) {
	n := len(sd.Schedule)
	if n < 2 {
		return false, nil
	}
	segCap := t.maxSegmentLen()

	trial := scratchFor(sd)
	bestTotal := sd.TotalPenalty
	bestI, bestJ := -1, -1

	for i := 0; i < n-1; i++ {
		hi := i + segCap - 1
		if hi > n-1 {
			hi = n - 1
		}
		for j := i + 1; j <= hi; j++ {
			reverseSegment(trial.Schedule, i, j)
			if err := trial.Reevaluate(p); err != nil {
				return false, err
			}
			if trial.TotalPenalty < bestTotal {
				bestTotal = trial.TotalPenalty
				bestI, bestJ = i, j
			}
			reverseSegment(trial.Schedule, i, j) // undo: reversal is its own inverse
		}
	}

	if bestI < 0 {
		return false, nil
	}

	reverseSegment(sd.Schedule, bestI, bestJ)
	if err := sd.Reevaluate(p); err != nil {
		return false, err
	}
	stats.countTwoOpt()
	return true, nil
}

// reverseSegment reverses s[i:j+1] in place.
func reverseSegment(s []int, i, j int) {
	for i < j {
		s[i], s[j] = s[j], s[i]
		i++
		j--
	}
}
