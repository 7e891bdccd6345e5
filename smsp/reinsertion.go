package smsp

// ReinsertionNeighborhood (block-shift) removes a contiguous block of jobs
// and reinserts it elsewhere in the schedule. Candidates range over every
// block length l in {1, ..., MaxBlockLen}, every start position i with
// i+l <= N, and every insertion position j with j+l <= N and j outside
// [i, i+l) (no overlap with the extracted block); l=1 is single-job
// reinsertion (§4.2.2).
type ReinsertionNeighborhood struct {
	// MaxBlockLen is L_max. Zero means DefaultReinsertionMaxBlockLen.
	MaxBlockLen int
}

func (r ReinsertionNeighborhood) maxBlockLen() int {
	if r.MaxBlockLen <= 0 {
		return DefaultReinsertionMaxBlockLen
	}
	return r.MaxBlockLen
}

// ApplyBestImprovement implements Neighborhood for ReinsertionNeighborhood.
func (r ReinsertionNeighborhood) ApplyBestImprovement(sd *ScheduleData, p *Problem, stats *Stats) (bool, error) {
	n := len(sd.Schedule)
	if n < 2 {
		return false, nil
	}
	lMax := r.maxBlockLen()
	if lMax > n {
		lMax = n
	}

	trial := scratchFor(sd)
	buf := make([]int, n)

	bestTotal := sd.TotalPenalty
	bestL, bestI, bestJ := -1, -1, -1

	// Tie-break order: smallest l, then smallest i, then smallest j (§4.2).
	for l := 1; l <= lMax; l++ {
		for i := 0; i+l <= n; i++ {
			for j := 0; j+l <= n; j++ {
				if j >= i && j < i+l {
					continue // overlaps the extracted block's original span
				}

				insertPos := j
				if j > i {
					insertPos = j - l
				}
				buildReinsertion(sd.Schedule, i, l, insertPos, buf)
				trial.Schedule = buf
				if err := trial.Reevaluate(p); err != nil {
					return false, err
				}
				if trial.TotalPenalty < bestTotal {
					bestTotal = trial.TotalPenalty
					bestL, bestI, bestJ = l, i, j
				}
			}
		}
	}

	if bestI < 0 {
		return false, nil
	}

	insertPos := bestJ
	if bestJ > bestI {
		insertPos = bestJ - bestL
	}
	buildReinsertion(sd.Schedule, bestI, bestL, insertPos, buf)
	copy(sd.Schedule, buf)
	if err := sd.Reevaluate(p); err != nil {
		return false, err
	}
	stats.countReinsertion()
	return true, nil
}

// buildReinsertion writes into out (len(out) == len(orig)) the schedule that
// results from removing the block orig[i:i+l] and reinserting it so that its
// first element lands at index insertPos of the block-removed sequence.
func buildReinsertion(orig []int, i, l, insertPos int, out []int) {
	block := orig[i : i+l]

	remIdx, writeIdx := 0, 0
	for k := 0; k < len(orig); k++ {
		if k >= i && k < i+l {
			continue // this element belongs to the extracted block
		}
		if remIdx == insertPos {
			writeIdx += copy(out[writeIdx:], block)
		}
		out[writeIdx] = orig[k]
		writeIdx++
		remIdx++
	}
	if remIdx == insertPos {
		copy(out[writeIdx:], block)
	}
}
