package smsp

import "math/rand"

// RVND runs Randomized Variable Neighborhood Descent to a fixed point:
// repeatedly shuffle the three neighborhoods into a random order, try them
// in that order, and restart with a fresh random order as soon as one
// applies an improving move. Returns when a full round in some order finds
// no improving move in any of the three (§4.3).
//
// Randomizing the order each round prevents a fixed scan order from biasing
// which local-optimum basin the descent settles into; restarting after the
// first success (rather than running all three every round) is essential —
// it avoids wasted work and keeps intensification focused on the current
// best neighbor.
func RVND(sd *ScheduleData, p *Problem, opts Options, rng *rand.Rand, stats *Stats) error {
	neighborhoods := [3]Neighborhood{
		SwapNeighborhood{},
		ReinsertionNeighborhood{MaxBlockLen: opts.ReinsertionMaxBlockLen},
		TwoOptNeighborhood{MaxSegmentLen: opts.TwoOptMaxSegmentLen},
	}

	for {
		improved := false
		order := shuffleNeighborhoodOrder(rng)

		for _, idx := range order {
			moved, err := neighborhoods[idx].ApplyBestImprovement(sd, p, stats)
			if err != nil {
				return err
			}
			if moved {
				improved = true
				break // restart scanning with a fresh random order
			}
		}

		if !improved {
			return nil
		}
	}
}
