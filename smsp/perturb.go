package smsp

import "math/rand"

// minPerturbLen is the smallest schedule length Double-Bridge perturbs.
// Below it there isn't room for four non-degenerate segments (§4.4).
const minPerturbLen = 8

// DoubleBridge applies a Double-Bridge perturbation to schedule in place:
// split into four contiguous parts P1, P2, P3, P4 at cut points
// pos1 < pos2 < pos3 < pos4, and reassemble as prefix || P3 || P1 || P2 ||
// suffix. Schedules shorter than 8 are left unchanged — there isn't enough
// room for four non-degenerate segments.
//
// Double-Bridge is chosen because no single application of Swap,
// Reinsertion, or TwoOpt can undo it: it reliably escapes an RVND fixed
// point without destroying the schedule's macro-structure (§4.4).
//
// The caller's ScheduleData cache is stale after this call; re-evaluate
// before reading TotalPenalty/ArrivalTimes/Penalties again.
func DoubleBridge(schedule Schedule, rng *rand.Rand, stats *Stats) {
	n := len(schedule)
	if n < minPerturbLen {
		return
	}

	segmentSize := n / 4
	if segmentSize < 2 {
		segmentSize = 2
	}

	// pos1 uniform in [1, n-3*segmentSize-1].
	hi := n - 3*segmentSize - 1
	pos1 := 1 + rng.Intn(hi) // hi >= 1 is guaranteed for n >= minPerturbLen
	pos2 := pos1 + segmentSize
	pos3 := pos2 + segmentSize
	pos4 := pos3 + segmentSize

	if pos4 > n {
		pos1 = 0
		pos2 = pos1 + segmentSize
		pos3 = pos2 + segmentSize
		pos4 = n
	}

	p1 := append([]int(nil), schedule[pos1:pos2]...)
	p2 := append([]int(nil), schedule[pos2:pos3]...)
	p3 := append([]int(nil), schedule[pos3:pos4]...)

	out := schedule[pos1:pos4]
	w := 0
	w += copy(out[w:], p3)
	w += copy(out[w:], p1)
	copy(out[w:], p2)

	stats.countPerturbation()
}
