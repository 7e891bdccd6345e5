package smsp

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass Seed==0,
// so DefaultOptions() remains deterministic out of the box.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand for the given seed. Policy:
// seed==0 -> defaultRNGSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe: each independent solver run (GRASP
// driver, batch-driver worker, test case) must own its own *rand.Rand —
// never share one across goroutines, and never seed from global/time
// entropy inside the search (§5).
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleNeighborhoodOrder returns a uniformly random permutation of
// {0, 1, 2}, consuming exactly one shuffle's worth of draws from rng. This
// is the "R" in RVND: the order in which the three neighborhoods are tried
// each round.
func shuffleNeighborhoodOrder(rng *rand.Rand) [3]int {
	order := [3]int{0, 1, 2}
	// Fisher-Yates on a fixed 3-element array; no allocation.
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}
