// Package smsp solves the single-machine scheduling problem with
// sequence-dependent setup times and weighted tardiness (SMSP-SDSTWT):
// given a set of jobs (processing time, due date, penalty rate per unit of
// tardiness) and a matrix of setup times between every ordered pair of jobs,
// find a permutation minimizing the sum of weighted tardiness.
//
// # Layers
//
//	Evaluate         — one forward pass: schedule -> arrival times, penalties, total.
//	Neighborhoods    — Swap, Reinsertion (block-shift), TwoOpt (segment reversal).
//	RVND             — randomized variable neighborhood descent over the three.
//	DoubleBridge     — four-segment perturbation, escapes RVND fixed points.
//	ILS              — alternates RVND and DoubleBridge, tracks the best seen.
//	GreedyConstruction — RCL-based priority constructor (the "GR" of GRASP).
//	GRASP            — repeats (construct, ILS), keeps the best across restarts.
//
// # Determinism
//
// Every randomized step takes an explicit *rand.Rand; nothing here reads
// global or time-based entropy. A fixed seed reproduces a run bit-for-bit,
// provided the RNG draw order documented on each function is preserved by
// the caller (construction RCL draws, then RVND neighborhood-order shuffles,
// then perturbation cut draws — see Options and the call sites in cmd/).
//
// # Errors
//
// Sentinel errors only; see errors.go. No fmt.Errorf where a sentinel
// suffices. The package never logs — it is a pure function library, the
// caller (CLI or test) decides what to do with returned errors and Stats.
package smsp
