package smsp

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Problem data model (§3)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Job is one order to be scheduled. Immutable once a Problem is built.
type Job struct {
	// ID is the 0-based dense index of the job; it must equal the job's
	// position in Problem.Jobs (ID i lives at Jobs[i]).
	ID int

	// ProcessingTime is the job's own duration on the machine. Must be > 0.
	ProcessingTime int64

	// DueTime is the deadline after which tardiness penalty accrues.
	// Must be >= 0. A DueTime of 0 is accepted by ValidateProblem but makes
	// the greedy construction's priority function undefined (division by due
	// time); priorityDueTime clamps it to 1 for that purpose only — see
	// construct.go.
	DueTime int64

	// PenaltyRate is the cost charged per unit of tardiness. Must be >= 0.
	PenaltyRate float64
}

// Problem is the immutable, shared instance: N jobs plus the setup-time
// matrix between every ordered pair, plus the initial setup for whichever
// job is scheduled first. Safe for concurrent read-only use by independent
// solver runs (§5).
type Problem struct {
	// Jobs is indexed by job ID, len(Jobs) == N.
	Jobs []Job

	// SetupTimes[i][j] is the setup incurred scheduling job j immediately
	// after job i. Diagonal entries are unused. Not required to be symmetric.
	SetupTimes [][]int64

	// InitialSetupTimes[j] is the setup incurred when j is scheduled first.
	InitialSetupTimes []int64
}

// N returns the number of jobs in the instance.
func (p *Problem) N() int {
	if p == nil {
		return 0
	}
	return len(p.Jobs)
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Schedule & derived evaluation state
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Schedule is a permutation of {0, ..., N-1}: Schedule[k] is the job ID
// scheduled at position k. This permutation invariant is preserved by every
// operation in this package; ValidateSchedule checks it explicitly.
type Schedule []int

// Clone returns an independent copy of the schedule.
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	copy(out, s)
	return out
}

// ScheduleData carries a Schedule together with its cached evaluation:
// arrival (completion) times, per-position penalties, and their sum.
// Any move against the embedded Schedule invalidates the cache until
// Reevaluate (or Evaluate) is called again — see evaluate.go.
type ScheduleData struct {
	Schedule Schedule

	// ArrivalTimes[k] is the completion time (inclusive of setup and
	// processing) of the job scheduled at position k. Strictly increasing.
	ArrivalTimes []int64

	// Penalties[k] is the tardiness penalty contributed by the job at
	// position k. Always >= 0.
	Penalties []float64

	// TotalPenalty == sum(Penalties). Always >= 0.
	TotalPenalty float64
}

// Clone returns a deep, independent copy of sd.
func (sd *ScheduleData) Clone() *ScheduleData {
	out := &ScheduleData{
		Schedule:     sd.Schedule.Clone(),
		ArrivalTimes: append([]int64(nil), sd.ArrivalTimes...),
		Penalties:    append([]float64(nil), sd.Penalties...),
		TotalPenalty: sd.TotalPenalty,
	}
	return out
}

// CopyFrom overwrites sd's contents with src's, reusing sd's backing arrays
// when capacity allows (avoids an allocation per ILS/GRASP "accept best"
// step).
func (sd *ScheduleData) CopyFrom(src *ScheduleData) {
	sd.Schedule = append(sd.Schedule[:0], src.Schedule...)
	sd.ArrivalTimes = append(sd.ArrivalTimes[:0], src.ArrivalTimes...)
	sd.Penalties = append(sd.Penalties[:0], src.Penalties...)
	sd.TotalPenalty = src.TotalPenalty
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default knobs (reference values from §4 and §9).
const (
	// DefaultAlpha is the GRASP RCL greediness used by the reference driver.
	DefaultAlpha = 0.6

	// DefaultGRASPIterations is the reference GRASP restart count.
	DefaultGRASPIterations = 10

	// DefaultReinsertionMaxBlockLen caps the reinsertion neighborhood's
	// block length (L_max in §4.2.2).
	DefaultReinsertionMaxBlockLen = 10

	// DefaultTwoOptMaxSegmentLen caps the 2-opt neighborhood's reversed
	// segment length (§4.2.3).
	DefaultTwoOptMaxSegmentLen = 10
)

// Options configures one solver run. Zero value is not meaningful; start
// from DefaultOptions and override fields as needed.
type Options struct {
	// Alpha controls RCL greediness in [0, 1]. 0 is pure greedy
	// (RCL size 1); 1 is uniform random construction.
	Alpha float64

	// GRASPIterations bounds the outer construct-then-ILS loop.
	GRASPIterations int

	// ReinsertionMaxBlockLen bounds the reinsertion neighborhood's block
	// length (§4.2.2, L_max).
	ReinsertionMaxBlockLen int

	// TwoOptMaxSegmentLen bounds the 2-opt neighborhood's reversed segment
	// length (§4.2.3).
	TwoOptMaxSegmentLen int

	// Seed records the seed a caller used to build the run's *rand.Rand
	// (see NewRNG). No function in this package reads it: every randomized
	// step (construction RCL draws, RVND neighborhood-order shuffles,
	// perturbation cut draws) draws from the rng argument it is given.
	Seed int64

	// OnIterationImproved, if set, is called by GRASP synchronously each
	// time a restart finds a new best penalty. It exists so a caller (the
	// CLI) can report progress without this package taking on a logging
	// dependency itself; GRASP never calls it concurrently.
	OnIterationImproved func(iteration int, bestPenalty float64)
}

// DefaultOptions returns the reference configuration: alpha=0.6, 10 GRASP
// iterations, L_max=10 for both reinsertion and 2-opt, seed=0.
func DefaultOptions() Options {
	return Options{
		Alpha:                  DefaultAlpha,
		GRASPIterations:        DefaultGRASPIterations,
		ReinsertionMaxBlockLen: DefaultReinsertionMaxBlockLen,
		TwoOptMaxSegmentLen:    DefaultTwoOptMaxSegmentLen,
		Seed:                   0,
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Diagnostics (opt-in; never a global — see DESIGN.md)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Stats counts accepted moves per neighborhood across a run. A nil *Stats
// is always safe to pass: every counting site guards on it being non-nil,
// so callers that don't care about diagnostics pay nothing for them.
type Stats struct {
	SwapImprovements       int
	ReinsertionImprovements int
	TwoOptImprovements     int
	PerturbationRounds     int
}

func (s *Stats) countSwap() {
	if s != nil {
		s.SwapImprovements++
	}
}

func (s *Stats) countReinsertion() {
	if s != nil {
		s.ReinsertionImprovements++
	}
}

func (s *Stats) countTwoOpt() {
	if s != nil {
		s.TwoOptImprovements++
	}
}

func (s *Stats) countPerturbation() {
	if s != nil {
		s.PerturbationRounds++
	}
}
