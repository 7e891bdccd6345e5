package smsp

import "errors"

// Sentinel errors. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrEmptyProblem is returned when a Problem has zero jobs.
	ErrEmptyProblem = errors.New("smsp: problem has no jobs")

	// ErrDimensionMismatch is returned when SetupTimes or InitialSetupTimes
	// do not match the job count.
	ErrDimensionMismatch = errors.New("smsp: setup time dimensions do not match job count")

	// ErrNonPositiveProcessingTime is returned when a job's ProcessingTime
	// is <= 0.
	ErrNonPositiveProcessingTime = errors.New("smsp: job has non-positive processing time")

	// ErrNegativeDueTime is returned when a job's DueTime is < 0.
	ErrNegativeDueTime = errors.New("smsp: job has negative due time")

	// ErrNegativePenaltyRate is returned when a job's PenaltyRate is < 0.
	ErrNegativePenaltyRate = errors.New("smsp: job has negative penalty rate")

	// ErrNegativeSetupTime is returned when any setup time entry is < 0.
	ErrNegativeSetupTime = errors.New("smsp: negative setup time encountered")

	// ErrNotPermutation is returned when a Schedule does not contain each
	// job ID in [0, N) exactly once.
	ErrNotPermutation = errors.New("smsp: schedule is not a permutation of job indices")

	// ErrInvalidAlpha is returned when Options.Alpha is outside [0, 1].
	ErrInvalidAlpha = errors.New("smsp: alpha must be in [0, 1]")

	// ErrInvalidIterationCount is returned when Options.GRASPIterations <= 0.
	ErrInvalidIterationCount = errors.New("smsp: GRASPIterations must be positive")
)
