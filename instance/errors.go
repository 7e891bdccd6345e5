package instance

import "errors"

// Sentinel errors for structural parse failures. Domain violations that the
// reference parser clamps (negative times/rates) are not errors here either
// — see Warning in parse.go.
var (
	// ErrTruncated is returned when the input ends before every declared
	// field has been read.
	ErrTruncated = errors.New("instance: input truncated before all fields were read")

	// ErrMalformedToken is returned when a token that should parse as a
	// number does not.
	ErrMalformedToken = errors.New("instance: malformed numeric token")

	// ErrInvalidJobCount is returned when the declared job count N is <= 0.
	ErrInvalidJobCount = errors.New("instance: job count must be positive")
)
