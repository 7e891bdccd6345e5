package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/nrodrigues/juice-schedule/smsp"
)

// Warning records a single domain violation that Parse repaired rather than
// rejecting: a negative processing time, due time, penalty rate, or setup
// time, clamped to zero.
type Warning struct {
	Field string // "processing", "due", "penalty", "initial_setup", "setup"
	Row   int
	Col   int // -1 when Field has no column (per-job scalar fields)
	Value float64
}

func (w Warning) String() string {
	if w.Col < 0 {
		return fmt.Sprintf("instance: job %d has negative %s time %.6g, clamped to 0", w.Row, w.Field, w.Value)
	}
	return fmt.Sprintf("instance: setup[%d][%d] is negative (%.6g), clamped to 0", w.Row, w.Col, w.Value)
}

// tokenizer pulls whitespace-separated tokens (including across newlines)
// from r, the same relaxed layout the reference parser accepts: blank lines
// between sections are cosmetic only.
type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) nextInt() (int64, error) {
	if !t.sc.Scan() {
		return 0, ErrTruncated
	}
	v, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, ErrMalformedToken
	}
	return v, nil
}

func (t *tokenizer) nextFloat() (float64, error) {
	if !t.sc.Scan() {
		return 0, ErrTruncated
	}
	v, err := strconv.ParseFloat(t.sc.Text(), 64)
	if err != nil {
		return 0, ErrMalformedToken
	}
	return v, nil
}

// clampNonNegInt returns v clamped to 0, and true if clamping occurred.
func clampNonNegInt(v int64) (int64, bool) {
	if v < 0 {
		return 0, true
	}
	return v, false
}

func clampNonNegFloat(v float64) (float64, bool) {
	if v < 0 {
		return 0, true
	}
	return v, false
}

// Parse reads a problem instance in the §6.1 layout:
//
//	N
//	p_0 ... p_{N-1}
//	d_0 ... d_{N-1}
//	w_0 ... w_{N-1}
//	s_init_0 ... s_init_{N-1}
//	s_{0,0} ... s_{0,N-1}
//	...
//	s_{N-1,0} ... s_{N-1,N-1}
//
// Field order is fixed; blank lines are ignored since tokens are split on
// any whitespace, not by line. Negative processing/due/penalty/setup values
// are clamped to zero and reported as Warnings rather than rejected.
func Parse(r io.Reader) (*smsp.Problem, []Warning, error) {
	tok := newTokenizer(r)

	n64, err := tok.nextInt()
	if err != nil {
		return nil, nil, err
	}
	if n64 <= 0 {
		return nil, nil, ErrInvalidJobCount
	}
	n := int(n64)

	var warnings []Warning

	processing := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := tok.nextInt()
		if err != nil {
			return nil, nil, err
		}
		clamped, did := clampNonNegInt(v)
		if did {
			warnings = append(warnings, Warning{Field: "processing", Row: i, Col: -1, Value: float64(v)})
		}
		processing[i] = clamped
	}

	due := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := tok.nextInt()
		if err != nil {
			return nil, nil, err
		}
		clamped, did := clampNonNegInt(v)
		if did {
			warnings = append(warnings, Warning{Field: "due", Row: i, Col: -1, Value: float64(v)})
		}
		due[i] = clamped
	}

	penalty := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := tok.nextFloat()
		if err != nil {
			return nil, nil, err
		}
		clamped, did := clampNonNegFloat(v)
		if did {
			warnings = append(warnings, Warning{Field: "penalty", Row: i, Col: -1, Value: v})
		}
		penalty[i] = clamped
	}

	initialSetup := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := tok.nextInt()
		if err != nil {
			return nil, nil, err
		}
		clamped, did := clampNonNegInt(v)
		if did {
			warnings = append(warnings, Warning{Field: "initial_setup", Row: i, Col: -1, Value: float64(v)})
		}
		initialSetup[i] = clamped
	}

	setup := make([][]int64, n)
	for i := 0; i < n; i++ {
		setup[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			v, err := tok.nextInt()
			if err != nil {
				return nil, nil, err
			}
			clamped, did := clampNonNegInt(v)
			if did && i != j {
				warnings = append(warnings, Warning{Field: "setup", Row: i, Col: j, Value: float64(v)})
			}
			setup[i][j] = clamped
		}
	}

	jobs := make([]smsp.Job, n)
	for i := 0; i < n; i++ {
		jobs[i] = smsp.Job{
			ID:             i,
			ProcessingTime: processing[i],
			DueTime:        due[i],
			PenaltyRate:    penalty[i],
		}
	}

	p := &smsp.Problem{
		Jobs:              jobs,
		SetupTimes:        setup,
		InitialSetupTimes: initialSetup,
	}

	return p, warnings, nil
}
