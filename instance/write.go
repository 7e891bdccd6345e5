package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/nrodrigues/juice-schedule/smsp"
)

// Write serializes p back into the §6.1 layout, round-trippable by Parse.
// Penalty rates are formatted with strconv.FormatFloat's 'g' verb at full
// precision so Parse(Write(p)) reproduces p's penalty rates exactly.
func Write(w io.Writer, p *smsp.Problem) error {
	bw := bufio.NewWriter(w)
	n := p.N()

	if _, err := fmt.Fprintln(bw, n); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	if err := writeInts(bw, processingTimes(p)); err != nil {
		return err
	}
	if err := writeInts(bw, dueTimes(p)); err != nil {
		return err
	}
	if err := writeFloats(bw, penaltyRates(p)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	if err := writeInts(bw, p.InitialSetupTimes); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		if err := writeInts(bw, p.SetupTimes[i]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeInts(bw *bufio.Writer, vals []int64) error {
	for i, v := range vals {
		if i > 0 {
			if _, err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(strconv.FormatInt(v, 10)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(bw)
	return err
}

func writeFloats(bw *bufio.Writer, vals []float64) error {
	for i, v := range vals {
		if i > 0 {
			if _, err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(bw)
	return err
}

func processingTimes(p *smsp.Problem) []int64 {
	out := make([]int64, p.N())
	for i, j := range p.Jobs {
		out[i] = j.ProcessingTime
	}
	return out
}

func dueTimes(p *smsp.Problem) []int64 {
	out := make([]int64, p.N())
	for i, j := range p.Jobs {
		out[i] = j.DueTime
	}
	return out
}

func penaltyRates(p *smsp.Problem) []float64 {
	out := make([]float64, p.N())
	for i, j := range p.Jobs {
		out[i] = j.PenaltyRate
	}
	return out
}
