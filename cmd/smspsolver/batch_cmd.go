package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nrodrigues/juice-schedule/instance"
	"github.com/nrodrigues/juice-schedule/optima"
	"github.com/nrodrigues/juice-schedule/smsp"
)

var batchCmd = &cobra.Command{
	Use:   "batch <directory> [seed]",
	Short: "Solve every instance file in a directory and print a summary table",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runBatch,
}

type batchRow struct {
	name         string
	n            int
	penalty      float64
	gap          string
	elapsed      time.Duration
	failed       bool
	failedReason string
}

func runBatch(cmd *cobra.Command, args []string) error {
	runID := uuid.New()
	out := cmd.OutOrStdout()

	dir := args[0]
	var (
		seed    int64
		hadSeed bool
	)
	if len(args) == 2 {
		v, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("smspsolver: invalid seed %q: %w", args[1], err)
		}
		seed = v
		hadSeed = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("smspsolver: read directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	logger.Info("starting batch run", "run_id", runID.String(), "directory", dir, "instances", len(names))

	rows := make([]batchRow, 0, len(names))
	batchStart := time.Now()

	for _, name := range names {
		path := filepath.Join(dir, name)
		runSeed := seed
		if !hadSeed {
			runSeed, err = drawSystemSeed()
			if err != nil {
				return fmt.Errorf("smspsolver: draw seed: %w", err)
			}
		}

		row := solveOneForBatch(path, runSeed)
		rows = append(rows, row)
	}

	printBatchSummary(out, rows)

	var totalPenalty float64
	solved := 0
	for _, r := range rows {
		if !r.failed {
			totalPenalty += r.penalty
			solved++
		}
	}
	fmt.Fprintf(out, "\nSolved %d/%d instance(s), total penalty %s, in %s.\n",
		solved, len(rows), humanize.Comma(int64(totalPenalty)), time.Since(batchStart).Round(time.Millisecond))

	return nil
}

func solveOneForBatch(path string, seed int64) batchRow {
	name := instanceName(path)
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return batchRow{name: name, failed: true, failedReason: err.Error()}
	}
	defer f.Close()

	p, warnings, err := instance.Parse(f)
	if err != nil {
		return batchRow{name: name, failed: true, failedReason: err.Error()}
	}
	for _, w := range warnings {
		logger.Warn(w.String(), "instance", path)
	}
	if err := smsp.ValidateProblem(p); err != nil {
		return batchRow{name: name, failed: true, failedReason: err.Error()}
	}

	opts := smsp.DefaultOptions()
	opts.Seed = seed
	opts.OnIterationImproved = func(iteration int, bestPenalty float64) {
		logger.Debug("grasp iteration improved best", "instance", name, "iteration", iteration, "best_penalty", bestPenalty)
	}
	rng := smsp.NewRNG(seed)
	stats := &smsp.Stats{}

	result, err := smsp.GRASP(p, opts, rng, stats)
	if err != nil {
		return batchRow{name: name, failed: true, failedReason: err.Error()}
	}
	logger.Debug("instance finished", "instance", name, "swap_improvements", stats.SwapImprovements,
		"reinsertion_improvements", stats.ReinsertionImprovements, "two_opt_improvements", stats.TwoOptImprovements,
		"perturbation_rounds", stats.PerturbationRounds)

	row := batchRow{
		name:    name,
		n:       p.N(),
		penalty: result.TotalPenalty,
		gap:     "n/a",
		elapsed: time.Since(start),
	}
	if known, ok := optima.Lookup(name); ok {
		row.gap = optima.FormatGap(result.TotalPenalty, known)
	}
	return row
}

func printBatchSummary(out io.Writer, rows []batchRow) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INSTANCE\tN\tPENALTY\tGAP\tTIME\tSTATUS")
	for _, r := range rows {
		if r.failed {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\tFAILED: %s\n", r.name, r.failedReason)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s (%s)\tOK\n",
			r.name, r.n, formatPenalty(r.penalty), r.gap, r.elapsed.Round(time.Millisecond), humanizeElapsed(r.elapsed))
	}
	tw.Flush()
}

// humanizeElapsed renders d the way humanize.RelTime phrases a span between
// two instants ("3 seconds ago"): it treats d as the gap between a start
// instant and now, so the batch summary's TIME column reads naturally next
// to the raw, machine-parsable duration.
func humanizeElapsed(d time.Duration) string {
	now := time.Now()
	return humanize.RelTime(now.Add(-d), now, "ago", "from now")
}
