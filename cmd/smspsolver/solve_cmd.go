package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nrodrigues/juice-schedule/instance"
	"github.com/nrodrigues/juice-schedule/optima"
	"github.com/nrodrigues/juice-schedule/smsp"
)

var solveCmd = &cobra.Command{
	Use:   "solve <instance-file> [seed]",
	Short: "Solve one instance and print its construction/RVND/GRASP phases",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	runID := uuid.New()
	out := cmd.OutOrStdout()

	path := args[0]
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

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("smspsolver: %w", err)
	}
	defer f.Close()

	p, warnings, err := instance.Parse(f)
	if err != nil {
		return fmt.Errorf("smspsolver: parse %s: %w", path, err)
	}
	for _, w := range warnings {
		logger.Warn(w.String(), "run_id", runID.String(), "instance", path)
	}
	if err := smsp.ValidateProblem(p); err != nil {
		return fmt.Errorf("smspsolver: %s: %w", path, err)
	}

	if !hadSeed {
		seed, err = drawSystemSeed()
		if err != nil {
			return fmt.Errorf("smspsolver: draw seed: %w", err)
		}
	}
	logger.Debug("starting solve", "run_id", runID.String(), "instance", path, "seed", seed)

	opts := smsp.DefaultOptions()
	opts.Seed = seed
	opts.OnIterationImproved = func(iteration int, bestPenalty float64) {
		logger.Debug("grasp iteration improved best", "run_id", runID.String(), "iteration", iteration, "best_penalty", bestPenalty)
	}
	rng := smsp.NewRNG(seed)
	stats := &smsp.Stats{}

	startConstruction := time.Now()
	greedySchedule, err := smsp.GreedyConstruction(p, 0, rng)
	if err != nil {
		return fmt.Errorf("smspsolver: construction: %w", err)
	}
	construction, err := smsp.Evaluate(p, greedySchedule)
	if err != nil {
		return fmt.Errorf("smspsolver: construction: %w", err)
	}
	constructionTime := time.Since(startConstruction)

	startRVND := time.Now()
	rvndResult := construction.Clone()
	if err := smsp.RVND(rvndResult, p, opts, rng, stats); err != nil {
		return fmt.Errorf("smspsolver: rvnd: %w", err)
	}
	rvndTime := time.Since(startRVND)

	startGRASP := time.Now()
	ilsGrasp, err := smsp.GRASP(p, opts, rng, stats)
	if err != nil {
		return fmt.Errorf("smspsolver: grasp: %w", err)
	}
	graspTime := time.Since(startGRASP)

	fmt.Fprintf(out, "CONSTRUCTION_PENALTY: %s\n", formatPenalty(construction.TotalPenalty))
	fmt.Fprintf(out, "CONSTRUCTION_TIME: %s seconds\n", formatSeconds(constructionTime))
	fmt.Fprintf(out, "CONSTRUCTION_SCHEDULE: %s\n", formatSchedule(construction.Schedule))

	fmt.Fprintf(out, "RVND_PENALTY: %s\n", formatPenalty(rvndResult.TotalPenalty))
	fmt.Fprintf(out, "RVND_TIME: %s seconds\n", formatSeconds(rvndTime))
	fmt.Fprintf(out, "RVND_SCHEDULE: %s\n", formatSchedule(rvndResult.Schedule))

	fmt.Fprintf(out, "ILS_GRASP_PENALTY: %s\n", formatPenalty(ilsGrasp.TotalPenalty))
	fmt.Fprintf(out, "ILS_GRASP_TIME: %s seconds\n", formatSeconds(graspTime))
	fmt.Fprintf(out, "ILS_GRASP_SCHEDULE: %s\n", formatSchedule(ilsGrasp.Schedule))

	fmt.Fprintf(out, "SEED_USED: %d\n", seed)

	if known, ok := optima.Lookup(instanceName(path)); ok {
		fmt.Fprintf(out, "OPTIMAL_PENALTY: %s\n", formatPenalty(known))
		fmt.Fprintf(out, "CONSTRUCTION_GAP: %s\n", optima.FormatGap(construction.TotalPenalty, known))
		fmt.Fprintf(out, "RVND_GAP: %s\n", optima.FormatGap(rvndResult.TotalPenalty, known))
		fmt.Fprintf(out, "ILS_GRASP_GAP: %s\n", optima.FormatGap(ilsGrasp.TotalPenalty, known))
	}

	logger.Debug("solve finished", "run_id", runID.String(), "swap_improvements", stats.SwapImprovements,
		"reinsertion_improvements", stats.ReinsertionImprovements, "two_opt_improvements", stats.TwoOptImprovements,
		"perturbation_rounds", stats.PerturbationRounds)

	return nil
}

func formatPenalty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}
