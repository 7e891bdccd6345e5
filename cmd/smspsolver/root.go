package main

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var logger hclog.Logger

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "diagnostic log level (trace, debug, info, warn, error, off)")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(batchCmd)
}

var rootCmd = &cobra.Command{
	Use:   "smspsolver",
	Short: "GRASP/ILS/RVND solver for sequence-dependent-setup weighted tardiness scheduling",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		levelName, _ := cmd.Flags().GetString("log-level")
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "smspsolver",
			Level:  hclog.LevelFromString(levelName),
			Output: cmd.ErrOrStderr(),
		})
	},
}
