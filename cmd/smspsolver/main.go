// Command smspsolver runs the GRASP+ILS/RVND solver for the single-machine
// scheduling problem with sequence-dependent setup times and weighted
// tardiness against one instance file, or a directory of them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
