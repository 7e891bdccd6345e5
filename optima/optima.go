// Package optima holds the known-optimal total weighted tardiness for the
// reference benchmark instances, and computes the optimality gap against a
// solver's result.
package optima

import "fmt"

// table maps benchmark instance name to its known-optimal total penalty.
var table = map[string]float64{
	"n60A": 453,
	"n60B": 1757,
	"n60C": 0,
	"n60D": 69102,
	"n60E": 58935,
	"n60F": 93045,
	"n60G": 64632,
	"n60H": 145007,
	"n60I": 43286,
	"n60J": 53555,
	"n60K": 458752,
	"n60L": 332941,
	"n60M": 516926,
	"n60N": 492572,
	"n60O": 527459,
	"n60P": 396183,
}

// Lookup returns the known optimum for a benchmark instance name and whether
// it was found. Instance names are matched exactly; callers typically derive
// name from an instance file's base name with its extension stripped.
func Lookup(name string) (float64, bool) {
	v, ok := table[name]
	return v, ok
}

// Gap returns the relative optimality gap of found against optimal, as a
// percentage: (found - optimal) / optimal * 100. When optimal is 0, Gap
// returns 0 if found is also 0 (exact match on a zero-penalty instance) and
// reports !ok otherwise, since a relative gap against zero is undefined.
func Gap(found, optimal float64) (gap float64, ok bool) {
	if optimal == 0 {
		if found == 0 {
			return 0, true
		}
		return 0, false
	}
	return (found - optimal) / optimal * 100, true
}

// FormatGap renders a gap the way the reference driver's console output
// does: a signed percentage to two decimal places, or "n/a" when undefined.
func FormatGap(found, optimal float64) string {
	gap, ok := Gap(found, optimal)
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", gap)
}
