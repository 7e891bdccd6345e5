package main

import (
	"strconv"
	"strings"

	"github.com/nrodrigues/juice-schedule/smsp"
)

// formatSchedule renders a Schedule as comma-separated 1-based job ids, the
// wire format §6.2 requires for the *_SCHEDULE output lines.
func formatSchedule(s smsp.Schedule) string {
	parts := make([]string, len(s))
	for i, jobID := range s {
		parts[i] = strconv.Itoa(jobID + 1)
	}
	return strings.Join(parts, ",")
}

// instanceName derives the benchmark lookup key from an instance file path:
// the base name with its extension stripped (n60A.txt -> n60A).
func instanceName(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}
