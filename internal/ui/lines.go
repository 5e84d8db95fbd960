package ui

import (
	"fmt"
	"time"

	"slopefield/internal/core"
)

// Lines formats a parameter snapshot and the smoothed frame time as the
// text rows shown in the info panel.
func Lines(snap core.ParameterSnapshot, frame time.Duration) []string {
	lines := make([]string, 0, 12)
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-12s %s", p.Label, p.Value))
		}
	}
	lines = append(lines, fmt.Sprintf("Frame %s", frame.Round(10*time.Microsecond)))
	return lines
}
