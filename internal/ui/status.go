package ui

import (
	"fmt"
	"strings"
)

// KindCount is one row of the particle census shown by the frontends.
type KindCount struct {
	Name  string
	Count int
}

// Status is the per-frame summary rendered by the HUD and the terminal
// status line.
type Status struct {
	Selected  string
	Brush     int
	Paused    bool
	Ticks     uint64
	TPS       float64
	Particles int
	Census    []KindCount
}

// Lines formats the status as the multi-line panel text.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("Kind: %s", s.Selected),
		fmt.Sprintf("Brush: %d", s.Brush),
		fmt.Sprintf("State: %s (%.0f tps)", state, s.TPS),
		fmt.Sprintf("Tick: %d", s.Ticks),
		fmt.Sprintf("Particles: %d", s.Particles),
	}
	for _, kc := range s.Census {
		lines = append(lines, fmt.Sprintf("  %-6s %d", kc.Name, kc.Count))
	}
	return lines
}

// Line formats the status on a single line.
func (s Status) Line() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s r=%d", s.Selected, s.Brush)
	if s.Paused {
		b.WriteString(" [paused]")
	}
	fmt.Fprintf(&b, " t=%d n=%d", s.Ticks, s.Particles)
	for _, kc := range s.Census {
		if kc.Count > 0 {
			fmt.Fprintf(&b, " %s:%d", kc.Name, kc.Count)
		}
	}
	return b.String()
}
