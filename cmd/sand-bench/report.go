package main

import (
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

// Report collects the configuration and results of one benchmark run.
type Report struct {
	Rows  int
	Cols  int
	Seed  int64
	Pour  int
	Limit time.Duration

	Ticks       int
	TotalTime   time.Duration
	TickTime    Stats
	Census      []CensusRow
	Fingerprint uint64

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// CensusRow is the particle count of one kind at the end of the run.
type CensusRow struct {
	Kind  string
	Count int
}

// Stats summarises per-tick durations.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

// Finalize derives the summary fields from Samples.
func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}
	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

// Generate writes the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Sand Benchmark Report

## Configuration
- **Grid:** {{.Rows}}x{{.Cols}}
- **Seed:** {{.Seed}}
- **Pour Interval:** {{.Pour}}
- **Time Limit:** {{.Limit}}

## Performance
- **Ticks:** {{.Ticks}}
- **Total Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
  - **P99:** {{.TickTime.P99}}

## Final State
{{range .Census}}- {{.Kind}}: {{.Count}}
{{end}}- **Fingerprint:** {{printf "%016x" .Fingerprint}}

## Memory
- Heap Alloc: {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}}
- Num GC:     {{.MemStatsStart.NumGC}} -> {{.MemStatsEnd.NumGC}}
`
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
