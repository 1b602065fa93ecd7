package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"sandpit/internal/sims/sand"
)

func main() {
	rows := flag.Int("rows", 150, "grid rows")
	cols := flag.Int("cols", 200, "grid columns")
	seed := flag.Int64("seed", 1337, "world seed")
	ticks := flag.Int("ticks", 2000, "maximum number of ticks to run (0 runs until -duration)")
	duration := flag.Duration("duration", 10*time.Second, "wall-clock limit for the run")
	every := flag.Int("pour", 5, "pour sand, water and fire every N ticks (0 disables)")
	flag.Parse()

	cfg := sand.DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Seed, cfg.Floor = *rows, *cols, *seed, true
	world := sand.NewWithConfig(cfg)
	log.Printf("Benchmarking %dx%d world, seed %d", *rows, *cols, *seed)

	report := &Report{Rows: *rows, Cols: *cols, Seed: *seed, Pour: *every, Limit: *duration}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()
	start := time.Now()

Loop:
	for n := 0; *ticks == 0 || n < *ticks; n++ {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}
		pour(world, n, *every)
		tickStart := time.Now()
		world.Tick()
		report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
	}

	report.TotalTime = time.Since(start)
	report.Ticks = len(report.TickTime.Samples)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Census = censusRows(world.Census())
	report.Fingerprint = world.Fingerprint()

	fmt.Println("\n--- Sand Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// pour drops a sand, a water and a fire blob along the top of the grid on
// every interval-th tick.
func pour(w *sand.World, tick, interval int) {
	if interval <= 0 || tick%interval != 0 {
		return
	}
	_, cols := w.Dimensions()
	w.Place(2, cols/4, 2, sand.Sand)
	w.Place(2, cols/2, 2, sand.Water)
	w.Place(2, 3*cols/4, 1, sand.Fire)
}

func censusRows(c sand.Census) []CensusRow {
	out := make([]CensusRow, 0, len(sand.Kinds()))
	for _, k := range sand.Kinds() {
		out = append(out, CensusRow{Kind: k.String(), Count: c.Of(k)})
	}
	return out
}
