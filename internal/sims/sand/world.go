package sand

import (
	"image/color"

	"sandpit/internal/core"
)

// World is the falling-sand grid together with its scheduler state and
// random source. It is not safe for concurrent use; callers serialise
// Tick, Place, Erase and reads on a single goroutine.
type World struct {
	cfg Config

	grid *core.Grid[Particle]
	rng  *core.RNG

	generation uint32
	ticks      uint64
	paused     bool

	display []uint8
}

// New returns a sand world with the provided dimensions using defaults.
func New(rows, cols int) *World {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options, reset
// to cfg.Seed.
func NewWithConfig(cfg Config) *World {
	cfg.Params.normalize()
	grid := core.NewGrid[Particle](cfg.Rows, cfg.Cols)
	cfg.Rows, cfg.Cols = grid.Rows, grid.Cols
	w := &World{
		cfg:     cfg,
		grid:    grid,
		rng:     core.NewRNG(cfg.Seed),
		display: make([]uint8, grid.Rows*grid.Cols),
	}
	w.Reset(cfg.Seed)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions in pixels-per-cell terms (W = cols).
func (w *World) Size() core.Size { return core.Size{W: w.grid.Cols, H: w.grid.Rows} }

// Dimensions reports the fixed grid size.
func (w *World) Dimensions() (rows, cols int) { return w.grid.Rows, w.grid.Cols }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Reset empties the grid and reseeds the random source. A zero seed falls
// back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.Clear()
	if w.cfg.Floor {
		bottom := w.grid.Rows - 1
		for col := 0; col < w.grid.Cols; col++ {
			*w.grid.At(bottom, col) = newParticle(Stone, w.rng, w.cfg.Params)
		}
	}
}

// SetPaused toggles whether Tick advances the simulation.
func (w *World) SetPaused(paused bool) { w.paused = paused }

// Paused reports whether Tick is currently a no-op.
func (w *World) Paused() bool { return w.paused }

// Ticks reports the number of completed passes since the last Clear.
func (w *World) Ticks() uint64 { return w.ticks }

// CellAt returns the kind and colour of the particle at (row, col). ok is
// false for empty or out-of-bounds cells.
func (w *World) CellAt(row, col int) (kind Kind, c color.RGBA, ok bool) {
	if !w.grid.In(row, col) {
		return none, color.RGBA{}, false
	}
	p := w.grid.At(row, col)
	if p.empty() {
		return none, color.RGBA{}, false
	}
	return p.Kind, p.Color, true
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
