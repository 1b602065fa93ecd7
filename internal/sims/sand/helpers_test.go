package sand

import "testing"

// newTestWorld returns an empty world of the given size with a fixed seed.
func newTestWorld(t *testing.T, rows, cols int) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	cfg.Seed = 7
	return NewWithConfig(cfg)
}

// put writes a freshly created particle directly into the grid.
func put(w *World, row, col int, kind Kind) *Particle {
	p := w.grid.At(row, col)
	*p = newParticle(kind, w.rng, w.cfg.Params)
	return p
}

func stoneFloor(w *World) {
	bottom := w.grid.Rows - 1
	for col := 0; col < w.grid.Cols; col++ {
		put(w, bottom, col, Stone)
	}
}

// find returns the positions of every particle of kind k.
func find(w *World, k Kind) [][2]int {
	var out [][2]int
	for row := 0; row < w.grid.Rows; row++ {
		for col := 0; col < w.grid.Cols; col++ {
			if w.grid.At(row, col).Kind == k {
				out = append(out, [2]int{row, col})
			}
		}
	}
	return out
}

func scanCount(w *World) int {
	n := 0
	for row := 0; row < w.grid.Rows; row++ {
		for col := 0; col < w.grid.Cols; col++ {
			if _, _, ok := w.CellAt(row, col); ok {
				n++
			}
		}
	}
	return n
}
