package sand

// Step advances the simulation by one tick; it satisfies core.Sim.
func (w *World) Step() { w.Tick() }

// Tick advances the simulation by one pass unless the world is paused.
func (w *World) Tick() {
	if w.paused {
		return
	}
	w.Advance()
}

// Advance runs one full update pass regardless of the pause state.
//
// Rows are visited bottom to top; each row's column direction is a fresh
// coin flip. A particle is processed at most once per pass: it is stamped
// with the current generation before its rule runs and the stamp moves
// with it.
func (w *World) Advance() {
	w.generation++
	if w.generation == 0 {
		w.resetStamps()
		w.generation = 1
	}
	rows, cols := w.grid.Rows, w.grid.Cols
	for row := rows - 1; row >= 0; row-- {
		if w.rng.Bool() {
			for col := cols - 1; col >= 0; col-- {
				w.visit(row, col)
			}
			continue
		}
		for col := 0; col < cols; col++ {
			w.visit(row, col)
		}
	}
	w.ticks++
}

func (w *World) visit(row, col int) {
	p := w.grid.At(row, col)
	if p.empty() || p.stamp == w.generation {
		return
	}
	p.stamp = w.generation
	switch p.Kind {
	case Sand:
		w.updateSand(row, col)
	case Water:
		w.updateWater(row, col)
	case Fire:
		w.updateFire(row, col)
	case Smoke:
		w.updateSmoke(row, col)
	}
}

func (w *World) resetStamps() {
	cells := w.grid.Cells()
	for i := range cells {
		cells[i].stamp = 0
	}
}
