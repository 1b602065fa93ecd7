package sand

// Each rule runs for one particle at (row, col) and performs at most one
// move before returning. Candidates are bounds-checked before occupancy.

func (w *World) updateSand(row, col int) {
	below := row + 1
	if w.sinkable(below, col) {
		w.swap(row, col, below, col)
		return
	}
	for _, dx := range w.sides() {
		if w.sinkable(below, col+dx) {
			w.swap(row, col, below, col+dx)
			return
		}
	}
}

func (w *World) updateWater(row, col int) {
	below := row + 1
	if w.IsEmpty(below, col) {
		w.swap(row, col, below, col)
		return
	}
	dirs := w.sides()
	for _, dx := range dirs {
		if w.IsEmpty(below, col+dx) {
			w.swap(row, col, below, col+dx)
			return
		}
	}
	for _, dx := range dirs {
		if w.IsEmpty(row, col+dx) {
			w.swap(row, col, row, col+dx)
			return
		}
	}
}

func (w *World) updateFire(row, col int) {
	p := w.grid.At(row, col)
	p.Life--
	if p.Life <= 0 {
		if w.rng.Chance(w.cfg.Params.FireSmokeChance) {
			smoke := newParticle(Smoke, w.rng, w.cfg.Params)
			smoke.stamp = w.generation
			*p = smoke
		} else {
			*p = Particle{}
		}
		return
	}
	if w.rng.Chance(w.cfg.Params.FireFlickerChance) {
		p.Color = flickerColor(w.rng)
	}
	if w.rng.Chance(w.cfg.Params.FireRiseChance) {
		w.rise(row, col)
	}
}

func (w *World) updateSmoke(row, col int) {
	p := w.grid.At(row, col)
	p.Life--
	if p.Life <= 0 {
		*p = Particle{}
		return
	}
	// Fade toward the floor but never brighten when the floor sits above
	// the current gray.
	if gray := int(p.Color.R); gray > w.cfg.Params.SmokeFloor {
		gray = max(gray-1, w.cfg.Params.SmokeFloor)
		p.Color = rgb(gray, gray, gray)
	}
	if w.rng.Chance(w.cfg.Params.SmokeRiseChance) {
		w.rise(row, col)
	}
}

// rise moves the particle into the first empty cell of a shuffled
// {up, up-left, up-right}.
func (w *World) rise(row, col int) {
	dirs := []int{0, -1, 1}
	w.rng.ShuffleInts(dirs)
	above := row - 1
	for _, dx := range dirs {
		if w.IsEmpty(above, col+dx) {
			w.swap(row, col, above, col+dx)
			return
		}
	}
}

// sides returns left/right in a freshly randomised order.
func (w *World) sides() [2]int {
	if w.rng.Bool() {
		return [2]int{1, -1}
	}
	return [2]int{-1, 1}
}
