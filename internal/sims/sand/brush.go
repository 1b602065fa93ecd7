package sand

import "fmt"

// Place scatters particles of kind over a filled circle of the given radius.
// Each in-bounds empty cell is filled with probability Params.PlaceChance;
// occupied cells are never overwritten.
func (w *World) Place(row, col, radius int, kind Kind) {
	if !kind.Valid() {
		panic(fmt.Sprintf("sand: cannot place particle of kind %d", kind))
	}
	w.brush(row, col, radius, func(p *Particle) {
		if !p.empty() {
			return
		}
		if w.rng.Chance(w.cfg.Params.PlaceChance) {
			*p = newParticle(kind, w.rng, w.cfg.Params)
		}
	})
}

// Erase empties every cell inside the circle.
func (w *World) Erase(row, col, radius int) {
	w.brush(row, col, radius, func(p *Particle) {
		*p = Particle{}
	})
}

// brush calls fn for every in-bounds cell with dr*dr+dc*dc <= radius*radius,
// in row-major order.
func (w *World) brush(row, col, radius int, fn func(p *Particle)) {
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius
	for dr := -radius; dr <= radius; dr++ {
		rr := row + dr
		if rr < 0 || rr >= w.grid.Rows {
			continue
		}
		for dc := -radius; dc <= radius; dc++ {
			if dr*dr+dc*dc > r2 {
				continue
			}
			cc := col + dc
			if cc < 0 || cc >= w.grid.Cols {
				continue
			}
			fn(w.grid.At(rr, cc))
		}
	}
}
