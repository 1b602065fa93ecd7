package sand

// InBounds reports whether (row, col) is inside the grid.
func (w *World) InBounds(row, col int) bool { return w.grid.In(row, col) }

// IsEmpty reports whether (row, col) is inside the grid and unoccupied.
// Out-of-bounds cells are never empty.
func (w *World) IsEmpty(row, col int) bool {
	return w.grid.In(row, col) && w.grid.At(row, col).empty()
}

// kindAt returns the kind at (row, col), or none when empty or out of bounds.
func (w *World) kindAt(row, col int) Kind {
	if !w.grid.In(row, col) {
		return none
	}
	return w.grid.At(row, col).Kind
}

// sinkable reports whether a sinking particle may move into (row, col):
// the cell is in bounds and either empty or holds water.
func (w *World) sinkable(row, col int) bool {
	k := w.kindAt(row, col)
	return w.grid.In(row, col) && (k == none || k == Water)
}

// swap exchanges two cells. Both must be in bounds; the grid panics otherwise.
func (w *World) swap(r1, c1, r2, c2 int) {
	w.grid.Swap(r1, c1, r2, c2)
}

// Clear empties every cell and resets the tick counters.
func (w *World) Clear() {
	w.grid.Clear()
	w.generation = 0
	w.ticks = 0
}

// Count returns the number of occupied cells. It scans the whole grid.
func (w *World) Count() int {
	n := 0
	for _, p := range w.grid.Cells() {
		if !p.empty() {
			n++
		}
	}
	return n
}
