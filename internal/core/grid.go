package core

import "fmt"

// Grid stores a fixed-size 2D grid of cell values in row-major order.
// Coordinates are (row, col); row 0 is the top of the grid.
type Grid[T any] struct {
	Rows, Cols int
	data       []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions are raised to 1.
func NewGrid[T any](rows, cols int) *Grid[T] {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid[T]{Rows: rows, Cols: cols, data: make([]T, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid[T]) Index(row, col int) int { return row*g.Cols + col }

// In reports whether (row, col) lies inside the grid.
func (g *Grid[T]) In(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns a pointer to the cell at (row, col). The caller must have
// bounds-checked the coordinates.
func (g *Grid[T]) At(row, col int) *T { return &g.data[row*g.Cols+col] }

// Swap exchanges the values of two cells. Both positions must be inside the
// grid; anything else is a programming error and panics.
func (g *Grid[T]) Swap(r1, c1, r2, c2 int) {
	if !g.In(r1, c1) || !g.In(r2, c2) {
		panic(fmt.Sprintf("core: swap (%d,%d)<->(%d,%d) outside %dx%d grid", r1, c1, r2, c2, g.Rows, g.Cols))
	}
	i, j := g.Index(r1, c1), g.Index(r2, c2)
	g.data[i], g.data[j] = g.data[j], g.data[i]
}

// Clear resets every cell to the zero value.
func (g *Grid[T]) Clear() {
	clear(g.data)
}
