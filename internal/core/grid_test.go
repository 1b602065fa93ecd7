package core

import "testing"

func TestGridIndexAndBounds(t *testing.T) {
	g := NewGrid[int](3, 4)
	if g.Rows != 3 || g.Cols != 4 || len(g.Cells()) != 12 {
		t.Fatalf("unexpected grid %dx%d with %d cells", g.Rows, g.Cols, len(g.Cells()))
	}
	if got := g.Index(2, 1); got != 9 {
		t.Fatalf("Index(2,1) = %d, want 9", got)
	}
	*g.At(2, 1) = 5
	if g.Cells()[9] != 5 {
		t.Fatal("At did not address the row-major slot")
	}
	for _, tc := range []struct {
		row, col int
		in       bool
	}{{0, 0, true}, {2, 3, true}, {3, 0, false}, {0, 4, false}, {-1, 2, false}} {
		if got := g.In(tc.row, tc.col); got != tc.in {
			t.Fatalf("In(%d,%d) = %v", tc.row, tc.col, got)
		}
	}
}

func TestGridSwapAndClear(t *testing.T) {
	g := NewGrid[string](2, 2)
	*g.At(0, 0) = "a"
	g.Swap(0, 0, 1, 1)
	if *g.At(0, 0) != "" || *g.At(1, 1) != "a" {
		t.Fatal("Swap did not exchange cells")
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != "" {
			t.Fatalf("cell %d not cleared", i)
		}
	}
}

func TestGridSwapOutOfBoundsPanics(t *testing.T) {
	g := NewGrid[int](2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	g.Swap(0, 0, 0, 2)
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid[byte](0, -5)
	if g.Rows != 1 || g.Cols != 1 {
		t.Fatalf("expected 1x1, got %dx%d", g.Rows, g.Cols)
	}
}
