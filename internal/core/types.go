package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// In reports whether the cell at column x, row y lies inside the size.
func (s Size) In(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// RGBAFiller is implemented by sims whose cells carry their own colour rather
// than a palette index. buf holds 4*W*H bytes.
type RGBAFiller interface {
	FillRGBA(buf []byte)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered simulations in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
