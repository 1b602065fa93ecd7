package sand

import (
	"fmt"
	"image/color"

	"sandpit/internal/core"
)

// Infinite is the lifetime of kinds that never decay.
const Infinite = -1

// Particle is the value stored in an occupied cell. The zero Particle marks
// an empty cell.
type Particle struct {
	Kind  Kind
	Color color.RGBA
	Life  int

	// stamp is the generation of the last tick that processed the particle.
	stamp uint32
}

func (p Particle) empty() bool { return p.Kind == none }

var (
	sandBase  = color.RGBA{R: 194, G: 178, B: 128, A: 255}
	waterBase = color.RGBA{R: 30, G: 144, B: 255, A: 255}
	stoneBase = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// newParticle builds a particle of the given kind. Decaying kinds draw their
// lifetime before their colour.
func newParticle(kind Kind, rng *core.RNG, params Params) Particle {
	p := Particle{Kind: kind, Life: Infinite}
	switch kind {
	case Sand:
		v := rng.IntRange(-20, 20)
		p.Color = rgb(int(sandBase.R)+v, int(sandBase.G)+v, int(sandBase.B))
	case Water:
		v := rng.IntRange(-20, 20)
		p.Color = rgb(int(waterBase.R), int(waterBase.G)+v, int(waterBase.B)+v)
	case Stone:
		v := rng.IntRange(-30, 30)
		p.Color = rgb(int(stoneBase.R)+v, int(stoneBase.G)+v, int(stoneBase.B)+v)
	case Fire:
		p.Life = rng.IntRange(params.FireLifeMin, params.FireLifeMax)
		p.Color = rgb(255, rng.IntRange(100, 200), 0)
	case Smoke:
		p.Life = rng.IntRange(params.SmokeLifeMin, params.SmokeLifeMax)
		g := rng.IntRange(80, 120)
		p.Color = rgb(g, g, g)
	default:
		panic(fmt.Sprintf("sand: cannot create particle of kind %d", kind))
	}
	return p
}

func flickerColor(rng *core.RNG) color.RGBA {
	g := rng.IntRange(100, 200)
	b := rng.IntRange(0, 50)
	return rgb(255, g, b)
}

func rgb(r, g, b int) color.RGBA {
	return color.RGBA{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: 255}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
