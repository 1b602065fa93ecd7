package app

import (
	"sandpit/internal/core"
	"sandpit/internal/sims/sand"
	"sandpit/internal/ui"
)

// Brush radius limits used by every frontend.
const (
	MinBrushRadius     = 1
	MaxBrushRadius     = 10
	DefaultBrushRadius = 3
)

// Sandbox is the engine surface the frontends drive.
type Sandbox interface {
	core.Sim
	Place(row, col, radius int, kind sand.Kind)
	Erase(row, col, radius int)
	Clear()
	SetPaused(paused bool)
	Paused() bool
	Advance()
	Ticks() uint64
	Census() sand.Census
}

// Action is a frontend-independent user command.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePause
	ActionStepOnce
	ActionClear
	ActionReset
	ActionReseed
	ActionBrushGrow
	ActionBrushShrink
	ActionSelectSand
	ActionSelectWater
	ActionSelectStone
	ActionSelectFire
	ActionSelectSmoke
	ActionToggleFlat
)

// ActionForRune maps the shared keyboard layout onto actions.
func ActionForRune(r rune) Action {
	switch r {
	case 'q', 'Q':
		return ActionQuit
	case ' ':
		return ActionTogglePause
	case 'n', 'N':
		return ActionStepOnce
	case 'c', 'C':
		return ActionClear
	case 'r', 'R':
		return ActionReset
	case 's', 'S':
		return ActionReseed
	case '+', '=':
		return ActionBrushGrow
	case '-', '_':
		return ActionBrushShrink
	case '1':
		return ActionSelectSand
	case '2':
		return ActionSelectWater
	case '3':
		return ActionSelectStone
	case '4':
		return ActionSelectFire
	case '5':
		return ActionSelectSmoke
	case 'f', 'F':
		return ActionToggleFlat
	}
	return ActionNone
}

// Controls holds the interactive state of a frontend: the selected kind, the
// brush radius, the reset seed and whether cells are drawn in flat kind
// colours.
type Controls struct {
	Box    Sandbox
	Kind   sand.Kind
	Radius int
	Seed   int64
	Flat   bool
}

// NewControls returns controls with sand selected and the radius clamped.
func NewControls(box Sandbox, radius int, seed int64) *Controls {
	c := &Controls{Box: box, Kind: sand.Sand, Seed: seed}
	c.SetRadius(radius)
	return c
}

// SetRadius clamps and stores the brush radius.
func (c *Controls) SetRadius(radius int) {
	c.Radius = min(max(radius, MinBrushRadius), MaxBrushRadius)
}

// Apply performs a. reseed supplies the seed for ActionReseed. It reports
// false when the frontend should quit.
func (c *Controls) Apply(a Action, reseed func() int64) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionTogglePause:
		c.Box.SetPaused(!c.Box.Paused())
	case ActionStepOnce:
		c.Box.Advance()
	case ActionClear:
		c.Box.Clear()
	case ActionReset:
		c.Box.Reset(c.Seed)
	case ActionReseed:
		if reseed != nil {
			c.Seed = reseed()
		}
		c.Box.Reset(c.Seed)
	case ActionBrushGrow:
		c.SetRadius(c.Radius + 1)
	case ActionBrushShrink:
		c.SetRadius(c.Radius - 1)
	case ActionSelectSand:
		c.Kind = sand.Sand
	case ActionSelectWater:
		c.Kind = sand.Water
	case ActionSelectStone:
		c.Kind = sand.Stone
	case ActionSelectFire:
		c.Kind = sand.Fire
	case ActionSelectSmoke:
		c.Kind = sand.Smoke
	case ActionToggleFlat:
		c.Flat = !c.Flat
	}
	return true
}

// Paint places the selected kind, or erases, around (row, col).
func (c *Controls) Paint(row, col int, erase bool) {
	if erase {
		c.Box.Erase(row, col, c.Radius)
		return
	}
	c.Box.Place(row, col, c.Radius, c.Kind)
}

// CellForPixel converts a screen position into grid coordinates. ok is false
// when the position is outside the grid.
func CellForPixel(x, y, scale int, size core.Size) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/scale, y/scale
	if col >= size.W || row >= size.H {
		return 0, 0, false
	}
	return row, col, true
}

// Select picks the i-th paintable kind, in the order of the number keys.
func (c *Controls) Select(i int) {
	kinds := sand.Kinds()
	if i >= 0 && i < len(kinds) {
		c.Kind = kinds[i]
	}
}

// Selected returns the index of the selected kind in sand.Kinds.
func (c *Controls) Selected() int {
	for i, k := range sand.Kinds() {
		if k == c.Kind {
			return i
		}
	}
	return -1
}

// Swatches lists the paintable kinds as HUD buttons.
func Swatches() []ui.Swatch {
	kinds := sand.Kinds()
	out := make([]ui.Swatch, len(kinds))
	for i, k := range kinds {
		out[i] = ui.Swatch{Label: k.String(), Color: sand.SwatchColor(k)}
	}
	return out
}

// Status summarises the sandbox for the HUD and the terminal status line.
func (c *Controls) Status(tps float64) ui.Status {
	census := c.Box.Census()
	st := ui.Status{
		Selected:  c.Kind.String(),
		Brush:     c.Radius,
		Paused:    c.Box.Paused(),
		Ticks:     c.Box.Ticks(),
		TPS:       tps,
		Particles: census.Total(),
	}
	for _, k := range sand.Kinds() {
		st.Census = append(st.Census, ui.KindCount{Name: k.String(), Count: census.Of(k)})
	}
	return st
}

// FireSound receives the number of burning cells once per frame.
type FireSound interface {
	SetFire(count int)
}
