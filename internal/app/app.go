//go:build ebiten

package app

import (
	"time"

	"sandpit/internal/render"
	"sandpit/internal/sims/sand"
	"sandpit/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = map[ebiten.Key]Action{
	ebiten.KeyQ:      ActionQuit,
	ebiten.KeyEscape: ActionQuit,
	ebiten.KeySpace:  ActionTogglePause,
	ebiten.KeyN:      ActionStepOnce,
	ebiten.KeyC:      ActionClear,
	ebiten.KeyR:      ActionReset,
	ebiten.KeyS:      ActionReseed,
	ebiten.KeyEqual:  ActionBrushGrow,
	ebiten.KeyMinus:  ActionBrushShrink,
	ebiten.KeyDigit1: ActionSelectSand,
	ebiten.KeyDigit2: ActionSelectWater,
	ebiten.KeyDigit3: ActionSelectStone,
	ebiten.KeyDigit4: ActionSelectFire,
	ebiten.KeyDigit5: ActionSelectSmoke,
	ebiten.KeyF:      ActionToggleFlat,
}

// Game adapts a sandbox to the ebiten.Game interface.
type Game struct {
	ctl     *Controls
	painter *render.GridPainter
	hud     *ui.HUD
	sound   FireSound

	scale int
	panel int
}

// New constructs a Game for box. panel is the HUD width in pixels.
func New(box Sandbox, cfg *Config) *Game {
	size := box.Size()
	return &Game{
		ctl:     NewControls(box, cfg.Brush, cfg.Seed),
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(box, cfg.Panel, Swatches()),
		scale:   max(cfg.Scale, 1),
		panel:   max(cfg.Panel, 0),
	}
}

// SetSound attaches an optional fire crackle sink.
func (g *Game) SetSound(s FireSound) { g.sound = s }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) && !g.ctl.Apply(action, reseed) {
			return ebiten.Termination
		}
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		g.ctl.Apply(ActionBrushGrow, nil)
	} else if dy < 0 {
		g.ctl.Apply(ActionBrushShrink, nil)
	}

	offset := g.ctl.Box.Size().W * g.scale
	if i := g.hud.Update(offset, g.ctl.Status(ebiten.ActualTPS()), g.ctl.Selected()); i >= 0 {
		g.ctl.Select(i)
	}

	mx, my := ebiten.CursorPosition()
	if row, col, ok := CellForPixel(mx, my, g.scale, g.ctl.Box.Size()); ok && !g.hud.Contains(mx) {
		switch {
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			g.ctl.Paint(row, col, false)
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
			g.ctl.Paint(row, col, true)
		}
	}

	g.ctl.Box.Step()
	if g.sound != nil {
		g.sound.SetFire(g.ctl.Box.Census().Of(sand.Fire))
	}
	return nil
}

// Draw renders the grid and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.Box, g.scale, g.ctl.Flat)
	g.hud.Draw(screen, g.ctl.Box.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.Box.Size()
	return s.W*g.scale + g.panel, s.H * g.scale
}

func reseed() int64 { return time.Now().UnixNano() }
