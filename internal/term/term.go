// Package term runs the sandbox in a terminal. Every character cell shows two
// grid rows with the upper half block: the foreground paints the upper row
// and the background the lower one. The last screen line is a status bar.
package term

import (
	"context"
	"time"

	"sandpit/internal/app"
	"sandpit/internal/core"
	"sandpit/internal/render"
	"sandpit/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

const (
	halfBlock     = '▀'
	frameInterval = 16 * time.Millisecond
	maxCatchUp    = 4
)

var statusStyle = tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(220, 220, 230)).
	Background(tcell.NewRGBColor(16, 16, 20))

// Frontend drives a sandbox from a tcell screen.
type Frontend struct {
	screen tcell.Screen
	ctl    *app.Controls
	clock  *core.FixedStep
	sound  app.FireSound
	buf    []byte
}

// New wires box to screen. The screen must already be initialised.
func New(screen tcell.Screen, box app.Sandbox, cfg *app.Config) *Frontend {
	size := box.Size()
	return &Frontend{
		screen: screen,
		ctl:    app.NewControls(box, cfg.Brush, cfg.Seed),
		clock:  core.NewFixedStep(cfg.TPS),
		buf:    make([]byte, 4*size.W*size.H),
	}
}

// GridFor returns the grid dimensions that exactly fill a screen of w*h
// character cells, keeping one line for the status bar.
func GridFor(w, h int) (rows, cols int) {
	return max(2*(h-1), 1), max(w, 1)
}

// SetSound attaches an optional fire crackle sink.
func (f *Frontend) SetSound(s app.FireSound) { f.sound = s }

// Controls exposes the interactive state.
func (f *Frontend) Controls() *app.Controls { return f.ctl }

// Run polls input and advances the sandbox until the user quits or ctx is
// cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	defer f.screen.DisableMouse()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.Frame()
		}
	}
}

// Frame advances the sandbox by as many ticks as are due and redraws.
func (f *Frontend) Frame() {
	for i := 0; i < maxCatchUp && f.clock.ShouldStep(); i++ {
		f.ctl.Box.Step()
	}
	if f.sound != nil {
		f.sound.SetFire(f.ctl.Box.Census().Of(sand.Fire))
	}
	f.Draw()
	f.screen.Show()
}

// HandleEvent applies one input event. It reports false on quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return f.ctl.Apply(app.ActionForRune(ev.Rune()), reseed)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.Button1 != 0:
			f.paintCell(x, y, false)
		case buttons&tcell.Button2 != 0:
			f.paintCell(x, y, true)
		case buttons&tcell.WheelUp != 0:
			f.ctl.Apply(app.ActionBrushGrow, nil)
		case buttons&tcell.WheelDown != 0:
			f.ctl.Apply(app.ActionBrushShrink, nil)
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

// paintCell applies the brush to both grid rows shown by the character at
// (x, y).
func (f *Frontend) paintCell(x, y int, erase bool) {
	size := f.ctl.Box.Size()
	for row := 2 * y; row <= 2*y+1; row++ {
		if size.In(x, row) {
			f.ctl.Paint(row, x, erase)
		}
	}
}

// Draw paints the grid and the status bar without showing them.
func (f *Frontend) Draw() {
	size := f.ctl.Box.Size()
	render.Fill(f.buf, f.ctl.Box, f.ctl.Flat)
	sw, sh := f.screen.Size()
	f.screen.Clear()

	gridLines := min(sh-1, (size.H+1)/2)
	cols := min(sw, size.W)
	for y := 0; y < gridLines; y++ {
		top := 2 * y
		for x := 0; x < cols; x++ {
			style := tcell.StyleDefault.
				Foreground(f.colorAt(top, x, size)).
				Background(f.colorAt(top+1, x, size))
			f.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	if sh <= 0 {
		return
	}
	line := []rune(f.ctl.Status(0).Line())
	for x := 0; x < sw; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		f.screen.SetContent(x, sh-1, r, nil, statusStyle)
	}
}

func (f *Frontend) colorAt(row, col int, size core.Size) tcell.Color {
	if row >= size.H {
		bg := sand.Background
		return tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))
	}
	i := 4 * (row*size.W + col)
	return tcell.NewRGBColor(int32(f.buf[i]), int32(f.buf[i+1]), int32(f.buf[i+2]))
}

func reseed() int64 { return time.Now().UnixNano() }
