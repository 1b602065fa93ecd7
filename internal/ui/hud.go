//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"sandpit/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Swatch is a selectable material button on the HUD.
type Swatch struct {
	Label string
	Color color.RGBA
}

// HUD renders the status and tuning panel to the right of the grid.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	pixel      *ebiten.Image
	lastHeight int

	status   Status
	swatches []Swatch
	selected int

	steppers    []stepper
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	panelOffsetX int
	layout       hudLayout
}

type hudLayout struct {
	swatches []image.Rectangle
	minus    []image.Rectangle
	plus     []image.Rectangle
	rowTop   []int
}

// NewHUD constructs a HUD for sim with the given panel width and material
// swatches.
func NewHUD(sim core.Sim, width int, swatches []Swatch) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), swatches: swatches}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.steppers = append(h.steppers, newStepper(ctrl))
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	h.layoutPanel()
	return h
}

// Update refreshes the HUD from st and handles clicks inside the panel. It
// returns the index of a swatch clicked this frame, or -1.
func (h *HUD) Update(panelOffsetX int, st Status, selected int) int {
	if h == nil || h.width <= 0 {
		return -1
	}
	h.panelOffsetX = panelOffsetX
	h.status = st
	h.selected = selected
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for i := range h.steppers {
			h.steppers[i].load(snap)
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return -1
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.panelOffsetX
	if px < 0 {
		return -1
	}
	pt := image.Pt(px, my)
	for i, r := range h.layout.swatches {
		if pt.In(r) {
			return i
		}
	}
	for i := range h.steppers {
		switch {
		case pt.In(h.layout.minus[i]):
			h.steppers[i].apply(-1, h.intSetter, h.floatSetter)
		case pt.In(h.layout.plus[i]):
			h.steppers[i].apply(1, h.intSetter, h.floatSetter)
		}
	}
	return -1
}

// Contains reports whether the screen x coordinate falls on the panel.
func (h *HUD) Contains(x int) bool {
	return h != nil && h.width > 0 && x >= h.panelOffsetX
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Sandbox", face, panelPadding, y, headerColor)
	for _, line := range h.status.Lines() {
		y += statusLine
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}

	for i, r := range h.layout.swatches {
		if i == h.selected {
			h.fillRect(r.Inset(-2), color.RGBA{R: 240, G: 240, B: 250, A: 255})
		}
		h.fillRect(r, h.swatches[i].Color)
	}

	for i := range h.steppers {
		s := &h.steppers[i]
		base := h.layout.rowTop[i] + labelBaseline
		text.Draw(h.panel, s.control.Label, face, panelPadding, base, textColor)
		valueColor := textColor
		if !s.hasValue {
			valueColor = dimColor
		}
		w := text.BoundString(face, s.value).Dx()
		text.Draw(h.panel, s.value, face, h.layout.minus[i].Min.X-buttonGap-w, base, valueColor)
		h.drawButton(h.layout.minus[i], "-", s.enabled(-1))
		h.drawButton(h.layout.plus[i], "+", s.enabled(1))
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) fillRect(r image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := color.RGBA{R: 54, G: 56, B: 64, A: 255}, textColor
	if !enabled {
		bg, fg = color.RGBA{R: 32, G: 34, B: 40, A: 255}, dimColor
	}
	h.fillRect(r, bg)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// layoutPanel positions swatches below the status block (which may grow by
// one line per census row) and the steppers below the swatches.
func (h *HUD) layoutPanel() {
	if h.width <= 0 {
		return
	}
	statusLines := 5 + len(h.swatches)
	top := panelPadding + headerBaseline + statusLines*statusLine + sectionGap
	for i := range h.swatches {
		x := panelPadding + i*(swatchSize+buttonGap)
		h.layout.swatches = append(h.layout.swatches, image.Rect(x, top, x+swatchSize, top+swatchSize))
	}
	top += swatchSize + sectionGap
	for i := range h.steppers {
		rowTop := top + i*lineHeight
		by := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, by, h.width-panelPadding, by+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, by, plus.Min.X-buttonGap, by+buttonSize)
		h.layout.rowTop = append(h.layout.rowTop, rowTop)
		h.layout.minus = append(h.layout.minus, minus)
		h.layout.plus = append(h.layout.plus, plus)
	}
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 30
	statusLine     = 15
	sectionGap     = 10
	swatchSize     = 24
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 14
	labelBaseline  = 20
)
