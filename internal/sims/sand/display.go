package sand

import "image/color"

// Background is the colour of an empty cell.
var Background = color.RGBA{R: 20, G: 20, B: 30, A: 255}

var sandPalette = buildPalette()

// Palette maps the kind codes returned by Cells to representative colours.
// Index 0 is the empty background.
func (w *World) Palette() []color.RGBA {
	return sandPalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, kindCount)
	palette[none] = Background
	palette[Sand] = sandBase
	palette[Water] = waterBase
	palette[Stone] = stoneBase
	palette[Fire] = color.RGBA{R: 255, G: 150, B: 0, A: 255}
	palette[Smoke] = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	return palette
}

// SwatchColor returns the palette colour for kind, used for UI swatches.
func SwatchColor(k Kind) color.RGBA {
	if int(k) < len(sandPalette) {
		return sandPalette[k]
	}
	return Background
}

// Cells rebuilds and returns the per-cell kind codes in row-major order.
// The slice is reused between calls.
func (w *World) Cells() []uint8 {
	for i, p := range w.grid.Cells() {
		w.display[i] = uint8(p.Kind)
	}
	return w.display
}

// FillRGBA writes each cell's own colour into buf (4 bytes per cell,
// row-major). Short buffers are filled as far as they reach.
func (w *World) FillRGBA(buf []byte) {
	for i, p := range w.grid.Cells() {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		c := p.Color
		if p.empty() {
			c = Background
		}
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
