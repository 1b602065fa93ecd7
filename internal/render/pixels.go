package render

import (
	"image/color"

	"sandpit/internal/core"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Fill converts the sim's current state into RGBA pixels in buf. Sims that
// colour their own cells are asked directly unless flat is set; flat views
// and other sims are looked up in the sim's palette.
func Fill(buf []byte, sim core.Sim, flat bool) {
	if filler, ok := sim.(core.RGBAFiller); ok && !flat {
		filler.FillRGBA(buf)
		return
	}
	var palette []color.RGBA
	if provider, ok := sim.(paletteProvider); ok {
		palette = provider.Palette()
	}
	fillPaletteRGBA(buf, sim.Cells(), palette)
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
