//go:build ebiten

package render

import (
	"sandpit/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a sim's cells into a single image, one pixel per cell.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit refreshes the painter image from sim and draws it scaled onto dst.
// flat paints every cell in its kind's palette colour.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int, flat bool) {
	size := sim.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	Fill(gp.buf, sim, flat)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
