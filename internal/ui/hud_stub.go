//go:build !ebiten

package ui

import (
	"image/color"

	"sandpit/internal/core"
)

// Swatch is a selectable material button on the HUD.
type Swatch struct {
	Label string
	Color color.RGBA
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int, []Swatch) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, Status, int) int { return -1 }

// Contains always reports false in the headless build.
func (h *HUD) Contains(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
