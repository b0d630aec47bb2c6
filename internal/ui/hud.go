//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var hudColor = color.RGBA{R: 120, G: 220, B: 120, A: 255}

// HUD draws a small status readout in the corner of the simulation view.
type HUD struct {
	face font.Face
}

// NewHUD constructs a HUD using the built-in bitmap face.
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

// Draw paints the status lines in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	lines := []string{
		s.Rule,
		fmt.Sprintf("gen %d | pop %d | %s", s.Generation, s.Population, state),
		"space pause | n step | tab rule | r reload | s reseed | q quit",
	}
	for i, line := range lines {
		text.Draw(screen, line, h.face, 8, 16+14*i, hudColor)
	}
}
