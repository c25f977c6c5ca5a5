//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"visnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Draw paints the HUD panel at offsetX, listing the sim's parameters and the
// key bindings.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int, paused bool) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, strings.ToUpper(h.sim.Name()), face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight

	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	for _, group := range snap.Groups {
		y += lineHeight / 2
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
		for _, p := range group.Params {
			line := fmt.Sprintf("%-12s %s", p.Label, p.Value)
			text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
	}

	if paused {
		y += lineHeight / 2
		text.Draw(h.panel, "PAUSED", face, panelPadding, y, color.RGBA{R: 240, G: 200, B: 80, A: 255})
		y += lineHeight
	}
	y += lineHeight / 2
	for _, help := range []string{"hjkl/arrows move", "esc pause", "r restart", "q quit"} {
		text.Draw(h.panel, help, face, panelPadding, y, color.RGBA{R: 120, G: 120, B: 130, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
