// Package ui draws the debug overlay on top of the road.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Stats is what the overlay shows for one frame.
type Stats struct {
	Tick         uint64
	Speed        float64
	Segment      int
	Segments     int
	Z            float64
	CameraHeight float64
	Curvature    float64
	TPS          float64
	FPS          float64
}

// Lines formats s for display, one reading per line.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("SPEED   %6.0f", s.Speed),
		fmt.Sprintf("SEGMENT %4d/%d", s.Segment, s.Segments),
		fmt.Sprintf("Z       %8.0f", s.Z),
		fmt.Sprintf("CAM Y   %6.0f", s.CameraHeight),
		fmt.Sprintf("CURVE   %+5.2f", s.Curvature),
		fmt.Sprintf("TPS %5.1f  FPS %5.1f", s.TPS, s.FPS),
	}
}

const (
	lineHeight = 16.0
	padding    = 8.0
)

// HUD is a translucent panel in the top left corner.
type HUD struct {
	face  text.Face
	panel *ebiten.Image
	color color.Color
}

// NewHUD creates the overlay. The panel is allocated once and reused.
func NewHUD() *HUD {
	panel := ebiten.NewImage(220, int(6*lineHeight+2*padding))
	panel.Fill(color.RGBA{0, 0, 0, 140})
	return &HUD{
		face:  text.NewGoXFace(bitmapfont.Face),
		panel: panel,
		color: color.RGBA{255, 230, 120, 255},
	}
}

// Draw renders s onto screen
func (h *HUD) Draw(screen *ebiten.Image, s Stats) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(padding, padding)
	screen.DrawImage(h.panel, op)

	for i, line := range s.Lines() {
		textOp := &text.DrawOptions{}
		textOp.GeoM.Translate(2*padding, 2*padding+float64(i)*lineHeight)
		textOp.ColorScale.ScaleWithColor(h.color)
		text.Draw(screen, line, h.face, textOp)
	}
}
