// Package background paints the parallax backdrop strip and the car sprite
// sheet into plain RGBA images, so the game can run without any image files
// on disk.
package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/anthonynsimon/bild/blur"
)

// Generator creates backdrop and sprite textures
type Generator struct {
	Width     int
	Height    int
	Seed      int64
	Smoothing float64 // Gaussian blur radius applied last, zero for none
}

// NewGenerator creates a generator for a backdrop strip of the given size
func NewGenerator(width, height int, seed int64) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
		Seed:   seed,
	}
}

// GenerateBackdrop creates the horizon strip: sky fading into two mountain
// ridges with a tree line along the bottom edge. The strip tiles
// horizontally, so every ridge frequency divides the width.
func (g *Generator) GenerateBackdrop() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(g.Seed))

	// Sky gradient, deep blue at the top
	top := color.RGBA{40, 90, 200, 255}
	bottom := color.RGBA{150, 200, 245, 255}
	for y := 0; y < g.Height; y++ {
		c := lerp(top, bottom, float64(y)/float64(g.Height))
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	g.drawRidge(img, 0.45, 0.20, 3, color.RGBA{110, 120, 160, 255})
	g.drawRidge(img, 0.65, 0.12, 7, color.RGBA{70, 110, 80, 255})

	// Tree line
	base := g.Height - 1
	for x := 0; x < g.Width; x += 6 + rng.Intn(18) {
		if rng.Float64() < 0.35 {
			g.drawTree(img, x, base, rng)
		} else {
			g.drawBush(img, x, base, rng)
		}
	}

	if g.Smoothing > 0 {
		return blur.Gaussian(img, g.Smoothing)
	}
	return img
}

// drawRidge fills everything below a wavy line. level and swing are
// fractions of the strip height; waves is the number of full periods across
// the strip.
func (g *Generator) drawRidge(img *image.RGBA, level, swing float64, waves int, c color.RGBA) {
	period := 2 * math.Pi * float64(waves) / float64(g.Width)
	for x := 0; x < g.Width; x++ {
		fx := float64(x)
		h := math.Sin(period*fx) + 0.5*math.Sin(3*period*fx+1.3) + 0.25*math.Sin(7*period*fx+0.4)
		ridge := int(float64(g.Height) * (level - swing*h/1.75))
		if ridge < 0 {
			ridge = 0
		}
		for y := ridge; y < g.Height; y++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawTree draws a simple pine standing on (x, y)
func (g *Generator) drawTree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 40 + rng.Intn(30)
	width := 20 + rng.Intn(15)

	trunkColor := color.RGBA{60, 40, 20, 255}
	trunkW := 4 + rng.Intn(4)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			g.plot(img, x+tx, y-ty, trunkColor)
		}
	}

	leavesColor := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}

	for l := 0; l < 3; l++ {
		layerY := y - (height / 3) - (l * height / 4)
		layerW := width - (l * 5)
		if layerW < 5 {
			layerW = 5
		}
		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.plot(img, x+lx, layerY-ly, leavesColor)
			}
		}
	}
}

// drawBush draws a round bush centred on (x, y)
func (g *Generator) drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 5 + rng.Intn(10)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.plot(img, x+dx, y+dy, c)
			}
		}
	}
}

// plot sets a pixel, wrapping x so shapes near the edges continue on the
// other side of the tile.
func (g *Generator) plot(img *image.RGBA, x, y int, c color.RGBA) {
	if y < 0 || y >= g.Height {
		return
	}
	x %= g.Width
	if x < 0 {
		x += g.Width
	}
	img.SetRGBA(x, y, c)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
