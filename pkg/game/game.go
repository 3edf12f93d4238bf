// Package game hosts the road inside an ebiten window: keyboard in, fixed
// simulation ticks, and the road, backdrop, car and HUD drawn each frame.
package game

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/golangdaddy/outrun/pkg/background"
	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/input"
	"github.com/golangdaddy/outrun/pkg/loop"
	"github.com/golangdaddy/outrun/pkg/projection"
	"github.com/golangdaddy/outrun/pkg/render"
	"github.com/golangdaddy/outrun/pkg/resources"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/golangdaddy/outrun/pkg/track"
	"github.com/golangdaddy/outrun/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg    config.Config
	logger *slog.Logger

	sim      *sim.Simulation
	sweeper  *render.Sweeper
	painter  *render.Painter
	surface  *Surface
	keyboard Keyboard

	clock   loop.Clock
	stepper *loop.Stepper
	last    time.Time
	prev    input.Snapshot

	backdrop *ebiten.Image
	car      *ebiten.Image
	hud      *ui.HUD
}

// New wires a game around an already built track and loaded textures.
func New(cfg config.Config, tr *track.Track, textures *Textures, logger *slog.Logger) (*Game, error) {
	backdrop, err := textures.Get(resources.Background)
	if err != nil {
		return nil, err
	}
	sheet, err := textures.Get(resources.Cars)
	if err != nil {
		return nil, err
	}
	frame := carFrame(cfg.Assets.CarRect)
	if !frame.In(sheet.Bounds()) {
		return nil, fmt.Errorf("car rect %v outside sprite sheet %v", frame, sheet.Bounds())
	}

	controls := input.Controls{
		SteerStep:  cfg.Controls.SteerStep,
		Speed:      cfg.Controls.Speed,
		HeightStep: cfg.Controls.HeightStep,
	}
	viewport := projection.Viewport{
		Width:      float64(cfg.Window.Width),
		Height:     float64(cfg.Window.Height),
		TrackWidth: cfg.Track.Width,
		FocalDepth: cfg.Camera.FocalDepth,
	}

	return &Game{
		cfg:    cfg,
		logger: logger,
		sim: sim.New(tr, controls, sim.Options{
			CameraHeight:   cfg.Camera.Height,
			ParallaxFactor: cfg.Render.ParallaxFactor,
		}),
		sweeper: render.NewSweeper(tr, viewport, render.Options{
			LookAhead:   cfg.Render.LookAhead,
			StripeWidth: cfg.Render.StripeWidth,
		}),
		painter: &render.Painter{
			Palette:     Palette(cfg.Render.Palette),
			ScreenWidth: viewport.Width,
			RumbleScale: cfg.Render.RumbleScale,
		},
		surface:  NewSurface(),
		clock:    loop.SystemClock{},
		stepper:  loop.NewStepper(cfg.Loop.TPS, cfg.Loop.MaxCatchUp),
		backdrop: backdrop,
		car:      sheet.SubImage(frame).(*ebiten.Image),
		hud:      ui.NewHUD(),
	}, nil
}

// Palette converts configured [dark, light] pairs into render shades.
func Palette(p config.Palette) render.Palette {
	shade := func(pair [2]config.RGB) render.Shade {
		return render.Shade{Dark: pair[0].RGBA(), Light: pair[1].RGBA()}
	}
	return render.Palette{
		Grass:  shade(p.Grass),
		Rumble: shade(p.Rumble),
		Road:   shade(p.Road),
	}
}

// Update proceeds the game state.
// ebiten calls it once per frame; the simulation runs as many fixed ticks
// as the wall time since the previous call allows.
func (g *Game) Update() error {
	now := g.clock.Now()
	if g.last.IsZero() {
		g.last = now
	}
	steps := g.stepper.Advance(now.Sub(g.last))
	g.last = now

	in := g.keyboard.Poll()
	if in.Quit {
		g.logger.Info("quit requested", "tick", g.sim.Frame().Tick)
		return ebiten.Termination
	}
	if in != g.prev {
		g.logger.Debug("input changed",
			"left", in.Left, "right", in.Right,
			"accelerate", in.Accelerate, "decelerate", in.Decelerate,
			"camera_up", in.CameraUp, "camera_down", in.CameraDown)
		g.prev = in
	}
	if x, y, ok := g.keyboard.MouseRelease(); ok {
		g.logger.Debug("mouse released", "x", x, "y", y)
	}

	// ebiten only refreshes key state between Update calls, so one poll
	// is the snapshot every tick in this batch would have seen.
	for i := 0; i < steps; i++ {
		g.sim.Step(in)
	}
	return nil
}

// Draw draws the game screen from the latest simulation frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.sim.Frame()

	g.surface.Bind(screen)
	g.surface.Clear(g.cfg.Render.Sky.RGBA())
	g.drawBackdrop(screen, f)
	g.painter.Paint(g.surface, g.sweeper.Sweep(f))
	g.drawCar(screen)

	if g.cfg.Render.ShowHUD {
		tr := g.sim.Track()
		g.hud.Draw(screen, ui.Stats{
			Tick:         f.Tick,
			Speed:        f.Player.Speed,
			Segment:      f.StartIndex,
			Segments:     tr.Len(),
			Z:            f.Camera.Z,
			CameraHeight: f.CameraHeight,
			Curvature:    tr.At(f.StartIndex).Curvature,
			TPS:          ebiten.ActualTPS(),
			FPS:          ebiten.ActualFPS(),
		})
	}
}

// drawBackdrop repeats the backdrop strip across the top of the screen.
func (g *Game) drawBackdrop(screen *ebiten.Image, f sim.Frame) {
	bounds := g.backdrop.Bounds()
	height := g.cfg.Assets.BackdropHeight
	if height <= 0 || height > bounds.Dy() {
		height = bounds.Dy()
	}
	strip := g.backdrop.SubImage(image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+height)).(*ebiten.Image)

	origin := float64(g.cfg.Assets.BackdropOffsetX) + f.BackdropX
	for _, x := range background.Tiles(origin, float64(bounds.Dx()), float64(g.cfg.Window.Width)) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(strip, op)
	}
}

// drawCar places the car sprite, scaled about its centre, at the bottom
// middle of the screen.
func (g *Game) drawCar(screen *ebiten.Image) {
	b := g.car.Bounds()
	scale := g.cfg.Assets.CarScale
	w, h := float64(b.Dx()), float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(g.cfg.Window.Width)/2, float64(g.cfg.Window.Height)-h*scale/2-8)
	screen.DrawImage(g.car, op)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
