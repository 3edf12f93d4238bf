package game

import (
	"fmt"
	"image"

	"github.com/golangdaddy/outrun/pkg/background"
	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/resources"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Textures is the texture registry the game draws from.
type Textures = resources.Manager[*ebiten.Image]

// FileLoader reads textures from image files on disk.
type FileLoader struct {
	Paths map[resources.TextureID]string
}

// Load decodes the file registered for id.
func (l FileLoader) Load(id resources.TextureID) (*ebiten.Image, error) {
	path, ok := l.Paths[id]
	if !ok {
		return nil, fmt.Errorf("no file configured for %v", id)
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return img, nil
}

// GeneratedLoader paints textures procedurally, so no files are needed.
type GeneratedLoader struct {
	Backdrop *background.Generator
	CarFrame image.Rectangle
}

// Load paints the texture for id.
func (l GeneratedLoader) Load(id resources.TextureID) (*ebiten.Image, error) {
	switch id {
	case resources.Background:
		return ebiten.NewImageFromImage(l.Backdrop.GenerateBackdrop()), nil
	case resources.Cars:
		return ebiten.NewImageFromImage(background.CarSheet(l.CarFrame)), nil
	}
	return nil, fmt.Errorf("no generator for %v", id)
}

// LoadTextures builds the registry described by cfg and loads every texture.
// Any failure is returned; the game cannot start without its textures.
func LoadTextures(cfg config.AssetsConfig) (*Textures, error) {
	var loader resources.Loader[*ebiten.Image]
	switch cfg.Source {
	case config.AssetsFromFiles:
		loader = FileLoader{Paths: map[resources.TextureID]string{
			resources.Background: cfg.Background,
			resources.Cars:       cfg.Cars,
		}}
	case config.AssetsFromGenerator:
		gen := background.NewGenerator(cfg.BackdropWidth, cfg.BackdropHeight, 1)
		gen.Smoothing = cfg.BackdropSmoothing
		loader = GeneratedLoader{
			Backdrop: gen,
			CarFrame: carFrame(cfg.CarRect),
		}
	default:
		return nil, fmt.Errorf("unknown asset source %q", cfg.Source)
	}

	textures := resources.NewManager(loader)
	if err := textures.LoadAll(); err != nil {
		return nil, err
	}
	return textures, nil
}

func carFrame(r config.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}
