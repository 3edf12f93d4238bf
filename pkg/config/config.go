// Package config loads the game's tunables from YAML. Every value has a
// default matching the reference game, so an empty or missing file is valid.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/golangdaddy/outrun/pkg/track"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Asset sources.
const (
	AssetsFromFiles     = "files"
	AssetsFromGenerator = "generated"
)

// Config is the complete set of startup settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Track    TrackConfig    `yaml:"track"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Render   RenderConfig   `yaml:"render"`
	Loop     LoopConfig     `yaml:"loop"`
	Assets   AssetsConfig   `yaml:"assets"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig sizes the window and the logical screen.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Center bool   `yaml:"center"`
}

// TrackConfig describes the lap.
type TrackConfig struct {
	Segments      int          `yaml:"segments"`
	SegmentLength float64      `yaml:"segment_length"`
	Width         float64      `yaml:"width"`
	Recipe        track.Recipe `yaml:"recipe"`
}

// CameraConfig sets the lens and starting height.
type CameraConfig struct {
	FocalDepth float64 `yaml:"focal_depth"`
	Height     float64 `yaml:"height"`
}

// ControlsConfig sets what each key is worth per tick.
type ControlsConfig struct {
	SteerStep  float64 `yaml:"steer_step"`
	Speed      float64 `yaml:"speed"`
	HeightStep float64 `yaml:"height_step"`
}

// RenderConfig tunes the road sweep and its colours.
type RenderConfig struct {
	LookAhead      int     `yaml:"look_ahead"`
	StripeWidth    int     `yaml:"stripe_width"`
	RumbleScale    float64 `yaml:"rumble_scale"`
	ParallaxFactor float64 `yaml:"parallax_factor"`
	ShowHUD        bool    `yaml:"show_hud"`
	Palette        Palette `yaml:"palette"`
	Sky            RGB     `yaml:"sky"`
}

// Palette holds dark/light pairs for each road layer.
type Palette struct {
	Grass  [2]RGB `yaml:"grass"`
	Rumble [2]RGB `yaml:"rumble"`
	Road   [2]RGB `yaml:"road"`
}

// RGB is an opaque colour written as [r, g, b].
type RGB [3]uint8

// RGBA converts to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 0xff}
}

// LoopConfig sets the simulation rate.
type LoopConfig struct {
	TPS         int `yaml:"tps"`
	MaxCatchUp  int `yaml:"max_catch_up"`
	FrameRateHz int `yaml:"frame_rate_hz"` // Replay render rate when a script sets none, zero for the tick rate
}

// AssetsConfig says where textures come from.
type AssetsConfig struct {
	Source            string  `yaml:"source"`
	Background        string  `yaml:"background"`
	Cars              string  `yaml:"cars"`
	BackdropWidth     int     `yaml:"backdrop_width"`
	BackdropHeight    int     `yaml:"backdrop_height"`
	BackdropOffsetX   int     `yaml:"backdrop_offset_x"`
	BackdropSmoothing float64 `yaml:"backdrop_smoothing"` // Blur radius for the generated backdrop
	CarRect           Rect    `yaml:"car_rect"`
	CarScale          float64 `yaml:"car_scale"`
}

// Rect is a sprite-sheet sub-rectangle.
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the reference settings.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Outrun",
			Width:  1024,
			Height: 768,
			Center: true,
		},
		Track: TrackConfig{
			Segments:      1600,
			SegmentLength: 200,
			Width:         2000,
			Recipe:        track.DefaultRecipe(),
		},
		Camera: CameraConfig{
			FocalDepth: 0.84,
			Height:     1500,
		},
		Controls: ControlsConfig{
			SteerStep:  0.1,
			Speed:      200,
			HeightStep: 100,
		},
		Render: RenderConfig{
			LookAhead:      300,
			StripeWidth:    5,
			RumbleScale:    1.2,
			ParallaxFactor: 2,
			ShowHUD:        true,
			Palette: Palette{
				Grass:  [2]RGB{{0, 154, 0}, {16, 200, 16}},
				Rumble: [2]RGB{{0, 0, 0}, {255, 255, 255}},
				Road:   [2]RGB{{105, 105, 105}, {107, 107, 107}},
			},
			Sky: RGB{0, 0, 0},
		},
		Loop: LoopConfig{
			TPS:         60,
			MaxCatchUp:  10,
			FrameRateHz: 60,
		},
		Assets: AssetsConfig{
			Source:            AssetsFromGenerator,
			Background:        "resources/images/bg.png",
			Cars:              "resources/images/cars.png",
			BackdropWidth:     5000,
			BackdropHeight:    411,
			BackdropOffsetX:   -2000,
			BackdropSmoothing: 1.5,
			CarRect:           Rect{X: 264, Y: 144, W: 31, H: 23},
			CarScale:          4,
		},
		Log: LogConfig{
			Level: "INFO",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot start with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Track.Segments <= 0:
		return fmt.Errorf("%w: track.segments %d", ErrInvalid, c.Track.Segments)
	case c.Track.SegmentLength <= 0:
		return fmt.Errorf("%w: track.segment_length %v", ErrInvalid, c.Track.SegmentLength)
	case c.Track.Width <= 0:
		return fmt.Errorf("%w: track.width %v", ErrInvalid, c.Track.Width)
	case c.Camera.FocalDepth <= 0:
		return fmt.Errorf("%w: camera.focal_depth %v", ErrInvalid, c.Camera.FocalDepth)
	case c.Render.LookAhead <= 0:
		return fmt.Errorf("%w: render.look_ahead %d", ErrInvalid, c.Render.LookAhead)
	case c.Render.StripeWidth <= 0:
		return fmt.Errorf("%w: render.stripe_width %d", ErrInvalid, c.Render.StripeWidth)
	case c.Loop.TPS <= 0:
		return fmt.Errorf("%w: loop.tps %d", ErrInvalid, c.Loop.TPS)
	case c.Loop.MaxCatchUp < 0:
		return fmt.Errorf("%w: loop.max_catch_up %d", ErrInvalid, c.Loop.MaxCatchUp)
	}

	if err := c.Track.Recipe.Validate(c.Track.Segments); err != nil {
		return fmt.Errorf("%w: track.recipe: %v", ErrInvalid, err)
	}

	switch c.Assets.Source {
	case AssetsFromFiles:
		if c.Assets.Background == "" || c.Assets.Cars == "" {
			return fmt.Errorf("%w: assets.source %q needs background and cars paths", ErrInvalid, c.Assets.Source)
		}
	case AssetsFromGenerator:
		if c.Assets.BackdropWidth <= 0 || c.Assets.BackdropHeight <= 0 {
			return fmt.Errorf("%w: assets backdrop size %dx%d", ErrInvalid, c.Assets.BackdropWidth, c.Assets.BackdropHeight)
		}
	default:
		return fmt.Errorf("%w: assets.source %q", ErrInvalid, c.Assets.Source)
	}
	if c.Assets.CarRect.W <= 0 || c.Assets.CarRect.H <= 0 {
		return fmt.Errorf("%w: assets.car_rect %+v", ErrInvalid, c.Assets.CarRect)
	}
	return nil
}
