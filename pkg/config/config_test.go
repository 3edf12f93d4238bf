package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "outrun.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, 1600, cfg.Track.Segments)
	assert.Equal(t, 200.0, cfg.Track.SegmentLength)
	assert.Equal(t, 0.84, cfg.Camera.FocalDepth)
	assert.Equal(t, 300, cfg.Render.LookAhead)
	assert.Equal(t, AssetsFromGenerator, cfg.Assets.Source)
	assert.Equal(t, 1.5, cfg.Assets.BackdropSmoothing)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Night Drive
camera:
  height: 900
track:
  segments: 800
  recipe:
    zones:
      - {start: 100, end: 200, curvature: 1.5}
    hill: {after: 400, amplitude: 600, frequency: 0.05}
render:
  sky: [10, 20, 40]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Night Drive", cfg.Window.Title)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 900.0, cfg.Camera.Height)
	assert.Equal(t, 800, cfg.Track.Segments)
	require.Len(t, cfg.Track.Recipe.Zones, 1)
	assert.Equal(t, 1.5, cfg.Track.Recipe.Zones[0].Curvature)
	assert.Equal(t, 600.0, cfg.Track.Recipe.Hill.Amplitude)
	assert.Equal(t, RGB{10, 20, 40}, cfg.Render.Sky)
	assert.Equal(t, uint8(255), cfg.Render.Sky.RGBA().A)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{name: "bad_yaml", body: "window: [", invalid: false},
		{name: "zero_segments", body: "track: {segments: 0}", invalid: true},
		{name: "zone_past_end", body: "track: {segments: 1000}", invalid: true},
		{name: "unknown_asset_source", body: "assets: {source: ftp}", invalid: true},
		{name: "negative_catch_up", body: "loop: {max_catch_up: -1}", invalid: true},
		{name: "zero_look_ahead", body: "render: {look_ahead: 0}", invalid: true},
		{name: "empty_backdrop", body: "assets: {backdrop_width: 0}", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NotErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
