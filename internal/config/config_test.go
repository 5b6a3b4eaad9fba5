package config

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-maze/pkg/player"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultControllerMatchesPlayerDefaults(t *testing.T) {
	assert.Equal(t, player.DefaultConfig(), Default().Controller.PlayerConfig())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	cfg, err := Load("testdata/partial.yaml")
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset fields keep their default")
	assert.Equal(t, float32(20), cfg.Controller.MoveSpeed)
	assert.Equal(t, float32(8), cfg.Controller.PhiSpeed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadExampleConfig(t *testing.T) {
	cfg, err := Load("../../configs/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{3, 2, 3}, cfg.Controller.CollisionSize)
	assert.Equal(t, "configs/maze.yaml", cfg.Maze.Path)
	assert.InDelta(t, player.DefaultPitchLimit, cfg.Controller.PitchLimit, 1e-6)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load("testdata/unknown.yaml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero width":      func(c *Config) { c.Window.Width = 0 },
		"fov":             func(c *Config) { c.Window.FOV = 180 },
		"clip planes":     func(c *Config) { c.Window.Far = c.Window.Near },
		"negative speed":  func(c *Config) { c.Controller.MoveSpeed = -1 },
		"pitch limit":     func(c *Config) { c.Controller.PitchLimit = 2 },
		"frame delta":     func(c *Config) { c.Controller.MaxFrameDelta = -0.1 },
		"look distance":   func(c *Config) { c.Controller.LookDistance = 0 },
		"bob frequency":   func(c *Config) { c.Controller.HeadBobFrequency = 0 },
		"log level":       func(c *Config) { c.Log.Level = "loud" },
		"collision width": func(c *Config) { c.Controller.CollisionSize = mgl32.Vec3{0, 2, 3} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
