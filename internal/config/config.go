// Package config loads the game configuration from YAML
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/leterax/go-maze/pkg/player"
)

// ErrInvalid is returned when a configuration value is out of range
var ErrInvalid = errors.New("invalid configuration")

// Config is the full game configuration
type Config struct {
	Window      Window      `yaml:"window"`
	Controller  Controller  `yaml:"controller"`
	Maze        Maze        `yaml:"maze"`
	Log         Log         `yaml:"log"`
	Sentry      Sentry      `yaml:"sentry"`
	Diagnostics Diagnostics `yaml:"diagnostics"`
}

// Window configures the GLFW window and projection
type Window struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Title  string  `yaml:"title"`
	VSync  bool    `yaml:"vsync"`
	FOV    float32 `yaml:"fov"` // vertical, degrees
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

// Controller mirrors player.Config with YAML names
type Controller struct {
	PhiSpeed         float32    `yaml:"phi_speed"`
	ThetaSpeed       float32    `yaml:"theta_speed"`
	LookGain         float32    `yaml:"look_gain"`
	MoveSpeed        float32    `yaml:"move_speed"`
	PitchLimit       float32    `yaml:"pitch_limit"` // radians
	CollisionSize    mgl32.Vec3 `yaml:"collision_size,flow"`
	MaxFrameDelta    float32    `yaml:"max_frame_delta"` // seconds
	LookDistance     float32    `yaml:"look_distance"`
	HeadBobAmplitude float32    `yaml:"head_bob_amplitude"`
	HeadBobFrequency float32    `yaml:"head_bob_frequency"`
	Depenetrate      bool       `yaml:"depenetrate"`
}

// Maze selects the layout file. An empty path uses the built-in maze.
type Maze struct {
	Path string `yaml:"path"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Sentry enables error reporting when DSN is set
type Sentry struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
}

// Diagnostics enables the statsview runtime page when StatsviewAddr is set
type Diagnostics struct {
	StatsviewAddr string `yaml:"statsview_addr"`
}

// Default returns the built-in configuration
func Default() Config {
	pc := player.DefaultConfig()
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Go-Maze",
			VSync:  true,
			FOV:    60,
			Near:   1,
			Far:    1000,
		},
		Controller: Controller{
			PhiSpeed:         pc.PhiSpeed,
			ThetaSpeed:       pc.ThetaSpeed,
			LookGain:         pc.LookGain,
			MoveSpeed:        pc.MoveSpeed,
			PitchLimit:       pc.PitchLimit,
			CollisionSize:    pc.CollisionSize,
			MaxFrameDelta:    pc.MaxFrameDelta,
			LookDistance:     pc.LookDistance,
			HeadBobAmplitude: pc.HeadBobAmplitude,
			HeadBobFrequency: pc.HeadBobFrequency,
			Depenetrate:      pc.Depenetrate,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path on top of the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every value is usable
func (c Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, w.Width, w.Height)
	}
	if w.FOV <= 0 || w.FOV >= 180 {
		return fmt.Errorf("%w: fov %v", ErrInvalid, w.FOV)
	}
	if w.Near <= 0 || w.Far <= w.Near {
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, w.Near, w.Far)
	}

	ctl := c.Controller
	if ctl.MoveSpeed < 0 {
		return fmt.Errorf("%w: move_speed %v", ErrInvalid, ctl.MoveSpeed)
	}
	if ctl.PitchLimit <= 0 || ctl.PitchLimit >= mgl32.DegToRad(90) {
		return fmt.Errorf("%w: pitch_limit %v must be in (0, pi/2)", ErrInvalid, ctl.PitchLimit)
	}
	for i := 0; i < 3; i++ {
		if ctl.CollisionSize[i] <= 0 {
			return fmt.Errorf("%w: collision_size %v", ErrInvalid, ctl.CollisionSize)
		}
	}
	if ctl.MaxFrameDelta < 0 {
		return fmt.Errorf("%w: max_frame_delta %v", ErrInvalid, ctl.MaxFrameDelta)
	}
	if ctl.LookDistance <= 0 {
		return fmt.Errorf("%w: look_distance %v", ErrInvalid, ctl.LookDistance)
	}
	if ctl.HeadBobFrequency <= 0 {
		return fmt.Errorf("%w: head_bob_frequency %v", ErrInvalid, ctl.HeadBobFrequency)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// PlayerConfig converts the controller section for the player package
func (c Controller) PlayerConfig() player.Config {
	return player.Config{
		PhiSpeed:         c.PhiSpeed,
		ThetaSpeed:       c.ThetaSpeed,
		LookGain:         c.LookGain,
		MoveSpeed:        c.MoveSpeed,
		PitchLimit:       c.PitchLimit,
		CollisionSize:    c.CollisionSize,
		MaxFrameDelta:    c.MaxFrameDelta,
		LookDistance:     c.LookDistance,
		HeadBobAmplitude: c.HeadBobAmplitude,
		HeadBobFrequency: c.HeadBobFrequency,
		Depenetrate:      c.Depenetrate,
	}
}
