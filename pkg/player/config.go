package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Controller tuning defaults
const (
	DefaultPhiSpeed         = 8.0
	DefaultThetaSpeed       = 5.0
	DefaultLookGain         = 3.0
	DefaultMoveSpeed        = 10.0
	DefaultMaxFrameDelta    = 0.1
	DefaultLookDistance     = 100.0
	DefaultHeadBobAmplitude = 1.5
	DefaultHeadBobFrequency = 10.0
)

// DefaultPitchLimit keeps the view from flipping past straight up or down
const DefaultPitchLimit = math32.Pi / 3

// DefaultCollisionSize is the player's collision box (width, height, depth)
var DefaultCollisionSize = mgl32.Vec3{3, 2, 3}

// Config holds the controller's tuning values
type Config struct {
	// PhiSpeed and ThetaSpeed scale yaw and pitch per unit of normalised mouse movement
	PhiSpeed   float32
	ThetaSpeed float32
	// LookGain converts a pixel delta into normalised mouse movement: delta * gain / viewport size
	LookGain float32

	MoveSpeed  float32
	PitchLimit float32

	CollisionSize mgl32.Vec3

	// MaxFrameDelta caps a single step, in seconds, so a stalled frame cannot
	// carry the player through a wall. Zero disables the cap.
	MaxFrameDelta float32

	LookDistance float32

	HeadBobAmplitude float32
	HeadBobFrequency float32

	// Depenetrate pushes the player out of geometry it already overlaps before moving
	Depenetrate bool
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		PhiSpeed:         DefaultPhiSpeed,
		ThetaSpeed:       DefaultThetaSpeed,
		LookGain:         DefaultLookGain,
		MoveSpeed:        DefaultMoveSpeed,
		PitchLimit:       DefaultPitchLimit,
		CollisionSize:    DefaultCollisionSize,
		MaxFrameDelta:    DefaultMaxFrameDelta,
		LookDistance:     DefaultLookDistance,
		HeadBobAmplitude: DefaultHeadBobAmplitude,
		HeadBobFrequency: DefaultHeadBobFrequency,
		Depenetrate:      true,
	}
}

// Goal is the spherical win zone
type Goal struct {
	Center mgl32.Vec3
	Radius float32
}

// Contains reports whether p lies within the goal radius
func (g Goal) Contains(p mgl32.Vec3) bool {
	return p.Sub(g.Center).Len() <= g.Radius
}
