// Package player implements the first-person controller: mouse-look orientation,
// WASD translation with collision rejection, head-bob and the win check.
package player

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-maze/pkg/event"
	"github.com/leterax/go-maze/pkg/input"
	"github.com/leterax/go-maze/pkg/world"
)

var (
	worldUp    = mgl32.Vec3{0, 1, 0}
	worldRight = mgl32.Vec3{1, 0, 0}
	forwardDir = mgl32.Vec3{0, 0, -1}
	leftDir    = mgl32.Vec3{-1, 0, 0}
)

// Input is the per-frame input the controller reads
type Input interface {
	IsReady() bool
	Key(k input.Key) bool
	MouseDelta() (dx, dy float32)
}

// Geometry is the static world the controller collides with and looks at
type Geometry interface {
	Collides(bb cube.BBox) bool
	Raycast(origin, dir mgl32.Vec3, maxDist float32) (mgl32.Vec3, bool)
	PushOut(bb cube.BBox) (mgl32.Vec3, bool)
}

// Win describes the moment the player entered the goal
type Win struct {
	Position mgl32.Vec3
	Distance float32
}

// Controller is a first-person camera controller. It owns its orientation and
// position; the geometry is borrowed and never modified.
type Controller struct {
	cfg      Config
	input    Input
	geometry Geometry
	goal     Goal

	width  float32
	height float32

	// Euler angles in radians; theta is clamped to cfg.PitchLimit
	phi      float32
	theta    float32
	rotation mgl32.Quat

	translation mgl32.Vec3

	headBobActive bool
	headBobTimer  float64

	won bool

	pose Pose

	// OnWin fires once per session when the player reaches the goal
	OnWin event.Event[Win]
}

// New creates a controller at spawn. A nil geometry, including a nil *world.World,
// behaves like an empty world.
func New(cfg Config, in Input, geometry Geometry, spawn mgl32.Vec3, goal Goal) *Controller {
	c := &Controller{
		cfg:      cfg,
		input:    in,
		geometry: geometry,
		goal:     goal,
		width:    1,
		height:   1,
	}
	c.Reset(spawn)
	return c
}

// Reset puts the controller back at spawn with a level view and a cleared win flag
func (c *Controller) Reset(spawn mgl32.Vec3) {
	c.phi = 0
	c.theta = 0
	c.rotation = mgl32.QuatIdent()
	c.translation = spawn
	c.headBobActive = false
	c.headBobTimer = 0
	c.won = false
	c.updatePose()
}

// SetViewport sets the viewport size used to normalise mouse deltas.
// Non-positive sizes disable look along that axis.
func (c *Controller) SetViewport(width, height int) {
	c.width = float32(width)
	c.height = float32(height)
}

// Update advances the controller by dt seconds. The input's mouse delta for
// this frame must not have been advanced yet.
func (c *Controller) Update(dt float32) {
	dt = c.clampDelta(dt)

	c.updateRotation()
	c.updateTranslation(dt)
	c.updateHeadBob(dt)
	c.updatePose()
}

func (c *Controller) clampDelta(dt float32) float32 {
	if !(dt > 0) {
		return 0
	}
	if c.cfg.MaxFrameDelta > 0 && dt > c.cfg.MaxFrameDelta {
		return c.cfg.MaxFrameDelta
	}
	return dt
}

func (c *Controller) updateRotation() {
	if c.input != nil && c.input.IsReady() {
		dx, dy := c.input.MouseDelta()

		var xh, yh float32
		if c.width > 0 {
			xh = dx * c.cfg.LookGain / c.width
		}
		if c.height > 0 {
			yh = dy * c.cfg.LookGain / c.height
		}

		if phi := c.phi - xh*c.cfg.PhiSpeed; !math32.IsNaN(phi) {
			c.phi = phi
		}
		if theta := c.theta - yh*c.cfg.ThetaSpeed; !math32.IsNaN(theta) {
			c.theta = mgl32.Clamp(theta, -c.cfg.PitchLimit, c.cfg.PitchLimit)
		}
	}

	yaw := mgl32.QuatRotate(c.phi, worldUp)
	pitch := mgl32.QuatRotate(c.theta, worldRight)
	c.rotation = yaw.Mul(pitch)
}

func (c *Controller) updateTranslation(dt float32) {
	var forwardVelocity, strafeVelocity float32
	if c.input != nil {
		forwardVelocity = axis(c.input.Key(input.KeyW), c.input.Key(input.KeyS))
		strafeVelocity = axis(c.input.Key(input.KeyA), c.input.Key(input.KeyD))
	}

	if c.cfg.Depenetrate {
		c.depenetrate()
	}

	// yaw only, so walking never changes height
	yaw := mgl32.QuatRotate(c.phi, worldUp)
	forward := yaw.Rotate(forwardDir).Mul(forwardVelocity * dt * c.cfg.MoveSpeed)
	left := yaw.Rotate(leftDir).Mul(strafeVelocity * dt * c.cfg.MoveSpeed)

	candidate := c.translation.Add(forward).Add(left)
	if !c.Collides(candidate) {
		c.translation = candidate
	}

	if forwardVelocity != 0 || strafeVelocity != 0 {
		c.headBobActive = true
	}

	c.checkGoal()
}

// Collides reports whether the player's collision box at position overlaps the world
func (c *Controller) Collides(position mgl32.Vec3) bool {
	if c.geometry == nil {
		return false
	}
	return c.geometry.Collides(c.collisionBox(position))
}

func (c *Controller) collisionBox(position mgl32.Vec3) cube.BBox {
	size := c.cfg.CollisionSize
	return world.BoxAround(position.Add(mgl32.Vec3{0, size.Y() / 2, 0}), size)
}

func (c *Controller) depenetrate() {
	if !c.Collides(c.translation) {
		return
	}
	if push, ok := c.geometry.PushOut(c.collisionBox(c.translation)); ok {
		c.translation = c.translation.Add(push)
	}
}

func (c *Controller) checkGoal() {
	if c.won || !c.goal.Contains(c.translation) {
		return
	}
	c.won = true
	c.OnWin.Invoke(Win{
		Position: c.translation,
		Distance: c.translation.Sub(c.goal.Center).Len(),
	})
}

// updateHeadBob advances the bob timer towards the next zero crossing of the
// bob wave and stops there, so the camera rests level and resumes from the
// same phase when movement starts again.
func (c *Controller) updateHeadBob(dt float32) {
	if !c.headBobActive || c.cfg.HeadBobFrequency <= 0 {
		return
	}

	freq := float64(c.cfg.HeadBobFrequency)
	nextStep := 1 + math.Floor((c.headBobTimer+1e-6)*freq/math.Pi)
	nextStepTime := nextStep * math.Pi / freq

	c.headBobTimer = math.Min(c.headBobTimer+float64(dt), nextStepTime)
	if c.headBobTimer == nextStepTime {
		c.headBobActive = false
	}
}

func (c *Controller) updatePose() {
	eye := c.translation.Add(mgl32.Vec3{0, c.HeadBobOffset(), 0})
	forward := c.rotation.Rotate(forwardDir)

	target := c.translation.Add(forward.Mul(c.cfg.LookDistance))
	if c.geometry != nil {
		if hit, ok := c.geometry.Raycast(c.translation, forward, c.cfg.LookDistance); ok {
			target = hit
		}
	}
	if target.Sub(eye).LenSqr() < 1e-6 {
		target = eye.Add(forward)
	}

	c.pose = Pose{
		Eye:      eye,
		Target:   target,
		Up:       worldUp,
		Rotation: c.rotation,
	}
}

// Pose returns the camera pose computed by the last Update
func (c *Controller) Pose() Pose {
	return c.pose
}

// Position returns the collision-relevant position (no head-bob)
func (c *Controller) Position() mgl32.Vec3 {
	return c.translation
}

// Orientation returns yaw (phi) and pitch (theta) in radians
func (c *Controller) Orientation() (phi, theta float32) {
	return c.phi, c.theta
}

// Rotation returns the orientation quaternion
func (c *Controller) Rotation() mgl32.Quat {
	return c.rotation
}

// HeadBob returns the bob timer and whether a step is in progress
func (c *Controller) HeadBob() (timer float64, active bool) {
	return c.headBobTimer, c.headBobActive
}

// HeadBobOffset returns the current vertical camera offset
func (c *Controller) HeadBobOffset() float32 {
	return float32(math.Sin(c.headBobTimer*float64(c.cfg.HeadBobFrequency))) * c.cfg.HeadBobAmplitude
}

// HasWon reports whether the goal was reached since the last Reset
func (c *Controller) HasWon() bool {
	return c.won
}

// Config returns the controller's tuning
func (c *Controller) Config() Config {
	return c.cfg
}

func axis(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
