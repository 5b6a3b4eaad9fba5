package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-maze/pkg/player"
)

// Camera turns a player pose into view and projection matrices
type Camera struct {
	fov  float32 // vertical, degrees
	near float32
	far  float32

	width  int
	height int

	projection mgl32.Mat4
	view       mgl32.Mat4
	position   mgl32.Vec3
}

// NewCamera creates a perspective camera for a viewport of the given size
func NewCamera(fov, near, far float32, width, height int) *Camera {
	c := &Camera{
		fov:  fov,
		near: near,
		far:  far,
		view: mgl32.Ident4(),
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio
func (c *Camera) SetViewport(width, height int) {
	c.width = width
	c.height = height
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.Aspect(), c.near, c.far)
}

// Aspect returns width / height, or 1 for a minimised window
func (c *Camera) Aspect() float32 {
	if c.width <= 0 || c.height <= 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// SetPose moves the camera to the player's eye
func (c *Camera) SetPose(p player.Pose) {
	c.view = p.View()
	c.position = p.Eye
}

// ViewMatrix returns the view matrix of the last pose
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.view
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the eye position of the last pose
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}
