package player

import "github.com/go-gl/mathgl/mgl32"

// Pose is the camera transform handed to the renderer.
// Eye includes the head-bob offset; Target is where the camera looks.
type Pose struct {
	Eye      mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Rotation mgl32.Quat
}

// View returns the view matrix for the pose
func (p Pose) View() mgl32.Mat4 {
	return mgl32.LookAtV(p.Eye, p.Target, p.Up)
}

// Forward returns the unit look direction of the orientation quaternion
func (p Pose) Forward() mgl32.Vec3 {
	return p.Rotation.Rotate(forwardDir)
}
