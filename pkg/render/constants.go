package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Keys handled by the window itself; everything else goes to the game
const (
	KeyQuit        = glfw.KeyEscape
	KeyCapture     = glfw.KeyC
	KeyAcknowledge = glfw.KeyEnter
)

// Projection defaults
const (
	DefaultFOV  = 60.0 // degrees, vertical
	DefaultNear = 1.0
	DefaultFar  = 1000.0
)

// Scene lighting
var (
	clearColor  = mgl32.Vec4{0.53, 0.68, 0.85, 1}
	skyColor    = mgl32.Vec3{1, 1, 1}
	groundColor = mgl32.Vec3{0.25, 0.23, 0.2}
	lightDir    = mgl32.Vec3{-0.6, -1, -0.4}
	fogDensity  = float32(0.004)
)

// how often frame statistics are logged, in seconds
const statsInterval = 5.0
