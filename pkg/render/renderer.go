package render

import (
	"embed"
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/leterax/go-maze/internal/config"
	"github.com/leterax/go-maze/internal/openglhelper"
	"github.com/leterax/go-maze/pkg/input"
	"github.com/leterax/go-maze/pkg/maze"
	"github.com/leterax/go-maze/pkg/player"
	"github.com/leterax/go-maze/pkg/session"
)

//go:embed shaders/*.glsl
var shaderFS embed.FS

// FrameSource is advanced once per rendered frame
type FrameSource interface {
	Step(dt float32) player.Pose
	Acknowledge() bool
	Resize(width, height int)
	Input() *input.Sampler
}

// Renderer owns the window and draws the maze from the pose a FrameSource returns
type Renderer struct {
	window *openglhelper.Window
	camera *Camera
	log    logrus.FieldLogger

	boxShader *openglhelper.Shader
	cube      *openglhelper.Mesh

	crosshairShader *openglhelper.Shader
	crosshair       *openglhelper.Mesh
	overlay         mgl32.Mat4

	title  string
	frames FrameSource
	won    bool

	// Timing
	lastFrameTime float64
	statsTime     float64
	statsFrames   int
}

// NewRenderer creates the window, compiles the box shader and registers the
// GLFW callbacks. It must run on the main OS thread.
func NewRenderer(cfg config.Window, log logrus.FieldLogger) (*Renderer, error) {
	window, err := openglhelper.NewWindow(openglhelper.WindowOptions{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  cfg.Title,
		VSync:  cfg.VSync,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	shader, err := openglhelper.LoadShaderFS(shaderFS, "shaders/box.vert.glsl", "shaders/box.frag.glsl")
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	crosshairShader, err := openglhelper.LoadShaderFS(shaderFS, "shaders/crosshair.vert.glsl", "shaders/crosshair.frag.glsl")
	if err != nil {
		shader.Delete()
		window.Close()
		return nil, fmt.Errorf("failed to load crosshair shader: %w", err)
	}

	fov, near, far := cfg.FOV, cfg.Near, cfg.Far
	if fov <= 0 {
		fov = DefaultFOV
	}
	if near <= 0 || far <= near {
		near, far = DefaultNear, DefaultFar
	}
	fbWidth, fbHeight := window.FramebufferSize()

	r := &Renderer{
		window:    window,
		camera:    NewCamera(fov, near, far, fbWidth, fbHeight),
		log:       log,
		boxShader: shader,
		cube:      openglhelper.NewCube(),
		title:     cfg.Title,

		crosshairShader: crosshairShader,
		crosshair:       newCrosshair(),
	}
	r.updateOverlay(fbWidth, fbHeight)
	window.SetTitle(playingTitle(cfg.Title))

	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(r.keyCallback)
	glfwWindow.SetCursorPosCallback(r.cursorPosCallback)
	glfwWindow.SetMouseButtonCallback(r.mouseButtonCallback)
	glfwWindow.SetSizeCallback(r.sizeCallback)
	glfwWindow.SetFramebufferSizeCallback(r.framebufferSizeCallback)

	window.SetMouseCaptured(true)

	return r, nil
}

// playingTitle is the window title while a session is in progress
func playingTitle(title string) string {
	return fmt.Sprintf("%s - Find the yellow box to win! WASD to move, mouse to look", title)
}

// SetScene uploads the layout's boxes as cube instances
func (r *Renderer) SetScene(layout *maze.Layout) {
	boxes := layout.Drawables()
	r.cube.SetInstances(buildInstances(boxes), instanceLayout)
	r.log.WithFields(logrus.Fields{
		"maze":      layout.Name,
		"instances": r.cube.InstanceCount(),
	}).Debug("Scene uploaded")
}

// NotifyWin shows the win in the title bar until the player acknowledges it
func (r *Renderer) NotifyWin(n session.Notice) {
	r.won = true
	r.window.SetTitle(fmt.Sprintf("%s - You won in %s! Press Enter to play again",
		r.title, n.Elapsed.Round(10*time.Millisecond)))
}

// Run renders frames until the window is closed, then releases all resources
func (r *Renderer) Run(frames FrameSource) {
	r.frames = frames
	defer r.Cleanup()

	frames.Resize(r.window.Size())

	r.lastFrameTime = r.window.Time()
	r.statsTime = r.lastFrameTime

	for !r.window.ShouldClose() {
		r.window.PollEvents()

		currentTime := r.window.Time()
		dt := float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		pose := frames.Step(dt)
		r.render(pose)
		r.window.SwapBuffers()

		r.recordFrame(currentTime)
	}
}

// render draws all boxes from the given pose
func (r *Renderer) render(pose player.Pose) {
	r.window.Clear(clearColor)
	r.camera.SetPose(pose)

	r.boxShader.Use()
	r.boxShader.SetMat4("view", r.camera.ViewMatrix())
	r.boxShader.SetMat4("projection", r.camera.ProjectionMatrix())
	r.boxShader.SetVec3("viewPos", r.camera.Position())
	r.boxShader.SetVec3("lightDir", lightDir)
	r.boxShader.SetVec3("skyColor", skyColor)
	r.boxShader.SetVec3("groundColor", groundColor)
	r.boxShader.SetVec3("fogColor", clearColor.Vec3())
	r.boxShader.SetFloat("fogDensity", fogDensity)

	r.cube.Draw()

	r.window.SetDepthTest(false)
	r.crosshairShader.Use()
	r.crosshairShader.SetMat4("projection", r.overlay)
	r.crosshairShader.SetVec4("color", crosshairColor)
	r.crosshair.Draw()
	r.window.SetDepthTest(true)
}

func (r *Renderer) updateOverlay(width, height int) {
	scale, _ := r.window.ContentScale()
	if scale <= 0 {
		scale = 1
	}
	r.overlay = overlayProjection(width, height, crosshairPixels*scale)
}

func (r *Renderer) recordFrame(now float64) {
	r.statsFrames++
	if elapsed := now - r.statsTime; elapsed >= statsInterval {
		r.log.WithField("fps", fmt.Sprintf("%.1f", float64(r.statsFrames)/elapsed)).Debug("Frame stats")
		r.statsFrames = 0
		r.statsTime = now
	}
}

// Cleanup frees all GL resources and closes the window
func (r *Renderer) Cleanup() {
	if r.cube != nil {
		r.cube.Delete()
		r.cube = nil
	}
	if r.boxShader != nil {
		r.boxShader.Delete()
		r.boxShader = nil
	}
	if r.crosshair != nil {
		r.crosshair.Delete()
		r.crosshair = nil
	}
	if r.crosshairShader != nil {
		r.crosshairShader.Delete()
		r.crosshairShader = nil
	}
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Press {
		switch key {
		case KeyQuit:
			r.window.SetShouldClose(true)
			return
		case KeyCapture:
			r.window.ToggleMouseCaptured()
			return
		case KeyAcknowledge:
			if r.won && r.frames != nil && r.frames.Acknowledge() {
				r.won = false
				r.window.SetTitle(playingTitle(r.title))
			}
			return
		}
	}

	if r.frames == nil {
		return
	}
	if e, ok := keyEvent(key, action); ok {
		r.frames.Input().Push(e)
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if r.frames == nil {
		return
	}
	r.frames.Input().Push(cursorEvent(xpos, ypos))
}

func (r *Renderer) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if r.frames == nil {
		return
	}
	x, y := r.window.CursorPos()
	if e, ok := buttonEvent(button, action, x, y); ok {
		r.frames.Input().Push(e)
	}
}

func (r *Renderer) sizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	if r.frames != nil {
		r.frames.Resize(width, height)
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnFramebufferResize(width, height)
	r.camera.SetViewport(width, height)
	r.updateOverlay(width, height)
}
