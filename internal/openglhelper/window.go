package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// WindowOptions configures NewWindow
type WindowOptions struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	log        logrus.FieldLogger

	// window size in screen coordinates, which is what cursor positions use
	width  int
	height int

	// framebuffer size in pixels, which is what the GL viewport uses
	fbWidth  int
	fbHeight int

	title         string
	mouseCaptured bool
}

// NewWindow creates a GLFW window with a 4.6 core context and makes it current.
// It must be called from the main OS thread.
func NewWindow(opts WindowOptions, log logrus.FieldLogger) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	glfwWindow, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfwWindow.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	w := &Window{
		glfwWindow: glfwWindow,
		log:        log,
		title:      opts.Title,
	}
	w.width, w.height = glfwWindow.GetSize()
	w.fbWidth, w.fbHeight = glfwWindow.GetFramebufferSize()

	sx, sy := glfwWindow.GetContentScale()
	log.WithFields(logrus.Fields{
		"version":     gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer":    gl.GoStr(gl.GetString(gl.RENDERER)),
		"framebuffer": fmt.Sprintf("%dx%d", w.fbWidth, w.fbHeight),
		"scale":       fmt.Sprintf("%.2fx%.2f", sx, sy),
	}).Info("OpenGL context created")

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.Viewport(0, 0, int32(w.fbWidth), int32(w.fbHeight))

	return w, nil
}

// Clear clears the color and depth buffers
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetDepthTest toggles depth testing, e.g. around screen-space overlays
func (w *Window) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Time returns seconds since GLFW was initialised
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

func (w *Window) SetShouldClose(close bool) {
	w.glfwWindow.SetShouldClose(close)
}

// Close destroys the window and releases GLFW
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the window size in screen coordinates
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// FramebufferSize returns the framebuffer size in pixels
func (w *Window) FramebufferSize() (width, height int) {
	return w.fbWidth, w.fbHeight
}

// ContentScale returns the ratio between framebuffer pixels and screen coordinates
func (w *Window) ContentScale() (x, y float32) {
	return w.glfwWindow.GetContentScale()
}

// Title returns the current window title
func (w *Window) Title() string {
	return w.title
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	w.title = title
	w.glfwWindow.SetTitle(title)
}

// CursorPos returns the cursor position in screen coordinates
func (w *Window) CursorPos() (x, y float64) {
	return w.glfwWindow.GetCursorPos()
}

// OnResize records a new window size
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
}

// OnFramebufferResize records a new framebuffer size and updates the viewport
func (w *Window) OnFramebufferResize(width, height int) {
	w.fbWidth = width
	w.fbHeight = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// GLFWWindow returns the underlying GLFW window
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}

// SetMouseCaptured hides and locks the cursor, or releases it
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			w.glfwWindow.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// ToggleMouseCaptured toggles the mouse capture state
func (w *Window) ToggleMouseCaptured() {
	w.SetMouseCaptured(!w.mouseCaptured)
}

// IsMouseCaptured returns whether the mouse is currently captured
func (w *Window) IsMouseCaptured() bool {
	return w.mouseCaptured
}
