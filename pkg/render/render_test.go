package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-maze/pkg/input"
	"github.com/leterax/go-maze/pkg/maze"
	"github.com/leterax/go-maze/pkg/player"
)

func TestCameraAspect(t *testing.T) {
	c := NewCamera(DefaultFOV, DefaultNear, DefaultFar, 800, 600)
	assert.InDelta(t, 800.0/600.0, c.Aspect(), 1e-6)

	c.SetViewport(0, 0)
	assert.Equal(t, float32(1), c.Aspect())
	for _, v := range c.ProjectionMatrix() {
		assert.False(t, math32.IsNaN(v), "projection must not contain NaN")
	}
}

func TestCameraSetPose(t *testing.T) {
	c := NewCamera(DefaultFOV, DefaultNear, DefaultFar, 800, 600)
	pose := player.Pose{
		Eye:      mgl32.Vec3{1, 2, 3},
		Target:   mgl32.Vec3{1, 2, -10},
		Up:       mgl32.Vec3{0, 1, 0},
		Rotation: mgl32.QuatIdent(),
	}
	c.SetPose(pose)

	assert.Equal(t, pose.Eye, c.Position())
	assert.Equal(t, pose.View(), c.ViewMatrix())
}

func TestModelMatrixMapsUnitCube(t *testing.T) {
	b := maze.Box{Center: mgl32.Vec3{10, 5, -3}, Size: mgl32.Vec3{2, 10, 4}}
	m := modelMatrix(b)

	corner := m.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3()
	assert.True(t, corner.ApproxEqual(mgl32.Vec3{11, 10, -1}), "got %v", corner)

	center := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.True(t, center.ApproxEqual(b.Center))
}

func TestDrawSizeThickensFlatBoxes(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{100, minDrawThickness, 100}, drawSize(mgl32.Vec3{100, 0, 100}))
	assert.Equal(t, mgl32.Vec3{2, 10, 2}, drawSize(mgl32.Vec3{2, 10, 2}))
}

func TestBuildInstances(t *testing.T) {
	l := maze.Default()
	boxes := l.Drawables()
	data := buildInstances(boxes)
	require.Len(t, data, len(boxes)*instanceStride)

	var stride int32
	for _, n := range instanceLayout {
		stride += n
	}
	assert.Equal(t, int32(instanceStride), stride)

	// last instance is the goal marker: emissive, goal color
	last := data[len(data)-instanceStride:]
	goal := surfaces[maze.MaterialGoal].color
	assert.Equal(t, goal[:], last[16:20])
	assert.Equal(t, float32(1), last[22])

	// first instance is the checkerboard floor
	assert.Equal(t, float32(patternChecker), data[20])
}

func TestUnknownMaterial(t *testing.T) {
	assert.Equal(t, missingSurface, surfaceFor("lava"))
	assert.Equal(t, surfaces[maze.MaterialConcrete], surfaceFor(maze.MaterialConcrete))
}

func TestButtonEvent(t *testing.T) {
	cases := []struct {
		button glfw.MouseButton
		want   input.Button
	}{
		{glfw.MouseButtonLeft, input.ButtonLeft},
		{glfw.MouseButtonMiddle, input.ButtonMiddle},
		{glfw.MouseButtonRight, input.ButtonRight},
	}
	for _, tc := range cases {
		e, ok := buttonEvent(tc.button, glfw.Press, 10, 20)
		require.True(t, ok)
		assert.Equal(t, input.Press(tc.want, 10, 20), e)

		e, ok = buttonEvent(tc.button, glfw.Release, 10, 20)
		require.True(t, ok)
		assert.Equal(t, input.Release(tc.want, 10, 20), e)
	}

	_, ok := buttonEvent(glfw.MouseButton4, glfw.Press, 0, 0)
	assert.False(t, ok)
}

func TestKeyEvent(t *testing.T) {
	e, ok := keyEvent(glfw.KeyW, glfw.Press)
	require.True(t, ok)
	assert.Equal(t, input.KeyPress(input.KeyW), e)

	e, ok = keyEvent(glfw.KeyD, glfw.Release)
	require.True(t, ok)
	assert.Equal(t, input.KeyRelease(input.KeyD), e)

	_, ok = keyEvent(glfw.KeyA, glfw.Repeat)
	assert.False(t, ok)
	_, ok = keyEvent(glfw.KeyUnknown, glfw.Press)
	assert.False(t, ok)
}

func TestCursorEvent(t *testing.T) {
	assert.Equal(t, input.MoveTo(1.5, 2.5), cursorEvent(1.5, 2.5))
}

func TestCrosshairGeometry(t *testing.T) {
	vertices, indices := crosshairGeometry()
	require.Len(t, vertices, 8*8)
	require.Len(t, indices, 12)

	for i := 0; i < len(vertices); i += 8 {
		x, y, z := vertices[i], vertices[i+1], vertices[i+2]
		assert.Equal(t, float32(0), z)
		assert.LessOrEqual(t, math32.Abs(x), float32(1))
		assert.LessOrEqual(t, math32.Abs(y), float32(1))
	}

	// every triangle faces the viewer
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i]*8, indices[i+1]*8, indices[i+2]*8
		ab := mgl32.Vec3{vertices[b] - vertices[a], vertices[b+1] - vertices[a+1], 0}
		ac := mgl32.Vec3{vertices[c] - vertices[a], vertices[c+1] - vertices[a+1], 0}
		assert.Greater(t, ab.Cross(ac).Z(), float32(0), "triangle %d", i/3)
	}
}

func TestOverlayProjection(t *testing.T) {
	p := overlayProjection(800, 600, 10)

	// one crosshair unit is ten pixels from the viewport centre
	right := p.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 2*10.0/800.0, right.X(), 1e-6)
	up := p.Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	assert.InDelta(t, 2*10.0/600.0, up.Y(), 1e-6)

	centre := p.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, centre.X(), 1e-6)
	assert.InDelta(t, 0, centre.Y(), 1e-6)

	assert.Equal(t, mgl32.Ident4(), overlayProjection(0, 600, 10))
}

func TestPlayingTitleShowsObjective(t *testing.T) {
	title := playingTitle("Go-Maze")
	assert.Contains(t, title, "Go-Maze")
	assert.Contains(t, title, "yellow box")
	assert.Contains(t, title, "WASD")
}
