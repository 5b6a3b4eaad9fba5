package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-maze/internal/openglhelper"
)

// Crosshair geometry in crosshair units: arms reach 1 unit from the centre
const crosshairHalfThickness = 0.12

// crosshairPixels is the arm length in framebuffer pixels at a content scale of 1
const crosshairPixels = 10

var crosshairColor = mgl32.Vec4{1, 1, 1, 0.9}

// crosshairGeometry returns two crossing quads centred on the origin in the
// z=0 plane, counter-clockwise when viewed from +Z
func crosshairGeometry() ([]float32, []uint32) {
	const t = crosshairHalfThickness
	quads := [2][4]float32{
		{-1, -t, 1, t}, // horizontal
		{-t, -1, t, 1}, // vertical
	}

	vertices := make([]float32, 0, 8*8)
	indices := make([]uint32, 0, 12)
	for i, q := range quads {
		x0, y0, x1, y1 := q[0], q[1], q[2], q[3]
		for _, p := range [4][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}} {
			vertices = append(vertices,
				p[0], p[1], 0,
				0, 0, 1,
				(p[0]+1)/2, (p[1]+1)/2,
			)
		}
		base := uint32(i * 4)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return vertices, indices
}

func newCrosshair() *openglhelper.Mesh {
	return openglhelper.NewMesh(crosshairGeometry())
}

// overlayProjection maps crosshair units to clip space so that one unit is
// pixels framebuffer pixels, centred on the viewport
func overlayProjection(width, height int, pixels float32) mgl32.Mat4 {
	if width <= 0 || height <= 0 || pixels <= 0 {
		return mgl32.Ident4()
	}
	halfW := float32(width) / 2 / pixels
	halfH := float32(height) / 2 / pixels
	return mgl32.Ortho(-halfW, halfW, -halfH, halfH, -1, 1)
}
