package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-maze/pkg/maze"
)

// per-instance attributes: model matrix columns, color, surface parameters
var instanceLayout = []int32{4, 4, 4, 4, 4, 4}

const instanceStride = 24

// flat boxes such as the floor are drawn with this thickness
const minDrawThickness = 0.02

// Surface patterns understood by the fragment shader
const (
	patternPlain   = 0
	patternChecker = 1
	patternTile    = 2
)

type surface struct {
	color    mgl32.Vec4
	pattern  float32
	tileSize float32
	emissive bool
}

var surfaces = map[string]surface{
	maze.MaterialCheckerboard: {color: mgl32.Vec4{0.85, 0.85, 0.85, 1}, pattern: patternChecker, tileSize: 4},
	maze.MaterialConcrete:     {color: mgl32.Vec4{0.55, 0.55, 0.53, 1}, pattern: patternPlain},
	maze.MaterialTile:         {color: mgl32.Vec4{0.78, 0.7, 0.58, 1}, pattern: patternTile, tileSize: 2},
	maze.MaterialGoal:         {color: mgl32.Vec4{1, 0.9, 0.1, 1}, pattern: patternPlain, emissive: true},
}

// unknown materials render magenta so they stand out
var missingSurface = surface{color: mgl32.Vec4{1, 0, 1, 1}}

func surfaceFor(material string) surface {
	if s, ok := surfaces[material]; ok {
		return s
	}
	return missingSurface
}

// drawSize gives zero-thickness boxes a visible thickness
func drawSize(size mgl32.Vec3) mgl32.Vec3 {
	for i := range size {
		if size[i] < minDrawThickness {
			size[i] = minDrawThickness
		}
	}
	return size
}

// modelMatrix maps the unit cube onto b
func modelMatrix(b maze.Box) mgl32.Mat4 {
	s := drawSize(b.Size)
	return mgl32.Translate3D(b.Center.X(), b.Center.Y(), b.Center.Z()).
		Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

// buildInstances packs boxes into the per-instance buffer layout
func buildInstances(boxes []maze.Box) []float32 {
	data := make([]float32, 0, len(boxes)*instanceStride)
	for _, b := range boxes {
		m := modelMatrix(b)
		s := surfaceFor(b.Material)

		var emissive float32
		if s.emissive {
			emissive = 1
		}

		data = append(data, m[:]...)
		data = append(data, s.color[:]...)
		data = append(data, s.pattern, s.tileSize, emissive, 0)
	}
	return data
}
