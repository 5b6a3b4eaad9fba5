package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Vertex attribute locations used by NewMesh
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTexCoord = 2

	// AttribInstance is the first location used by per-instance data
	AttribInstance = 3
)

// floats per vertex: position (3), normal (3), texture coordinates (2)
const vertexStride = 8

// Mesh is an indexed triangle mesh, optionally drawn instanced
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32

	instances     *BufferObject
	instanceCount int32
}

// NewMesh uploads interleaved vertices and indices
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	vao.SetVertexAttribPointer(AttribPosition, 3, gl.FLOAT, false, vertexStride*floatSize, 0)
	vao.SetVertexAttribPointer(AttribNormal, 3, gl.FLOAT, false, vertexStride*floatSize, 3*floatSize)
	vao.SetVertexAttribPointer(AttribTexCoord, 2, gl.FLOAT, false, vertexStride*floatSize, 6*floatSize)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// SetInstances uploads per-instance data. layout lists the component count of
// each attribute (at most 4 each), bound to consecutive locations from
// AttribInstance; a mat4 is four attributes of 4.
func (m *Mesh) SetInstances(data []float32, layout []int32) {
	var stride int32
	for _, n := range layout {
		stride += n
	}
	if stride == 0 {
		m.instanceCount = 0
		return
	}

	m.vao.Bind()
	if m.instances == nil {
		m.instances = NewVBO(data, DynamicDraw)

		offset := 0
		for i, n := range layout {
			loc := uint32(AttribInstance + i)
			m.vao.SetVertexAttribPointer(loc, n, gl.FLOAT, false, stride*floatSize, offset*floatSize)
			m.vao.SetInstanced(loc)
			offset += int(n)
		}
	} else {
		m.instances.SetFloats(data)
	}
	m.vao.Unbind()

	m.instanceCount = int32(len(data)) / stride
}

// InstanceCount returns the number of instances Draw renders
func (m *Mesh) InstanceCount() int {
	return int(m.instanceCount)
}

// Draw renders the mesh once per instance, or once if no instances were set.
// The caller binds the shader.
func (m *Mesh) Draw() {
	m.vao.Bind()
	if m.instances != nil {
		gl.DrawElementsInstanced(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil, m.instanceCount)
	} else {
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	}
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
	if m.instances != nil {
		m.instances.Delete()
	}
}

// NewCube creates a unit cube centred on the origin with outward normals and
// counter-clockwise front faces
func NewCube() *Mesh {
	vertices := []float32{
		// Front face (+Z)
		-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
		0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,

		// Back face (-Z)
		-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
		-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
		0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
		0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,

		// Top face (+Y)
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
		0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,

		// Bottom face (-Y)
		-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
		0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
		0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 1.0,

		// Right face (+X)
		0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,

		// Left face (-X)
		-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
		-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
		-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
		-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	}

	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return NewMesh(vertices, indices)
}
