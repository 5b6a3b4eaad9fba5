// Package openglhelper provides utilities for working with OpenGL buffers and other resources.
// It wraps the low-level OpenGL functions in a more Go-friendly API.
package openglhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

const (
	floatSize = 4
	indexSize = 4
)

// BufferObject represents an OpenGL buffer object (VBO, EBO, ...)
type BufferObject struct {
	ID    uint32
	Type  uint32 // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER, ...
	Size  int    // Size of the buffer in bytes
	Usage uint32
}

// BufferUsage is the usage hint passed to glBufferData
type BufferUsage uint32

const (
	// StaticDraw is for data uploaded once and drawn many times
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// DynamicDraw is for data that changes now and then
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
	// StreamDraw is for data replaced every frame
	StreamDraw BufferUsage = gl.STREAM_DRAW
)

// VertexArrayObject stores vertex attribute configuration
type VertexArrayObject struct {
	ID uint32
}

// NewBufferObject creates a buffer of the given type and uploads data, which may be nil
func NewBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) *BufferObject {
	var bufferID uint32
	gl.GenBuffers(1, &bufferID)

	buffer := &BufferObject{
		ID:    bufferID,
		Type:  bufferType,
		Size:  sizeInBytes,
		Usage: uint32(usage),
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, uint32(usage))

	return buffer
}

// NewVBO creates an array buffer holding vertices
func NewVBO(vertices []float32, usage BufferUsage) *BufferObject {
	return NewBufferObject(gl.ARRAY_BUFFER, len(vertices)*floatSize, floatPtr(vertices), usage)
}

// NewEBO creates an element buffer holding 32-bit indices
func NewEBO(indices []uint32, usage BufferUsage) *BufferObject {
	var ptr unsafe.Pointer
	if len(indices) > 0 {
		ptr = gl.Ptr(indices)
	}
	return NewBufferObject(gl.ELEMENT_ARRAY_BUFFER, len(indices)*indexSize, ptr, usage)
}

func floatPtr(data []float32) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// Bind binds the buffer object to its type target
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind unbinds the buffer object from its type target
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// SetFloats replaces the buffer contents, reallocating when data no longer fits
func (bo *BufferObject) SetFloats(data []float32) {
	bo.Bind()
	size := len(data) * floatSize
	if size > bo.Size {
		gl.BufferData(bo.Type, size, floatPtr(data), bo.Usage)
		bo.Size = size
		return
	}
	if size > 0 {
		gl.BufferSubData(bo.Type, 0, size, floatPtr(data))
	}
}

// Delete releases the buffer object
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// NewVAO creates a new Vertex Array Object
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)

	return &VertexArrayObject{
		ID: vaoID,
	}
}

func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}

// SetVertexAttribPointer sets up a float vertex attribute on the bound array buffer and enables it
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}

// SetInstanced makes attribute index advance once per instance instead of once per vertex
func (vao *VertexArrayObject) SetInstanced(index uint32) {
	gl.VertexAttribDivisor(index, 1)
}
