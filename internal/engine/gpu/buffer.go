// Package gpu wraps OpenGL buffer and vertex array objects.
package gpu

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// BytesPerFloat is the size of a float32 in a vertex buffer.
const BytesPerFloat = 4

// ErrNoBuffer is returned when the driver hands back a zero buffer name.
var ErrNoBuffer = errors.New("could not create a new buffer object")

// VertexBuffer is an array buffer of float32 vertex data.
type VertexBuffer struct {
	id uint32
}

// NewVertexBuffer uploads data into a new array buffer. usage is
// gl.STATIC_DRAW for fixed meshes or gl.DYNAMIC_DRAW for buffers updated per frame.
func NewVertexBuffer(data []float32, usage uint32) (*VertexBuffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return nil, ErrNoBuffer
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*BytesPerFloat, glPtr(data), usage)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return &VertexBuffer{id: id}, nil
}

// SetVertexAttribPointer binds the buffer and points attribute location at
// components floats starting at dataOffset, repeating every stride floats.
func (b *VertexBuffer) SetVertexAttribPointer(dataOffset int, location uint32, components int32, stride int32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.VertexAttribPointerWithOffset(location, components, gl.FLOAT, false,
		stride*BytesPerFloat, uintptr(dataOffset*BytesPerFloat))
	gl.EnableVertexAttribArray(location)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Update replaces part of the buffer starting at offset (in floats).
func (b *VertexBuffer) Update(offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset*BytesPerFloat, len(data)*BytesPerFloat, glPtr(data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Delete releases the buffer.
func (b *VertexBuffer) Delete() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

// IndexBuffer is an element array buffer of uint8 or uint16 indices.
type IndexBuffer struct {
	id        uint32
	count     int32
	indexType uint32
}

// NewIndexBuffer16 uploads 16-bit indices.
func NewIndexBuffer16(indices []uint16) (*IndexBuffer, error) {
	var ptr unsafe.Pointer
	if len(indices) > 0 {
		ptr = unsafe.Pointer(&indices[0])
	}
	return newIndexBuffer(ptr, len(indices), 2, gl.UNSIGNED_SHORT)
}

// NewIndexBuffer8 uploads 8-bit indices.
func NewIndexBuffer8(indices []uint8) (*IndexBuffer, error) {
	var ptr unsafe.Pointer
	if len(indices) > 0 {
		ptr = unsafe.Pointer(&indices[0])
	}
	return newIndexBuffer(ptr, len(indices), 1, gl.UNSIGNED_BYTE)
}

func newIndexBuffer(ptr unsafe.Pointer, count, size int, indexType uint32) (*IndexBuffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return nil, ErrNoBuffer
	}

	// The element binding is VAO state, so leave it bound for the caller's VAO.
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, count*size, ptr, gl.STATIC_DRAW)

	return &IndexBuffer{id: id, count: int32(count), indexType: indexType}, nil
}

// Bind binds the buffer as the current element array.
func (b *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
}

// Count returns the number of indices.
func (b *IndexBuffer) Count() int32 {
	return b.count
}

// Type returns the GL index type (gl.UNSIGNED_BYTE or gl.UNSIGNED_SHORT).
func (b *IndexBuffer) Type() uint32 {
	return b.indexType
}

// DrawTriangles draws every index as a triangle list.
func (b *IndexBuffer) DrawTriangles() {
	b.Bind()
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.count, b.indexType, 0)
}

// Delete releases the buffer.
func (b *IndexBuffer) Delete() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

// VertexArray records attribute and element bindings.
type VertexArray struct {
	id uint32
}

// NewVertexArray creates and binds a new vertex array.
func NewVertexArray() (*VertexArray, error) {
	var id uint32
	gl.GenVertexArrays(1, &id)
	if id == 0 {
		return nil, errors.New("could not create a new vertex array")
	}
	gl.BindVertexArray(id)
	return &VertexArray{id: id}, nil
}

// Bind makes the vertex array current.
func (v *VertexArray) Bind() {
	gl.BindVertexArray(v.id)
}

// Unbind clears the current vertex array.
func (v *VertexArray) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array.
func (v *VertexArray) Delete() {
	if v.id != 0 {
		gl.DeleteVertexArrays(1, &v.id)
		v.id = 0
	}
}

func glPtr(data []float32) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}
