package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skyfountain/internal/engine/gpu"
	"github.com/Faultbox/skyfountain/internal/engine/shader"
)

// SkyboxVertices are the corners of a cube centred on the origin.
var SkyboxVertices = []float32{
	-1, 1, 1, // (0) top-left near
	1, 1, 1, // (1) top-right near
	-1, -1, 1, // (2) bottom-left near
	1, -1, 1, // (3) bottom-right near
	-1, 1, -1, // (4) top-left far
	1, 1, -1, // (5) top-right far
	-1, -1, -1, // (6) bottom-left far
	1, -1, -1, // (7) bottom-right far
}

// SkyboxIndices are two triangles per cube face.
var SkyboxIndices = []uint8{
	// Front
	1, 3, 0,
	0, 3, 2,

	// Back
	4, 6, 5,
	5, 6, 7,

	// Left
	0, 2, 4,
	4, 2, 6,

	// Right
	5, 7, 1,
	1, 7, 3,

	// Top
	5, 1, 4,
	4, 1, 0,

	// Bottom
	6, 2, 7,
	7, 2, 3,
}

// Skybox is the sky cube uploaded to the GPU.
type Skybox struct {
	vao      *gpu.VertexArray
	vertices *gpu.VertexBuffer
	indices  *gpu.IndexBuffer
}

// NewSkybox uploads the sky cube.
func NewSkybox() (*Skybox, error) {
	s := &Skybox{}

	var err error
	s.vao, err = gpu.NewVertexArray()
	if err != nil {
		return nil, fmt.Errorf("skybox: %w", err)
	}

	s.vertices, err = gpu.NewVertexBuffer(SkyboxVertices, gl.STATIC_DRAW)
	if err != nil {
		s.Delete()
		return nil, fmt.Errorf("skybox vertices: %w", err)
	}
	s.vertices.SetVertexAttribPointer(0, shader.AttribPosition, 3, 3)

	s.indices, err = gpu.NewIndexBuffer8(SkyboxIndices)
	if err != nil {
		s.Delete()
		return nil, fmt.Errorf("skybox indices: %w", err)
	}

	s.vao.Unbind()
	return s, nil
}

// Draw draws the cube with the currently bound program.
func (s *Skybox) Draw() {
	s.vao.Bind()
	s.indices.DrawTriangles()
	s.vao.Unbind()
}

// Delete releases GPU resources.
func (s *Skybox) Delete() {
	if s.indices != nil {
		s.indices.Delete()
	}
	if s.vertices != nil {
		s.vertices.Delete()
	}
	if s.vao != nil {
		s.vao.Delete()
	}
}
