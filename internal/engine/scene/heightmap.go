package scene

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skyfountain/internal/engine/gpu"
	"github.com/Faultbox/skyfountain/internal/engine/shader"
	"github.com/Faultbox/skyfountain/internal/engine/terrain"
)

// Heightmap is the terrain mesh uploaded to the GPU.
type Heightmap struct {
	vao      *gpu.VertexArray
	vertices *gpu.VertexBuffer
	indices  *gpu.IndexBuffer

	Width  int
	Height int
}

// NewHeightmap builds the terrain mesh for img and uploads it. Size checks
// run before anything is allocated on the GPU.
func NewHeightmap(img image.Image) (*Heightmap, error) {
	mesh, err := terrain.BuildMesh(terrain.SampleImage(img))
	if err != nil {
		return nil, fmt.Errorf("heightmap mesh: %w", err)
	}
	return uploadHeightmap(mesh)
}

func uploadHeightmap(mesh *terrain.Mesh) (*Heightmap, error) {
	h := &Heightmap{Width: mesh.Width, Height: mesh.Height}

	var err error
	h.vao, err = gpu.NewVertexArray()
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}

	h.vertices, err = gpu.NewVertexBuffer(mesh.Interleaved(), gl.STATIC_DRAW)
	if err != nil {
		h.Delete()
		return nil, fmt.Errorf("heightmap vertices: %w", err)
	}
	h.vertices.SetVertexAttribPointer(0, shader.AttribPosition, 3, terrain.FloatsPerVertex)
	h.vertices.SetVertexAttribPointer(3, shader.AttribNormal, 3, terrain.FloatsPerVertex)

	h.indices, err = gpu.NewIndexBuffer16(mesh.Indices)
	if err != nil {
		h.Delete()
		return nil, fmt.Errorf("heightmap indices: %w", err)
	}

	h.vao.Unbind()
	return h, nil
}

// Draw draws the terrain with the currently bound program.
func (h *Heightmap) Draw() {
	h.vao.Bind()
	h.indices.DrawTriangles()
	h.vao.Unbind()
}

// Delete releases GPU resources.
func (h *Heightmap) Delete() {
	if h.indices != nil {
		h.indices.Delete()
	}
	if h.vertices != nil {
		h.vertices.Delete()
	}
	if h.vao != nil {
		h.vao.Delete()
	}
}
