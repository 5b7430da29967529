package terrain

import (
	"fmt"
)

// BuildMesh creates the terrain mesh for a heightmap: one vertex per sample
// and two triangles per grid cell.
func BuildMesh(hm *Heightmap) (*Mesh, error) {
	width, height := hm.Width, hm.Height
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}

	return &Mesh{
		Width:    width,
		Height:   height,
		Vertices: buildVertices(hm),
		Indices:  buildIndices(width, height),
	}, nil
}

// CheckSize reports whether a width x height heightmap can be meshed.
func CheckSize(width, height int) error {
	if width*height > MaxVertices {
		return fmt.Errorf("%dx%d: %w", width, height, ErrTooLarge)
	}
	if width < 2 || height < 2 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrTooSmall)
	}
	return nil
}

// IndexCount returns the number of indices for a width x height grid.
func IndexCount(width, height int) int {
	return (width - 1) * (height - 1) * 2 * 3
}

func buildVertices(hm *Heightmap) []Vertex {
	vertices := make([]Vertex, 0, hm.Width*hm.Height)
	for row := 0; row < hm.Height; row++ {
		for col := 0; col < hm.Width; col++ {
			vertices = append(vertices, Vertex{
				Position: hm.Point(row, col).Array(),
				Normal:   hm.Normal(row, col).Array(),
			})
		}
	}
	return vertices
}

func buildIndices(width, height int) []uint16 {
	indices := make([]uint16, 0, IndexCount(width, height))
	for row := 0; row < height-1; row++ {
		for col := 0; col < width-1; col++ {
			topLeft := uint16(row*width + col)
			topRight := topLeft + 1
			bottomLeft := uint16((row+1)*width + col)
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}
	return indices
}

// Interleaved returns position and normal interleaved per vertex, the layout
// uploaded to the vertex buffer.
func (m *Mesh) Interleaved() []float32 {
	data := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		data = append(data, v.Position[:]...)
		data = append(data, v.Normal[:]...)
	}
	return data
}
