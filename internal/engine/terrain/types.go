// Package terrain builds heightmap terrain meshes from greyscale images.
package terrain

import "errors"

// MaxVertices is the largest vertex count addressable with 16-bit indices.
const MaxVertices = 65536

var (
	// ErrTooLarge is returned when a heightmap has more vertices than 16-bit indices can address.
	ErrTooLarge = errors.New("heightmap is too large for the index buffer")
	// ErrTooSmall is returned when a heightmap has fewer than two samples along an axis.
	ErrTooSmall = errors.New("heightmap needs at least 2x2 samples")
)

// Vertex is a terrain vertex as laid out in the vertex buffer.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// FloatsPerVertex is the number of float32 components in an interleaved Vertex.
const FloatsPerVertex = 6

// Mesh holds the terrain mesh data ready for GPU upload.
type Mesh struct {
	Width    int
	Height   int
	Vertices []Vertex
	Indices  []uint16
}

// Heightmap is a row-major grid of height samples in [0,1].
type Heightmap struct {
	Width   int
	Height  int
	Heights []float32
}
