package renderer

import "github.com/Faultbox/skyfountain/pkg/math"

// Projection parameters.
const (
	FieldOfView = 45 // degrees, vertical
	NearPlane   = 1
	FarPlane    = 100
)

// HeightmapModel stretches the unit terrain mesh to 100x10x100 world units.
func HeightmapModel() math.Mat4 {
	return math.Scale(100, 10, 100)
}

// Transform is the set of matrices derived for one object in one frame.
type Transform struct {
	Model       math.Mat4
	ModelView   math.Mat4
	ITModelView math.Mat4 // transpose of the inverse model-view, for normals
	MVP         math.Mat4
}

// ComputeTransform derives the per-object matrices:
// ModelView = view*model, MVP = projection*ModelView.
func ComputeTransform(model, view, projection math.Mat4) Transform {
	modelView := view.Mul(model)
	return Transform{
		Model:       model,
		ModelView:   modelView,
		ITModelView: modelView.Inverse().Transpose(),
		MVP:         projection.Mul(modelView),
	}
}

// SkyboxTransform returns projection*(skyView*model), where skyView carries
// rotation only so the sky never moves relative to the eye.
func SkyboxTransform(model, skyView, projection math.Mat4) math.Mat4 {
	return projection.Mul(skyView.Mul(model))
}

// ProjectionFor returns the perspective projection for a surface of the given size.
// A side of zero (a minimised window) is treated as one pixel.
func ProjectionFor(width, height int) math.Mat4 {
	width = max(width, 1)
	height = max(height, 1)
	return math.Perspective(FieldOfView, float32(width)/float32(height), NearPlane, FarPlane)
}
