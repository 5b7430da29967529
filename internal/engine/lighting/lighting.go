// Package lighting holds the terrain's light rig and moves it into eye space.
package lighting

import "github.com/Faultbox/skyfountain/pkg/math"

// MaxPointLights is the number of point lights the terrain shader supports.
const MaxPointLights = 3

// PointLight is a coloured light at a world position.
type PointLight struct {
	Position math.Vec3
	Color    [3]float32 // RGB, 0-1 range
}

// Rig is one directional light plus up to MaxPointLights point lights, in world space.
type Rig struct {
	// VectorToLight points from the surface towards the directional light.
	VectorToLight math.Vec3
	PointLights   []PointLight
}

// DefaultRig returns the fountain lighting: a dim moon and one light over
// each particle shooter, tinted like its particles.
func DefaultRig() *Rig {
	return &Rig{
		VectorToLight: math.Vec3{X: 0.30, Y: 0.35, Z: -0.89},
		PointLights: []PointLight{
			{Position: math.Vec3{X: -1, Y: 1, Z: 0}, Color: [3]float32{1.00, 0.20, 0.02}},
			{Position: math.Vec3{X: 0, Y: 1, Z: 0}, Color: [3]float32{0.02, 0.25, 0.02}},
			{Position: math.Vec3{X: 1, Y: 1, Z: 0}, Color: [3]float32{0.02, 0.20, 1.00}},
		},
	}
}

// EyeSpace is a Rig transformed by a view matrix, laid out for shader upload.
// Unused point light slots are black.
type EyeSpace struct {
	VectorToLight [3]float32
	Positions     [MaxPointLights]math.Vec4
	Colors        [MaxPointLights][3]float32
}

// EyeSpace transforms the rig with view. The directional light is a
// direction (w=0) and ignores the view's translation; point lights are
// points (w=1). Lights beyond MaxPointLights are ignored.
func (r *Rig) EyeSpace(view math.Mat4) EyeSpace {
	var out EyeSpace

	dir := view.MulVec4(math.Vec4{r.VectorToLight.X, r.VectorToLight.Y, r.VectorToLight.Z, 0})
	out.VectorToLight = [3]float32{dir[0], dir[1], dir[2]}

	for i, light := range r.PointLights {
		if i == MaxPointLights {
			break
		}
		out.Positions[i] = view.MulVec4(math.Vec4{light.Position.X, light.Position.Y, light.Position.Z, 1})
		out.Colors[i] = light.Color
	}

	return out
}
