package lighting

import (
	"testing"

	"github.com/Faultbox/skyfountain/pkg/math"
)

func TestEyeSpaceIdentity(t *testing.T) {
	rig := DefaultRig()
	eye := rig.EyeSpace(math.Identity())

	if eye.VectorToLight != [3]float32{0.30, 0.35, -0.89} {
		t.Errorf("VectorToLight = %v, want unchanged", eye.VectorToLight)
	}
	for i, light := range rig.PointLights {
		want := math.Vec4{light.Position.X, light.Position.Y, light.Position.Z, 1}
		if eye.Positions[i] != want {
			t.Errorf("light %d position = %v, want %v", i, eye.Positions[i], want)
		}
		if eye.Colors[i] != light.Color {
			t.Errorf("light %d color = %v, want %v", i, eye.Colors[i], light.Color)
		}
	}
}

func TestEyeSpaceTranslation(t *testing.T) {
	// Default scene view with zero rotation
	view := math.Translate(0, -1.5, -5)
	eye := DefaultRig().EyeSpace(view)

	if eye.VectorToLight != [3]float32{0.30, 0.35, -0.89} {
		t.Errorf("directional light should ignore translation, got %v", eye.VectorToLight)
	}

	want := math.Vec4{-1, -0.5, -5, 1}
	if eye.Positions[0] != want {
		t.Errorf("red light position = %v, want %v", eye.Positions[0], want)
	}
}

func TestEyeSpaceRotation(t *testing.T) {
	rig := &Rig{
		VectorToLight: math.Vec3{X: 1},
		PointLights:   []PointLight{{Position: math.Vec3{X: 1}, Color: [3]float32{1, 1, 1}}},
	}
	eye := rig.EyeSpace(math.RotateY(90))

	for i, want := range [3]float32{0, 0, -1} {
		if d := eye.VectorToLight[i] - want; d > 1e-6 || d < -1e-6 {
			t.Fatalf("VectorToLight = %v, want (0, 0, -1)", eye.VectorToLight)
		}
	}
	if p := eye.Positions[0]; p[3] != 1 {
		t.Errorf("point light w = %v, want 1", p[3])
	}
}

func TestEyeSpaceUnusedSlotsAreBlack(t *testing.T) {
	rig := &Rig{
		PointLights: []PointLight{{Position: math.Vec3{Y: 1}, Color: [3]float32{1, 0, 0}}},
	}
	eye := rig.EyeSpace(math.Identity())

	for i := 1; i < MaxPointLights; i++ {
		if eye.Colors[i] != ([3]float32{}) {
			t.Errorf("slot %d color = %v, want black", i, eye.Colors[i])
		}
	}
}

func TestEyeSpaceIgnoresExtraLights(t *testing.T) {
	rig := &Rig{}
	for i := 0; i < MaxPointLights+2; i++ {
		rig.PointLights = append(rig.PointLights, PointLight{Color: [3]float32{float32(i), 0, 0}})
	}
	eye := rig.EyeSpace(math.Identity())

	if eye.Colors[MaxPointLights-1][0] != MaxPointLights-1 {
		t.Errorf("last slot = %v, want light %d", eye.Colors[MaxPointLights-1], MaxPointLights-1)
	}
}
