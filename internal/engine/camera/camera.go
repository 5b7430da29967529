// Package camera provides the drag-rotated scene camera.
package camera

import (
	"github.com/Faultbox/skyfountain/pkg/math"
)

// Pitch limits in degrees. Past these the camera would flip over.
const (
	MinPitch = -90
	MaxPitch = 90
)

// Camera is a fixed-position camera rotated by pitch and yaw (degrees).
// It is owned by the render thread; drags reach it through a DragQueue.
type Camera struct {
	Pitch float32 // rotation about X, from vertical drags
	Yaw   float32 // rotation about Y, from horizontal drags

	// DragDivisor converts drag units into degrees.
	DragDivisor float32

	// Eye offset applied to the scene view only.
	EyeHeight   float32
	EyeDistance float32

	view    math.Mat4
	skyView math.Mat4
}

// New creates a camera at zero rotation with its view matrices computed.
func New(dragDivisor, eyeHeight, eyeDistance float32) *Camera {
	c := &Camera{
		DragDivisor: dragDivisor,
		EyeHeight:   eyeHeight,
		EyeDistance: eyeDistance,
	}
	c.UpdateViews()
	return c
}

// HandleDrag applies a drag delta and recomputes the view matrices.
func (c *Camera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw += deltaX / c.DragDivisor
	c.Pitch += deltaY / c.DragDivisor

	if c.Pitch < MinPitch {
		c.Pitch = MinPitch
	} else if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}

	c.UpdateViews()
}

// UpdateViews recomputes the scene and skybox view matrices from the angles.
func (c *Camera) UpdateViews() {
	rotation := math.Identity().
		Mul(math.RotateX(-c.Pitch)).
		Mul(math.RotateY(-c.Yaw))

	// The skybox rotates with the camera but never translates.
	c.skyView = rotation
	c.view = rotation.Mul(math.Translate(0, -c.EyeHeight, -c.EyeDistance))
}

// View returns the scene view matrix (rotation then eye translation).
func (c *Camera) View() math.Mat4 {
	return c.view
}

// SkyboxView returns the rotation-only view matrix used for the skybox.
func (c *Camera) SkyboxView() math.Mat4 {
	return c.skyView
}
