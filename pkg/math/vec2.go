package math

// Vec2 is a 2D vector. Drag deltas travel from input to the camera as Vec2.
type Vec2 struct {
	X, Y float32
}
