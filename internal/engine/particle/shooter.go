package particle

import (
	"math/rand"

	"github.com/Faultbox/skyfountain/pkg/math"
)

// Shooter emits particles from a fixed point with a randomized spread
// around a base direction.
type Shooter struct {
	Position      math.Vec3
	Direction     math.Vec3
	Color         [3]float32
	AngleVariance float32 // degrees, applied about each axis
	SpeedVariance float32

	rng *rand.Rand
}

// NewShooter creates a shooter drawing randomness from rng.
func NewShooter(position, direction math.Vec3, color [3]float32, angleVariance, speedVariance float32, rng *rand.Rand) *Shooter {
	return &Shooter{
		Position:      position,
		Direction:     direction,
		Color:         color,
		AngleVariance: angleVariance,
		SpeedVariance: speedVariance,
		rng:           rng,
	}
}

// AddParticles emits count particles into sys, stamped with time now (seconds).
func (s *Shooter) AddParticles(sys *System, now float32, count int) {
	for i := 0; i < count; i++ {
		sys.Add(s.Position, s.Color, s.spread(), now)
	}
}

// spread rotates the base direction by random Euler angles within the angle
// variance and scales it by a random speed factor in [1, 1+SpeedVariance).
func (s *Shooter) spread() math.Vec3 {
	rotation := math.RotateX(s.jitter()).
		Mul(math.RotateY(s.jitter())).
		Mul(math.RotateZ(s.jitter()))

	d := rotation.MulVec4(math.Vec4{s.Direction.X, s.Direction.Y, s.Direction.Z, 0})
	speed := 1 + s.rng.Float32()*s.SpeedVariance

	return math.Vec3{X: d[0], Y: d[1], Z: d[2]}.Scale(speed)
}

func (s *Shooter) jitter() float32 {
	return (s.rng.Float32()*2 - 1) * s.AngleVariance
}

// RGB converts 8-bit colour channels to the [0,1] floats stored per particle.
func RGB(r, g, b uint8) [3]float32 {
	return [3]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// FountainShooters returns the red, green and blue shooters placed one unit
// apart along X, all shooting straight up.
func FountainShooters(angleVariance, speedVariance float32, rng *rand.Rand) []*Shooter {
	up := math.Vec3{Y: 0.5}
	return []*Shooter{
		NewShooter(math.Vec3{X: -1}, up, RGB(255, 50, 5), angleVariance, speedVariance, rng),
		NewShooter(math.Vec3{}, up, RGB(25, 255, 25), angleVariance, speedVariance, rng),
		NewShooter(math.Vec3{X: 1}, up, RGB(5, 50, 255), angleVariance, speedVariance, rng),
	}
}
