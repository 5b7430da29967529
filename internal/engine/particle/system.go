// Package particle holds the CPU side of the particle fountain.
package particle

import "github.com/Faultbox/skyfountain/pkg/math"

// Per-particle layout in the flat buffer.
const (
	PositionComponents  = 3
	ColorComponents     = 3
	DirectionComponents = 3
	StartTimeComponents = 1

	FloatsPerParticle = PositionComponents + ColorComponents + DirectionComponents + StartTimeComponents
)

// System is a fixed-capacity ring of particles. Once full, each new particle
// overwrites the oldest one.
type System struct {
	particles []float32
	capacity  int
	count     int
	next      int
}

// NewSystem creates a system holding up to capacity particles.
func NewSystem(capacity int) *System {
	return &System{
		particles: make([]float32, capacity*FloatsPerParticle),
		capacity:  capacity,
	}
}

// Add stores a particle emitted at startTime and returns the slot it was written to.
func (s *System) Add(position math.Vec3, color [3]float32, direction math.Vec3, startTime float32) int {
	slot := s.next
	offset := slot * FloatsPerParticle

	p := s.particles[offset : offset+FloatsPerParticle]
	p[0], p[1], p[2] = position.X, position.Y, position.Z
	p[3], p[4], p[5] = color[0], color[1], color[2]
	p[6], p[7], p[8] = direction.X, direction.Y, direction.Z
	p[9] = startTime

	if s.count < s.capacity {
		s.count++
	}
	s.next++
	if s.next == s.capacity {
		s.next = 0
	}
	return slot
}

// Count returns the number of live particles.
func (s *System) Count() int {
	return s.count
}

// Capacity returns the maximum number of particles.
func (s *System) Capacity() int {
	return s.capacity
}

// Data returns the flat buffer of live particles. The slice aliases the
// system's storage and is only valid until the next Add.
func (s *System) Data() []float32 {
	return s.particles[:s.count*FloatsPerParticle]
}

// Particle returns the fields stored in slot i.
func (s *System) Particle(i int) (position math.Vec3, color [3]float32, direction math.Vec3, startTime float32) {
	p := s.particles[i*FloatsPerParticle : (i+1)*FloatsPerParticle]
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]},
		[3]float32{p[3], p[4], p[5]},
		math.Vec3{X: p[6], Y: p[7], Z: p[8]},
		p[9]
}
