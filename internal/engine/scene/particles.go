package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skyfountain/internal/engine/gpu"
	"github.com/Faultbox/skyfountain/internal/engine/particle"
	"github.com/Faultbox/skyfountain/internal/engine/shader"
)

// ParticleSystem is a particle.System backed by a dynamic vertex buffer.
type ParticleSystem struct {
	*particle.System

	vao      *gpu.VertexArray
	vertices *gpu.VertexBuffer
}

// NewParticleSystem allocates room for capacity particles on the GPU.
func NewParticleSystem(capacity int) (*ParticleSystem, error) {
	p := &ParticleSystem{System: particle.NewSystem(capacity)}

	var err error
	p.vao, err = gpu.NewVertexArray()
	if err != nil {
		return nil, fmt.Errorf("particles: %w", err)
	}

	p.vertices, err = gpu.NewVertexBuffer(make([]float32, capacity*particle.FloatsPerParticle), gl.DYNAMIC_DRAW)
	if err != nil {
		p.Delete()
		return nil, fmt.Errorf("particle vertices: %w", err)
	}

	offset := 0
	for _, attr := range []struct {
		location   uint32
		components int
	}{
		{shader.AttribPosition, particle.PositionComponents},
		{shader.AttribParticleColor, particle.ColorComponents},
		{shader.AttribParticleDirection, particle.DirectionComponents},
		{shader.AttribParticleStartTime, particle.StartTimeComponents},
	} {
		p.vertices.SetVertexAttribPointer(offset, attr.location, int32(attr.components), particle.FloatsPerParticle)
		offset += attr.components
	}

	p.vao.Unbind()
	return p, nil
}

// Draw uploads the live particles and draws them as points with the
// currently bound program.
func (p *ParticleSystem) Draw() {
	count := p.Count()
	if count == 0 {
		return
	}

	p.vertices.Update(0, p.Data())

	p.vao.Bind()
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	p.vao.Unbind()
}

// Delete releases GPU resources.
func (p *ParticleSystem) Delete() {
	if p.vertices != nil {
		p.vertices.Delete()
	}
	if p.vao != nil {
		p.vao.Delete()
	}
}
