package shader

import (
	_ "embed"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skyfountain/internal/engine/texture"
	"github.com/Faultbox/skyfountain/pkg/math"
)

//go:embed glsl/heightmap.vert
var heightmapVertexShader string

//go:embed glsl/heightmap.frag
var heightmapFragmentShader string

//go:embed glsl/skybox.vert
var skyboxVertexShader string

//go:embed glsl/skybox.frag
var skyboxFragmentShader string

//go:embed glsl/particle.vert
var particleVertexShader string

//go:embed glsl/particle.frag
var particleFragmentShader string

// Attribute locations, fixed by layout qualifiers in the GLSL sources.
const (
	AttribPosition uint32 = 0
	AttribNormal   uint32 = 1

	AttribParticleColor     uint32 = 1
	AttribParticleDirection uint32 = 2
	AttribParticleStartTime uint32 = 3
)

// PointLightCount is the number of point lights the heightmap shader expects.
const PointLightCount = 3

// HeightmapUniforms are the per-frame inputs of the heightmap program.
// Light vectors and positions are in eye space.
type HeightmapUniforms struct {
	ModelView   math.Mat4
	ITModelView math.Mat4
	MVP         math.Mat4

	VectorToLight       [3]float32
	PointLightPositions [PointLightCount]math.Vec4
	PointLightColors    [PointLightCount][3]float32
}

// HeightmapProgram lights the terrain with a directional and three point lights.
type HeightmapProgram struct {
	Program

	locMVMatrix            int32
	locITMVMatrix          int32
	locMVPMatrix           int32
	locVectorToLight       int32
	locPointLightPositions int32
	locPointLightColors    int32
}

// NewHeightmapProgram compiles the heightmap program.
func NewHeightmapProgram() (*HeightmapProgram, error) {
	p, err := newProgram(heightmapVertexShader, heightmapFragmentShader, "heightmap")
	if err != nil {
		return nil, err
	}
	return &HeightmapProgram{
		Program:                p,
		locMVMatrix:            p.uniform("uMVMatrix"),
		locITMVMatrix:          p.uniform("uITMVMatrix"),
		locMVPMatrix:           p.uniform("uMVPMatrix"),
		locVectorToLight:       p.uniform("uVectorToLight"),
		locPointLightPositions: p.uniform("uPointLightPositions"),
		locPointLightColors:    p.uniform("uPointLightColors"),
	}, nil
}

// SetUniforms uploads u. The program must be in use.
func (p *HeightmapProgram) SetUniforms(u *HeightmapUniforms) {
	gl.UniformMatrix4fv(p.locMVMatrix, 1, false, u.ModelView.Ptr())
	gl.UniformMatrix4fv(p.locITMVMatrix, 1, false, u.ITModelView.Ptr())
	gl.UniformMatrix4fv(p.locMVPMatrix, 1, false, u.MVP.Ptr())
	gl.Uniform3fv(p.locVectorToLight, 1, &u.VectorToLight[0])
	gl.Uniform4fv(p.locPointLightPositions, PointLightCount, &u.PointLightPositions[0][0])
	gl.Uniform3fv(p.locPointLightColors, PointLightCount, &u.PointLightColors[0][0])
}

// SkyboxProgram samples a cube map with the cube's own positions.
type SkyboxProgram struct {
	Program

	locMatrix      int32
	locTextureUnit int32
}

// NewSkyboxProgram compiles the skybox program.
func NewSkyboxProgram() (*SkyboxProgram, error) {
	p, err := newProgram(skyboxVertexShader, skyboxFragmentShader, "skybox")
	if err != nil {
		return nil, err
	}
	return &SkyboxProgram{
		Program:        p,
		locMatrix:      p.uniform("uMatrix"),
		locTextureUnit: p.uniform("uTextureUnit"),
	}, nil
}

// SetUniforms uploads the sky matrix and binds the cube map to unit 0.
// An invalid handle leaves unit 0 unbound and the sky renders black.
func (p *SkyboxProgram) SetUniforms(matrix math.Mat4, cubeMap texture.Handle) {
	gl.UniformMatrix4fv(p.locMatrix, 1, false, matrix.Ptr())
	bindTexture(gl.TEXTURE_CUBE_MAP, cubeMap)
	gl.Uniform1i(p.locTextureUnit, 0)
}

// ParticleProgram moves particles along their direction with gravity.
type ParticleProgram struct {
	Program

	locMatrix      int32
	locTime        int32
	locTextureUnit int32
}

// NewParticleProgram compiles the particle program.
func NewParticleProgram() (*ParticleProgram, error) {
	p, err := newProgram(particleVertexShader, particleFragmentShader, "particle")
	if err != nil {
		return nil, err
	}
	return &ParticleProgram{
		Program:        p,
		locMatrix:      p.uniform("uMatrix"),
		locTime:        p.uniform("uTime"),
		locTextureUnit: p.uniform("uTextureUnit"),
	}, nil
}

// SetUniforms uploads the matrix and the current time in seconds and binds
// the point sprite to unit 0.
func (p *ParticleProgram) SetUniforms(matrix math.Mat4, elapsed float32, sprite texture.Handle) {
	gl.UniformMatrix4fv(p.locMatrix, 1, false, matrix.Ptr())
	gl.Uniform1f(p.locTime, elapsed)
	bindTexture(gl.TEXTURE_2D, sprite)
	gl.Uniform1i(p.locTextureUnit, 0)
}

func bindTexture(target uint32, h texture.Handle) {
	gl.ActiveTexture(gl.TEXTURE0)
	id, _ := h.ID()
	gl.BindTexture(target, id)
}
