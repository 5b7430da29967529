// Package scene holds the GPU objects of the fountain scene: the heightmap
// terrain, the skybox and the particle system, plus their textures.
package scene

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/skyfountain/internal/engine/terrain"
	"github.com/Faultbox/skyfountain/internal/engine/texture"
	"github.com/Faultbox/skyfountain/internal/logger"
)

// Resources are the encoded images the scene is built from.
type Resources struct {
	Heightmap     []byte
	HeightmapName string

	SkyboxFaces [texture.CubeFaces][]byte // -X, +X, -Y, +Y, -Z, +Z
	SkyboxNames [texture.CubeFaces]string

	ParticleTexture     []byte
	ParticleTextureName string
}

// Config contains scene construction options.
type Config struct {
	ParticleCapacity int
}

// DefaultConfig returns the demo's scene configuration.
func DefaultConfig() Config {
	return Config{ParticleCapacity: 10000}
}

// Scene owns every GPU object drawn per frame.
type Scene struct {
	Heightmap *Heightmap
	Skybox    *Skybox
	Particles *ParticleSystem

	SkyboxTexture   texture.Handle
	ParticleTexture texture.Handle
}

// New builds the scene. Mesh and buffer failures are returned; texture
// failures are logged and leave the matching handle as texture.None.
func New(cfg Config, res Resources) (*Scene, error) {
	log := logger.Named("scene")
	s := &Scene{}

	img, err := decodeHeightmap(res.Heightmap, res.HeightmapName)
	if err != nil {
		return nil, fmt.Errorf("heightmap image: %w", err)
	}

	s.Heightmap, err = NewHeightmap(img)
	if err != nil {
		return nil, err
	}
	log.Info("heightmap ready", zap.Int("width", s.Heightmap.Width), zap.Int("height", s.Heightmap.Height))

	s.Skybox, err = NewSkybox()
	if err != nil {
		s.Destroy()
		return nil, err
	}

	s.Particles, err = NewParticleSystem(cfg.ParticleCapacity)
	if err != nil {
		s.Destroy()
		return nil, err
	}
	log.Info("particles ready", zap.Int("capacity", s.Particles.Capacity()))

	s.SkyboxTexture = texture.LoadCubeMap(res.SkyboxFaces, res.SkyboxNames)
	s.ParticleTexture = texture.Load2D(res.ParticleTexture, res.ParticleTextureName)
	if !s.SkyboxTexture.Valid() || !s.ParticleTexture.Valid() {
		log.Warn("scene running with missing textures",
			zap.Bool("skybox", s.SkyboxTexture.Valid()),
			zap.Bool("particle", s.ParticleTexture.Valid()))
	}

	return s, nil
}

// Destroy releases every GPU object. It is safe on a partially built scene.
func (s *Scene) Destroy() {
	if s.Heightmap != nil {
		s.Heightmap.Delete()
	}
	if s.Skybox != nil {
		s.Skybox.Delete()
	}
	if s.Particles != nil {
		s.Particles.Delete()
	}
	s.SkyboxTexture.Delete()
	s.ParticleTexture.Delete()
	s.SkyboxTexture, s.ParticleTexture = texture.None, texture.None
}

// decodeHeightmap rejects unusable sizes from the image header, then decodes
// the pixels without premultiplying them.
func decodeHeightmap(data []byte, name string) (image.Image, error) {
	width, height, err := texture.DecodeSize(data, name)
	if err != nil {
		return nil, err
	}
	if err := terrain.CheckSize(width, height); err != nil {
		return nil, err
	}
	return texture.DecodeImage(data, name)
}
