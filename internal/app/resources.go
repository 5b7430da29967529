package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/skyfountain/internal/assets"
	"github.com/Faultbox/skyfountain/internal/config"
	"github.com/Faultbox/skyfountain/internal/engine/renderer"
	"github.com/Faultbox/skyfountain/internal/logger"
)

// LoadResources reads the scene images named in cfg. The heightmap is
// required; a missing sky face or particle sprite is logged and left empty
// so the scene runs without that texture.
func LoadResources(m *assets.Manager, cfg config.SceneConfig) (renderer.Resources, error) {
	log := logger.Named("assets")
	var res renderer.Resources

	data, err := m.Load(cfg.Heightmap)
	if err != nil {
		return res, err
	}
	res.Heightmap, res.HeightmapName = data, cfg.Heightmap

	for i, name := range cfg.Skybox {
		res.SkyboxNames[i] = name
		if res.SkyboxFaces[i], err = m.Load(name); err != nil {
			log.Warn("skybox face unavailable", zap.String("name", name), zap.Error(err))
		}
	}

	res.ParticleTextureName = cfg.ParticleTexture
	if res.ParticleTexture, err = m.Load(cfg.ParticleTexture); err != nil {
		log.Warn("particle texture unavailable", zap.String("name", cfg.ParticleTexture), zap.Error(err))
	}

	hits, misses := m.Stats()
	log.Debug("scene resources read", zap.Int("cache_hits", hits), zap.Int("cache_misses", misses))

	return res, nil
}
