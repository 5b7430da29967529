// Command skygen writes the demo resources: the terrain heightmap, the six
// night sky faces and the particle sprite.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/skyfountain/internal/logger"
)

// Output names, matching the renderer's default scene configuration.
const (
	heightmapName = "heightmap.png"
	spriteName    = "particle_texture.png"
)

var skyNames = [6]string{
	"night_left.png", "night_right.png",
	"night_bottom.png", "night_top.png",
	"night_front.png", "night_back.png",
}

func main() {
	out := flag.String("out", "assets", "Output directory")
	terrainSize := flag.Int("terrain", 64, "Heightmap size in samples (at most 256)")
	skySize := flag.Int("sky", 512, "Sky face size in pixels (at least 2)")
	spriteSize := flag.Int("sprite", 64, "Particle sprite size in pixels (at least 2)")
	seed := flag.Int64("seed", 1, "Star field seed")
	flag.Parse()

	if err := logger.Init("info", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := generate(*out, *terrainSize, *skySize, *spriteSize, *seed); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func generate(dir string, terrainSize, skySize, spriteSize int, seed int64) error {
	if terrainSize < 2 || terrainSize > 256 {
		return errors.Errorf("terrain size %d outside [2, 256]", terrainSize)
	}
	if skySize < 2 {
		return errors.Errorf("sky face size %d must be at least 2", skySize)
	}
	if spriteSize < 2 {
		return errors.Errorf("sprite size %d must be at least 2", spriteSize)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	if err := writePNG(dir, heightmapName, Heightmap(terrainSize)); err != nil {
		return err
	}
	for face, name := range skyNames {
		if err := writePNG(dir, name, SkyFace(face, skySize, seed)); err != nil {
			return err
		}
	}
	return writePNG(dir, spriteName, ParticleSprite(spriteSize))
}

func writePNG(dir, name string, img image.Image) error {
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}

	logger.Info("wrote", zap.String("file", path), zap.Stringer("size", img.Bounds().Size()))
	return f.Close()
}
