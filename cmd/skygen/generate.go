package main

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/chewxy/math32"
)

// Heightmap returns a size x size greyscale map: a ring of hills around a
// flat basin where the fountain stands.
func Heightmap(size int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	last := float32(size - 1)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			x := float32(col)/last*2 - 1
			z := float32(row)/last*2 - 1
			r := math32.Hypot(x, z)

			// Basin in the middle, rising towards the edges.
			h := smoothstep(0.15, 0.9, r) * 0.75
			h += 0.15 * math32.Sin(x*7) * math32.Cos(z*5) * smoothstep(0.1, 0.5, r)
			h += 0.08 * math32.Sin((x+z)*13)

			img.SetGray(col, row, color.Gray{Y: toByte(h)})
		}
	}
	return img
}

// SkyFace returns one face of a night sky: a dark blue gradient with stars.
// face follows cube map order (-X, +X, -Y, +Y, -Z, +Z); the bottom face has no stars.
func SkyFace(face, size int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	rng := rand.New(rand.NewSource(seed + int64(face)))

	for y := 0; y < size; y++ {
		// Side faces brighten towards the horizon at the bottom of the image.
		t := float32(y) / float32(size-1)
		switch face {
		case 2:
			t = 1
		case 3:
			t = 0
		}
		c := color.RGBA{
			R: toByte(0.02 + 0.06*t),
			G: toByte(0.03 + 0.08*t),
			B: toByte(0.10 + 0.18*t),
			A: 255,
		}
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	if face == 2 {
		return img
	}

	stars := size * size / 180
	for i := 0; i < stars; i++ {
		x, y := rng.Intn(size), rng.Intn(size)
		v := uint8(150 + rng.Intn(106))
		img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: uint8(min(255, int(v)+20)), A: 255})
	}
	return img
}

// ParticleSprite returns a soft white disc that fades to black at its rim,
// so additive blending leaves no square edges.
func ParticleSprite(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	centre := float32(size-1) / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math32.Hypot(float32(x)-centre, float32(y)-centre) / centre
			v := 1 - smoothstep(0, 1, d)
			v *= v
			b := toByte(v)
			img.SetRGBA(x, y, color.RGBA{R: b, G: b, B: b, A: b})
		}
	}
	return img
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
