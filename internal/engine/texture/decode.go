// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// CubeFaces is the number of faces in a cube map.
const CubeFaces = 6

// Decode decodes PNG, JPEG, GIF, BMP or WebP data into an RGBA image.
// name is only used in error messages.
func Decode(data []byte, name string) (*image.RGBA, error) {
	img, err := DecodeImage(data, name)
	if err != nil {
		return nil, err
	}
	return ImageToRGBA(img), nil
}

// DecodeImage decodes data without converting it, so callers that read
// channel values get them unpremultiplied where the format stores them so.
func DecodeImage(data []byte, name string) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.Errorf("decode %s: empty data", name)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.Errorf("decode %s: empty %s image", name, format)
	}
	return img, nil
}

// DecodeSize reads only the image header and returns its dimensions.
func DecodeSize(data []byte, name string) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "decode %s header", name)
	}
	return cfg.Width, cfg.Height, nil
}

// ImageToRGBA converts any image.Image to *image.RGBA with its origin at (0, 0).
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// DecodeCubeFaces decodes all six faces before anything touches the GPU.
// Every failing face is reported in the combined error.
func DecodeCubeFaces(faces [CubeFaces][]byte, names [CubeFaces]string) ([CubeFaces]*image.RGBA, error) {
	var imgs [CubeFaces]*image.RGBA
	var err error

	for i := range faces {
		img, decodeErr := Decode(faces[i], names[i])
		if decodeErr != nil {
			err = multierr.Append(err, decodeErr)
			continue
		}
		imgs[i] = img
	}
	if err != nil {
		return imgs, err
	}

	size := imgs[0].Bounds().Size()
	for i, img := range imgs {
		if img.Bounds().Size() != size || size.X != size.Y {
			return imgs, errors.Errorf("cube face %s is %v, want square faces of %v", names[i], img.Bounds().Size(), size)
		}
	}
	return imgs, nil
}
