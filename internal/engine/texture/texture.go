package texture

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/skyfountain/internal/logger"
)

// Handle refers to a texture object on the GPU, or to no texture at all.
type Handle struct {
	id uint32
}

// None is the handle returned when a texture could not be created.
var None = Handle{}

// ID returns the GL texture name and whether the handle refers to a texture.
func (h Handle) ID() (uint32, bool) {
	return h.id, h.id != 0
}

// Valid reports whether the handle refers to a texture.
func (h Handle) Valid() bool {
	return h.id != 0
}

// Delete releases the texture. Deleting None is a no-op.
func (h Handle) Delete() {
	if h.id != 0 {
		gl.DeleteTextures(1, &h.id)
	}
}

// Load2D decodes data and uploads it as a mipmapped 2D texture.
// Failures are logged and reported as None.
func Load2D(data []byte, name string) Handle {
	log := logger.Named("texture")

	img, err := Decode(data, name)
	if err != nil {
		log.Warn("could not decode texture", zap.String("name", name), zap.Error(err))
		return None
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	if texID == 0 {
		log.Warn("could not create texture object", zap.String("name", name))
		return None
	}

	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	uploadImage(gl.TEXTURE_2D, img)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	log.Debug("loaded texture", zap.String("name", name),
		zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))

	return Handle{id: texID}
}

// cubeTargets lists the GL faces in the order faces are passed to LoadCubeMap.
var cubeTargets = [CubeFaces]uint32{
	gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_X,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z,
}

// LoadCubeMap decodes six faces (left, right, bottom, top, front, back) and
// uploads them as a cube map. Failures are logged and reported as None.
func LoadCubeMap(faces [CubeFaces][]byte, names [CubeFaces]string) Handle {
	log := logger.Named("texture")

	imgs, err := DecodeCubeFaces(faces, names)
	if err != nil {
		log.Warn("could not decode cube map", zap.Strings("faces", names[:]), zap.Error(err))
		return None
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	if texID == 0 {
		log.Warn("could not create cube map object", zap.Strings("faces", names[:]))
		return None
	}

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texID)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	for i, img := range imgs {
		uploadImage(cubeTargets[i], img)
	}
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	log.Debug("loaded cube map", zap.Int("size", imgs[0].Bounds().Dx()))

	return Handle{id: texID}
}

func uploadImage(target uint32, img *image.RGBA) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(target, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
}
