package texture

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/logger"
)

// CubeFaces lists cubemap face paths in GL order: +X, -X, +Y, -Y, +Z, -Z.
type CubeFaces [6]string

// Load2D loads a repeating, mipmapped 2D texture.
// On failure the error is logged and 0 is returned so drawing continues
// with the default (black) texture.
func Load2D(path string) uint32 {
	img, err := DecodeFile(path)
	if err != nil {
		logger.Warn("failed to load texture", zap.String("path", path), zap.Error(err))
		return 0
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	upload(gl.TEXTURE_2D, img)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Uint32("id", texID),
	)
	return texID
}

// LoadCubemap loads the six sky faces into one cubemap texture.
// A face that fails to load is logged and left empty.
func LoadCubemap(faces CubeFaces) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texID)

	loaded := 0
	for i, path := range faces {
		img, err := DecodeFile(path)
		if err != nil {
			logger.Warn("failed to load cubemap face",
				zap.String("path", path),
				zap.Int("face", i),
				zap.Error(err),
			)
			continue
		}
		upload(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), img)
		loaded++
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	logger.Debug("cubemap loaded", zap.Int("faces", loaded), zap.Uint32("id", texID))
	return texID
}

func upload(target uint32, img *image.RGBA) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(target, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
}
