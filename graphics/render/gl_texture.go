package render

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// GlTexture wraps one 2D texture object.
type GlTexture struct {
	handle  uint32
	target  uint32
	texUnit uint32
}

func NewGlTexture() *GlTexture {

	var handle uint32
	gl.GenTextures(1, &handle)

	texture := GlTexture{
		handle: handle,
		target: gl.TEXTURE_2D,
	}

	texture.Bind(gl.TEXTURE0)
	defer texture.UnBind()

	gl.TexParameteri(texture.target, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(texture.target, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(texture.target, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(texture.target, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return &texture
}

func (tex *GlTexture) SetImage(img *image.RGBA) error {

	tex.Bind(gl.TEXTURE0)
	defer tex.UnBind()

	if img.Stride != img.Rect.Size().X*4 {
		return fmt.Errorf("unsupported stride, only 32-bit colors supported")
	}

	width := int32(img.Rect.Size().X)
	height := int32(img.Rect.Size().Y)

	gl.TexImage2D(tex.target, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(tex.target)

	return nil
}

// Unit returns the sampler unit index for the currently bound texture unit.
func (tex *GlTexture) Unit() (int32, error) {

	if tex.texUnit == 0 {
		return 0, fmt.Errorf("texture not bound")
	}

	return int32(tex.texUnit - gl.TEXTURE0), nil
}

func (tex *GlTexture) Bind(texUnit uint32) {
	gl.ActiveTexture(texUnit)
	gl.BindTexture(tex.target, tex.handle)
	tex.texUnit = texUnit
}

func (tex *GlTexture) UnBind() {
	tex.texUnit = 0
	gl.BindTexture(tex.target, 0)
}

func (tex *GlTexture) Delete() {
	gl.DeleteTextures(1, &tex.handle)
}
