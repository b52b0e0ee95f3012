package gconfig

import (
	"path"

	"github.com/chwjbn/shader-hub/glib"
	"github.com/chwjbn/shader-hub/graphics/shader"
)

type RenderMeta struct {
	WindowWidth  int
	WindowHeight int

	ShaderDir        string
	RequestedShaders []shader.ShaderType
}

func GetRenderMeta() RenderMeta {

	var renderData RenderMeta

	renderData.WindowWidth = 1280
	renderData.WindowHeight = 720

	renderData.ShaderDir = path.Join(glib.AppBaseDir(), "data", "shaders")
	renderData.RequestedShaders = []shader.ShaderType{
		shader.ShaderTextured,
		shader.ShaderSkybox,
		shader.ShaderText,
	}

	return renderData

}
