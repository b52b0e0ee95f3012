package gconfig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chwjbn/shader-hub/graphics/shader"
)

func TestGetRenderMeta(t *testing.T) {

	renderMeta := GetRenderMeta()

	assert.Greater(t, renderMeta.WindowWidth, 0)
	assert.Greater(t, renderMeta.WindowHeight, 0)
	assert.True(t, strings.HasSuffix(renderMeta.ShaderDir, "shaders"))
	assert.Contains(t, renderMeta.RequestedShaders, shader.ShaderTextured)
}
