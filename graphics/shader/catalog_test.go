package shader

import (
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCoversAllShaderTypes(t *testing.T) {

	for _, shaderType := range []ShaderType{ShaderTextured, ShaderSkybox, ShaderText} {

		creationInfo, xErr := GetShaderCreationInfo(shaderType)
		require.NoError(t, xErr)
		assert.NotEmpty(t, creationInfo.VertexPath)
		assert.NotEmpty(t, creationInfo.FragmentPath)

		usedAttrs, xErr := GetUsedVertexAttributes(shaderType)
		require.NoError(t, xErr)
		assert.NotEmpty(t, usedAttrs)

		for _, attrVar := range usedAttrs {

			_, xErr = GetVertexAttributeConfig(attrVar)
			assert.NoError(t, xErr)

			attrName, xErr := GetVertexAttributeName(attrVar)
			assert.NoError(t, xErr)
			assert.NotEmpty(t, attrName)
		}
	}
}

func TestUnknownShaderTypeLookupFails(t *testing.T) {

	_, xErr := GetShaderCreationInfo(ShaderType(99))
	assert.ErrorIs(t, xErr, ErrShaderTypeNotFound)

	_, xErr = GetUsedVertexAttributes(ShaderType(99))
	assert.ErrorIs(t, xErr, ErrUsedAttributesNotFound)
}

func TestUnknownAttributeLookupsFail(t *testing.T) {

	_, xErr := GetVertexAttributeConfig(ShaderVertexAttributeVariable(99))
	assert.ErrorIs(t, xErr, ErrAttributeConfigNotFound)

	_, xErr = GetVertexAttributeName(ShaderVertexAttributeVariable(99))
	assert.ErrorIs(t, xErr, ErrAttributeNameNotFound)
}

func TestUnknownUniformNameFails(t *testing.T) {

	_, xErr := GetUniformName(ShaderUniformVariable(99))
	assert.ErrorIs(t, xErr, ErrUniformNameNotFound)
}

func TestAttributeConfigValues(t *testing.T) {

	posConfig, xErr := GetVertexAttributeConfig(AttributePosition)
	require.NoError(t, xErr)
	assert.Equal(t, int32(3), posConfig.ComponentsPerVertex)
	assert.Equal(t, uint32(gl.FLOAT), posConfig.ComponentType)
	assert.False(t, posConfig.Normalize)
	assert.Equal(t, int32(0), posConfig.Stride)

	texConfig, xErr := GetVertexAttributeConfig(AttributePassthroughTexturePosition)
	require.NoError(t, xErr)
	assert.Equal(t, int32(2), texConfig.ComponentsPerVertex)
	assert.Equal(t, uint32(gl.FLOAT), texConfig.ComponentType)
}

func TestEnumStrings(t *testing.T) {

	assert.Equal(t, "textured", ShaderTextured.String())
	assert.Equal(t, "skybox", ShaderSkybox.String())
	assert.Equal(t, "text", ShaderText.String())
	assert.Equal(t, "ShaderType(99)", ShaderType(99).String())

	assert.Equal(t, "position", AttributePosition.String())
	assert.Equal(t, "passthrough_texture_position", AttributePassthroughTexturePosition.String())
	assert.Equal(t, "ShaderVertexAttributeVariable(99)", ShaderVertexAttributeVariable(99).String())

	assert.Equal(t, "camera_to_clip", UniformCameraToClip.String())
	assert.Equal(t, "rgb_color", UniformRGBColor.String())
	assert.Equal(t, "ShaderUniformVariable(99)", ShaderUniformVariable(99).String())
}
