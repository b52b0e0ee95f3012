package shader

import "fmt"

// ShaderType identifies one logical shader program from the static catalog.
type ShaderType int

const (
	ShaderTextured ShaderType = iota
	ShaderSkybox
	ShaderText
)

func (shaderType ShaderType) String() string {

	switch shaderType {
	case ShaderTextured:
		return "textured"
	case ShaderSkybox:
		return "skybox"
	case ShaderText:
		return "text"
	}

	return fmt.Sprintf("ShaderType(%d)", int(shaderType))
}

// ShaderVertexAttributeVariable is the symbolic name of a per-vertex input.
// Shader source files must declare the attribute under the name registered
// in the attribute name table.
type ShaderVertexAttributeVariable int

const (
	AttributePosition ShaderVertexAttributeVariable = iota
	AttributePassthroughTexturePosition
	AttributeXYPosition
)

func (attrVar ShaderVertexAttributeVariable) String() string {

	attrName, bOk := attributeNames[attrVar]
	if bOk {
		return attrName
	}

	return fmt.Sprintf("ShaderVertexAttributeVariable(%d)", int(attrVar))
}

// ShaderUniformVariable is the symbolic name of a program-wide input.
type ShaderUniformVariable int

const (
	UniformCameraToClip ShaderUniformVariable = iota
	UniformWorldToCamera
	UniformLocalToWorld
	UniformRGBColor
	UniformTextureSampler
	UniformSkyboxSampler
)

func (uniform ShaderUniformVariable) String() string {

	uniformName, bOk := uniformNames[uniform]
	if bOk {
		return uniformName
	}

	return fmt.Sprintf("ShaderUniformVariable(%d)", int(uniform))
}
