package shader

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Static-table lookup failures. These represent programmer or catalog
// errors known at compile time, so callers get a real error back, unlike
// driver-side misses which are only logged.
var (
	ErrShaderTypeNotFound      = errors.New("shader type not found in catalog")
	ErrShaderProgramNotFound   = errors.New("shader program not found")
	ErrAttributeConfigNotFound = errors.New("vertex attribute has no registered configuration")
	ErrAttributeNameNotFound   = errors.New("vertex attribute has no registered name")
	ErrUniformNameNotFound     = errors.New("uniform has no registered name")
	ErrUsedAttributesNotFound  = errors.New("shader type has no registered attribute list")
)

// ShaderCreationInfo holds the source file paths for one shader program.
// Paths are relative to the cache's shader directory unless absolute.
// GeometryPath is optional.
type ShaderCreationInfo struct {
	VertexPath   string
	FragmentPath string
	GeometryPath string
}

// GlVertexAttributeConfig describes how one vertex attribute is laid out
// inside a bound vertex buffer. Stride 0 means tightly packed.
type GlVertexAttributeConfig struct {
	ComponentsPerVertex int32
	ComponentType       uint32
	Normalize           bool
	Stride              int32
	Offset              uintptr
}

var shaderCatalog = map[ShaderType]ShaderCreationInfo{
	ShaderTextured: {VertexPath: "textured.vert", FragmentPath: "textured.frag"},
	ShaderSkybox:   {VertexPath: "skybox.vert", FragmentPath: "skybox.frag"},
	ShaderText:     {VertexPath: "text.vert", FragmentPath: "text.frag"},
}

var attributeConfigs = map[ShaderVertexAttributeVariable]GlVertexAttributeConfig{
	AttributePosition:                   {ComponentsPerVertex: 3, ComponentType: gl.FLOAT},
	AttributePassthroughTexturePosition: {ComponentsPerVertex: 2, ComponentType: gl.FLOAT},
	AttributeXYPosition:                 {ComponentsPerVertex: 2, ComponentType: gl.FLOAT},
}

var attributeNames = map[ShaderVertexAttributeVariable]string{
	AttributePosition:                   "position",
	AttributePassthroughTexturePosition: "passthrough_texture_position",
	AttributeXYPosition:                 "xy_position",
}

var uniformNames = map[ShaderUniformVariable]string{
	UniformCameraToClip:   "camera_to_clip",
	UniformWorldToCamera:  "world_to_camera",
	UniformLocalToWorld:   "local_to_world",
	UniformRGBColor:       "rgb_color",
	UniformTextureSampler: "texture_sampler",
	UniformSkyboxSampler:  "skybox_sampler",
}

var shaderUsedAttributes = map[ShaderType][]ShaderVertexAttributeVariable{
	ShaderTextured: {AttributePosition, AttributePassthroughTexturePosition},
	ShaderSkybox:   {AttributePosition},
	ShaderText:     {AttributeXYPosition, AttributePassthroughTexturePosition},
}

// GetShaderCreationInfo returns the source paths registered for shaderType.
func GetShaderCreationInfo(shaderType ShaderType) (ShaderCreationInfo, error) {

	creationInfo, bOk := shaderCatalog[shaderType]
	if !bOk {
		return ShaderCreationInfo{}, fmt.Errorf("%w:[%v]", ErrShaderTypeNotFound, shaderType)
	}

	return creationInfo, nil
}

// GetVertexAttributeConfig returns the buffer layout registered for attrVar.
func GetVertexAttributeConfig(attrVar ShaderVertexAttributeVariable) (GlVertexAttributeConfig, error) {

	attrConfig, bOk := attributeConfigs[attrVar]
	if !bOk {
		return GlVertexAttributeConfig{}, fmt.Errorf("%w:[%v]", ErrAttributeConfigNotFound, attrVar)
	}

	return attrConfig, nil
}

// GetVertexAttributeName returns the GLSL identifier registered for attrVar.
func GetVertexAttributeName(attrVar ShaderVertexAttributeVariable) (string, error) {

	attrName, bOk := attributeNames[attrVar]
	if !bOk {
		return "", fmt.Errorf("%w:[%d]", ErrAttributeNameNotFound, int(attrVar))
	}

	return attrName, nil
}

// GetUniformName returns the GLSL identifier registered for uniform.
func GetUniformName(uniform ShaderUniformVariable) (string, error) {

	uniformName, bOk := uniformNames[uniform]
	if !bOk {
		return "", fmt.Errorf("%w:[%d]", ErrUniformNameNotFound, int(uniform))
	}

	return uniformName, nil
}

// GetUsedVertexAttributes returns the attribute variables a shader's vertex
// stage declares, in declaration order.
func GetUsedVertexAttributes(shaderType ShaderType) ([]ShaderVertexAttributeVariable, error) {

	usedAttrs, bOk := shaderUsedAttributes[shaderType]
	if !bOk {
		return nil, fmt.Errorf("%w:[%v]", ErrUsedAttributesNotFound, shaderType)
	}

	return usedAttrs, nil
}
