package shader

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GetUniformLocation resolves the binding slot of uniform inside
// shaderType's program. A location of -1 means the driver kept no such
// uniform, that is logged as a warning but is not an error.
func (cache *ShaderCache) GetUniformLocation(shaderType ShaderType, uniform ShaderUniformVariable) (int32, error) {

	programInfo, xErr := cache.GetShaderProgram(shaderType)
	if xErr != nil {
		return -1, xErr
	}

	uniformName, xErr := GetUniformName(uniform)
	if xErr != nil {
		return -1, xErr
	}

	location := gl.GetUniformLocation(programInfo.Handle, gl.Str(uniformName+"\x00"))
	if location == -1 {
		cache.mLogger.Warnf("uniform [%v] not found in shader [%v]", uniformName, shaderType)
	}

	return location, nil
}

// uniformTarget activates shaderType's program and resolves the uniform
// location, so callers of the setters need not call UseShaderProgram first.
func (cache *ShaderCache) uniformTarget(shaderType ShaderType, uniform ShaderUniformVariable) (int32, error) {

	xErr := cache.UseShaderProgram(shaderType)
	if xErr != nil {
		return -1, xErr
	}

	return cache.GetUniformLocation(shaderType, uniform)
}

func (cache *ShaderCache) SetUniformBool(shaderType ShaderType, uniform ShaderUniformVariable, value bool) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	iValue := int32(0)
	if value {
		iValue = 1
	}

	gl.Uniform1i(location, iValue)

	return nil
}

func (cache *ShaderCache) SetUniformInt(shaderType ShaderType, uniform ShaderUniformVariable, value int32) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.Uniform1i(location, value)

	return nil
}

func (cache *ShaderCache) SetUniformFloat(shaderType ShaderType, uniform ShaderUniformVariable, value float32) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.Uniform1f(location, value)

	return nil
}

func (cache *ShaderCache) SetUniformVec2(shaderType ShaderType, uniform ShaderUniformVariable, vec mgl32.Vec2) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.Uniform2fv(location, 1, &vec[0])

	return nil
}

func (cache *ShaderCache) SetUniformVec2XY(shaderType ShaderType, uniform ShaderUniformVariable, x float32, y float32) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.Uniform2f(location, x, y)

	return nil
}

func (cache *ShaderCache) SetUniformVec3(shaderType ShaderType, uniform ShaderUniformVariable, vec mgl32.Vec3) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.Uniform3fv(location, 1, &vec[0])

	return nil
}

func (cache *ShaderCache) SetUniformVec3XYZ(shaderType ShaderType, uniform ShaderUniformVariable, x float32, y float32, z float32) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.Uniform3f(location, x, y, z)

	return nil
}

func (cache *ShaderCache) SetUniformVec4(shaderType ShaderType, uniform ShaderUniformVariable, vec mgl32.Vec4) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.Uniform4fv(location, 1, &vec[0])

	return nil
}

func (cache *ShaderCache) SetUniformVec4XYZW(shaderType ShaderType, uniform ShaderUniformVariable, x float32, y float32, z float32, w float32) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.Uniform4f(location, x, y, z, w)

	return nil
}

func (cache *ShaderCache) SetUniformMat2(shaderType ShaderType, uniform ShaderUniformVariable, mat mgl32.Mat2) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.UniformMatrix2fv(location, 1, false, &mat[0])

	return nil
}

func (cache *ShaderCache) SetUniformMat3(shaderType ShaderType, uniform ShaderUniformVariable, mat mgl32.Mat3) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.UniformMatrix3fv(location, 1, false, &mat[0])

	return nil
}

func (cache *ShaderCache) SetUniformMat4(shaderType ShaderType, uniform ShaderUniformVariable, mat mgl32.Mat4) error {

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.UniformMatrix4fv(location, 1, false, &mat[0])

	return nil
}

// SetUniformVec4Slice uploads values into a vec4 array uniform. An empty
// slice is a no-op.
func (cache *ShaderCache) SetUniformVec4Slice(shaderType ShaderType, uniform ShaderUniformVariable, values []mgl32.Vec4) error {

	if len(values) < 1 {
		return nil
	}

	location, xErr := cache.uniformTarget(shaderType, uniform)
	if xErr != nil || location == -1 {
		return xErr
	}

	gl.Uniform4fv(location, int32(len(values)), &values[0][0])

	return nil
}
