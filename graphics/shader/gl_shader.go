package shader

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// GlShader wraps one compiled shader stage object. Stage objects only live
// until their program links, after that the cache deletes them.
type GlShader struct {
	handle uint32
}

// NewGlShader compiles src as a stage of the given GL type. The returned
// shader is always valid to attach, a non-nil error carries the driver's
// compile log for stages that failed to compile.
func NewGlShader(src string, stageType uint32) (*GlShader, error) {

	handle := gl.CreateShader(stageType)

	glSrc, freeFn := gl.Strs(src + "\x00")
	defer freeFn()

	gl.ShaderSource(handle, 1, glSrc, nil)
	gl.CompileShader(handle)

	xErr := getGlError(handle, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog,
		"SHADER::COMPILE_FAILURE")

	return &GlShader{handle: handle}, xErr
}

func (shader *GlShader) Handle() uint32 {
	return shader.handle
}

func (shader *GlShader) Delete() {
	gl.DeleteShader(shader.handle)
}
