package shader

import (
	"fmt"
	"path"

	"github.com/go-gl/gl/v3.3-core/gl"
	"go.uber.org/zap"

	"github.com/chwjbn/shader-hub/glib"
	"github.com/chwjbn/shader-hub/glog"
)

// ShaderProgramInfo holds the native handle of a linked program. Handles are
// owned by the cache and stay valid until Delete.
type ShaderProgramInfo struct {
	Handle uint32
}

// ShaderCache compiles and links the requested shader programs once and
// hands them out by ShaderType. It assumes a current GL context on the
// calling thread for every method.
type ShaderCache struct {
	mShaderDir      string
	mCreatedShaders map[ShaderType]ShaderProgramInfo
	mLogger         *zap.SugaredLogger
}

// NewShaderCache creates one program per requested type, reading stage
// sources from shaderDir. A nil logger falls back to the glog global.
// Driver-side compile and link failures do not abort construction, the
// broken program is stored anyway and the failure only logged.
func NewShaderCache(shaderDir string, requestedShaders []ShaderType, logger *zap.Logger) (*ShaderCache, error) {

	if logger == nil {
		logger = glog.Logger()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	pThis := new(ShaderCache)
	pThis.mShaderDir = shaderDir
	pThis.mCreatedShaders = make(map[ShaderType]ShaderProgramInfo)
	pThis.mLogger = logger.Sugar()

	for _, shaderType := range requestedShaders {
		xErr := pThis.CreateShaderProgram(shaderType)
		if xErr != nil {
			return nil, xErr
		}
	}

	pThis.LogProgramInfo()

	return pThis, nil
}

// CreateShaderProgram compiles and links the program for shaderType from its
// catalog entry, replacing (and deleting) any program already stored for the
// same type. Stage objects are deleted once the program has linked.
func (cache *ShaderCache) CreateShaderProgram(shaderType ShaderType) error {

	creationInfo, xErr := GetShaderCreationInfo(shaderType)
	if xErr != nil {
		return xErr
	}

	cache.mLogger.Infof("creating shader program for [%v]", shaderType)

	program := gl.CreateProgram()

	stageShaders := make([]*GlShader, 0, 3)
	stageShaders = append(stageShaders, cache.attachStage(program, creationInfo.VertexPath, gl.VERTEX_SHADER))
	stageShaders = append(stageShaders, cache.attachStage(program, creationInfo.FragmentPath, gl.FRAGMENT_SHADER))

	if len(creationInfo.GeometryPath) > 0 {
		stageShaders = append(stageShaders, cache.attachStage(program, creationInfo.GeometryPath, gl.GEOMETRY_SHADER))
	}

	cache.linkProgram(program)

	for _, stageShader := range stageShaders {
		stageShader.Delete()
	}

	oldInfo, bHas := cache.mCreatedShaders[shaderType]
	if bHas {
		gl.DeleteProgram(oldInfo.Handle)
	}

	cache.mCreatedShaders[shaderType] = ShaderProgramInfo{Handle: program}

	return nil
}

// GetShaderProgram returns the program stored for shaderType. Types that
// were never requested yield ErrShaderProgramNotFound.
func (cache *ShaderCache) GetShaderProgram(shaderType ShaderType) (ShaderProgramInfo, error) {

	programInfo, bOk := cache.mCreatedShaders[shaderType]
	if !bOk {
		return ShaderProgramInfo{}, fmt.Errorf("%w:[%v]", ErrShaderProgramNotFound, shaderType)
	}

	return programInfo, nil
}

// UseShaderProgram makes shaderType's program the active rendering target.
func (cache *ShaderCache) UseShaderProgram(shaderType ShaderType) error {

	programInfo, xErr := cache.GetShaderProgram(shaderType)
	if xErr != nil {
		return xErr
	}

	gl.UseProgram(programInfo.Handle)

	return nil
}

// ConfigureVertexAttributes wires one vertex attribute of shaderType's
// program to the data in vbo, recording the binding in vao. The layout comes
// from the attribute config table. The vao is left unbound on return.
func (cache *ShaderCache) ConfigureVertexAttributes(vao uint32, vbo uint32, shaderType ShaderType, attrVar ShaderVertexAttributeVariable) error {

	programInfo, xErr := cache.GetShaderProgram(shaderType)
	if xErr != nil {
		return xErr
	}

	usedAttrs, xErr := GetUsedVertexAttributes(shaderType)
	if xErr != nil {
		return xErr
	}

	bUsed := false
	for _, usedAttr := range usedAttrs {
		if usedAttr == attrVar {
			bUsed = true
			break
		}
	}

	attrConfig, xErr := GetVertexAttributeConfig(attrVar)
	if xErr != nil {
		return xErr
	}

	attrName, xErr := GetVertexAttributeName(attrVar)
	if xErr != nil {
		return xErr
	}

	if !bUsed {
		cache.mLogger.Warnf("vertex attribute [%v] is not registered for shader [%v]", attrName, shaderType)
	}

	gl.BindVertexArray(vao)
	defer gl.BindVertexArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	cache.mLogger.Infof("binding vertex attribute [%v] for shader [%v]", attrName, shaderType)

	attrLocation := gl.GetAttribLocation(programInfo.Handle, gl.Str(attrName+"\x00"))
	if attrLocation < 0 {
		cache.mLogger.Warnf("vertex attribute [%v] not active in shader [%v]", attrName, shaderType)
		return nil
	}

	gl.EnableVertexAttribArray(uint32(attrLocation))
	gl.VertexAttribPointerWithOffset(uint32(attrLocation), attrConfig.ComponentsPerVertex,
		attrConfig.ComponentType, attrConfig.Normalize, attrConfig.Stride, attrConfig.Offset)

	return nil
}

// LogProgramInfo logs the cache contents. Read-only.
func (cache *ShaderCache) LogProgramInfo() {

	cache.mLogger.Infof("created shader programs: %v", len(cache.mCreatedShaders))

	for shaderType, programInfo := range cache.mCreatedShaders {
		cache.mLogger.Infof("shader type:[%v] program:[%v]", shaderType, programInfo.Handle)
	}
}

// LogActiveUniforms walks the uniforms the driver kept active in
// shaderType's program and logs name, GL type and array size. Read-only.
func (cache *ShaderCache) LogActiveUniforms(shaderType ShaderType) error {

	programInfo, xErr := cache.GetShaderProgram(shaderType)
	if xErr != nil {
		return xErr
	}

	var uniformCount int32
	gl.GetProgramiv(programInfo.Handle, gl.ACTIVE_UNIFORMS, &uniformCount)

	cache.mLogger.Infof("shader [%v] active uniforms: %v", shaderType, uniformCount)

	for uniformIndex := int32(0); uniformIndex < uniformCount; uniformIndex++ {

		var nameLen int32
		var uniformSize int32
		var uniformType uint32
		nameBuf := make([]byte, 256)

		gl.GetActiveUniform(programInfo.Handle, uint32(uniformIndex), int32(len(nameBuf)),
			&nameLen, &uniformSize, &uniformType, &nameBuf[0])

		cache.mLogger.Infof("uniform [%v] type:[%v] size:[%v]", string(nameBuf[:nameLen]), uniformType, uniformSize)
	}

	return nil
}

// Delete releases every program the cache created. The cache is empty but
// reusable afterwards, CreateShaderProgram can repopulate it.
func (cache *ShaderCache) Delete() {

	for _, programInfo := range cache.mCreatedShaders {
		gl.DeleteProgram(programInfo.Handle)
	}

	cache.mCreatedShaders = make(map[ShaderType]ShaderProgramInfo)
}

func (cache *ShaderCache) attachStage(program uint32, srcPath string, stageType uint32) *GlShader {

	codeFilePath := srcPath
	if !path.IsAbs(codeFilePath) {
		codeFilePath = path.Join(cache.mShaderDir, srcPath)
	}

	srcCode := ""
	if glib.FileExists(codeFilePath) {
		srcCode = glib.FileReadAllText(codeFilePath)
	}

	if len(srcCode) < 1 {
		cache.mLogger.Errorf("read shader source failed:[%v]", codeFilePath)
	}

	stageShader, xErr := NewGlShader(srcCode, stageType)
	if xErr != nil {
		cache.mLogger.Errorf("compile shader error:[%v] file:[%v]", xErr.Error(), codeFilePath)
	}

	gl.AttachShader(program, stageShader.Handle())

	return stageShader
}

func (cache *ShaderCache) linkProgram(program uint32) {

	gl.LinkProgram(program)

	xErr := getGlError(program, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog,
		"PROGRAM::LINK_FAILURE")
	if xErr != nil {
		cache.mLogger.Errorf("link program error:[%v]", xErr.Error())
	}
}
