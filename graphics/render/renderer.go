package render

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chwjbn/shader-hub/gconfig"
	"github.com/chwjbn/shader-hub/graphics/shader"
)

// QuadRenderer draws an RGBA frame onto an offscreen fullscreen quad using
// the textured shader from the cache, then reads the result back. It owns a
// hidden glfw window, its GL context and the shader cache.
type QuadRenderer struct {
	mWidth  int
	mHeight int

	mGLWindow *glfw.Window

	mPositions []float32
	mTexCoords []float32
	mIndices   []uint32

	mVAO         uint32
	mPositionVBO uint32
	mTexCoordVBO uint32
	mEBO         uint32

	mShaderCache *shader.ShaderCache
	mDstTexture  *GlTexture
}

func NewQuadRenderer(renderMeta *gconfig.RenderMeta) (*QuadRenderer, error) {

	pThis := new(QuadRenderer)
	pThis.mWidth = renderMeta.WindowWidth
	pThis.mHeight = renderMeta.WindowHeight

	xErr := pThis.initGLFW()
	if xErr != nil {
		return nil, xErr
	}

	xErr = pThis.initOpenGL()
	if xErr != nil {
		return nil, xErr
	}

	xErr = pThis.initData(renderMeta)
	if xErr != nil {
		return nil, xErr
	}

	return pThis, nil
}

// RenderFrame uploads frameImg as the quad texture, draws one frame and
// returns the rendered pixels.
func (r *QuadRenderer) RenderFrame(frameImg *image.RGBA) (*image.RGBA, error) {

	r.mWidth = frameImg.Rect.Dx()
	r.mHeight = frameImg.Rect.Dy()

	r.mGLWindow.SetSize(r.mWidth, r.mHeight)
	gl.Viewport(0, 0, int32(r.mWidth), int32(r.mHeight))

	xErr := r.mDstTexture.SetImage(frameImg)
	if xErr != nil {
		return nil, xErr
	}

	gl.ClearColor(0, 0, 0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	xErr = r.mShaderCache.UseShaderProgram(shader.ShaderTextured)
	if xErr != nil {
		return nil, xErr
	}

	// the quad is already in clip space, all three transforms stay identity
	xErr = r.mShaderCache.SetUniformMat4(shader.ShaderTextured, shader.UniformCameraToClip, mgl32.Ident4())
	if xErr != nil {
		return nil, xErr
	}

	xErr = r.mShaderCache.SetUniformMat4(shader.ShaderTextured, shader.UniformWorldToCamera, mgl32.Ident4())
	if xErr != nil {
		return nil, xErr
	}

	xErr = r.mShaderCache.SetUniformMat4(shader.ShaderTextured, shader.UniformLocalToWorld, mgl32.Ident4())
	if xErr != nil {
		return nil, xErr
	}

	r.mDstTexture.Bind(gl.TEXTURE0)

	texUnit, xErr := r.mDstTexture.Unit()
	if xErr != nil {
		return nil, xErr
	}

	xErr = r.mShaderCache.SetUniformInt(shader.ShaderTextured, shader.UniformTextureSampler, texUnit)
	if xErr != nil {
		return nil, xErr
	}

	gl.BindVertexArray(r.mVAO)
	gl.DrawElements(gl.TRIANGLES, int32(len(r.mIndices)), gl.UNSIGNED_INT, unsafe.Pointer(nil))
	gl.BindVertexArray(0)

	dstPixelData := make([]uint8, r.mWidth*r.mHeight*4)
	gl.ReadPixels(0, 0, int32(r.mWidth), int32(r.mHeight), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(dstPixelData))

	dstImg := image.NewRGBA(image.Rect(0, 0, r.mWidth, r.mHeight))
	copy(dstImg.Pix, dstPixelData)

	r.mDstTexture.UnBind()
	r.mGLWindow.SwapBuffers()

	return dstImg, nil
}

// ShaderCache exposes the cache so callers can set extra uniforms or
// configure additional attribute bindings.
func (r *QuadRenderer) ShaderCache() *shader.ShaderCache {
	return r.mShaderCache
}

func (r *QuadRenderer) Delete() {

	if r.mShaderCache != nil {
		r.mShaderCache.Delete()
	}

	if r.mDstTexture != nil {
		r.mDstTexture.Delete()
	}

	gl.DeleteBuffers(1, &r.mPositionVBO)
	gl.DeleteBuffers(1, &r.mTexCoordVBO)
	gl.DeleteBuffers(1, &r.mEBO)
	gl.DeleteVertexArrays(1, &r.mVAO)

	if r.mGLWindow != nil {
		r.mGLWindow.Destroy()
	}

	glfw.Terminate()
}

func (r *QuadRenderer) initGLFW() error {

	glErr := glfw.Init()
	if glErr != nil {
		return fmt.Errorf("glfw.Init error:[%v]", glErr.Error())
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)

	glWindow, glErr := glfw.CreateWindow(r.mWidth, r.mHeight, "QuadRenderer", nil, nil)
	if glErr != nil {
		return fmt.Errorf("glfw.CreateWindow error:[%v]", glErr.Error())
	}

	r.mGLWindow = glWindow
	r.mGLWindow.MakeContextCurrent()

	r.mGLWindow.SetFramebufferSizeCallback(func(w *glfw.Window, width int, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	return nil
}

func (r *QuadRenderer) initOpenGL() error {

	glErr := gl.Init()
	if glErr != nil {
		return fmt.Errorf("gl.Init error:[%v]", glErr.Error())
	}

	gl.Viewport(0, 0, int32(r.mWidth), int32(r.mHeight))
	gl.ClearColor(0, 0, 0, 1)

	return nil
}

func (r *QuadRenderer) initData(renderMeta *gconfig.RenderMeta) error {

	r.mPositions = []float32{
		-1.0, 1.0, 0.0, // top left
		1.0, 1.0, 0.0, // top right
		1.0, -1.0, 0.0, // bottom right
		-1.0, -1.0, 0.0, // bottom left
	}

	r.mTexCoords = []float32{
		0.0, 1.0,
		1.0, 1.0,
		1.0, 0.0,
		0.0, 0.0,
	}

	r.mIndices = []uint32{
		0, 1, 2, // top triangle
		0, 2, 3, // bottom triangle
	}

	gl.GenVertexArrays(1, &r.mVAO)
	gl.GenBuffers(1, &r.mPositionVBO)
	gl.GenBuffers(1, &r.mTexCoordVBO)
	gl.GenBuffers(1, &r.mEBO)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.mPositionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.mPositions)*4, gl.Ptr(r.mPositions), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.mTexCoordVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.mTexCoords)*4, gl.Ptr(r.mTexCoords), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	// element binding is vao state, so record it with the vao bound
	gl.BindVertexArray(r.mVAO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.mEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(r.mIndices)*4, gl.Ptr(r.mIndices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	shaderCache, xErr := shader.NewShaderCache(renderMeta.ShaderDir, renderMeta.RequestedShaders, nil)
	if xErr != nil {
		return fmt.Errorf("NewShaderCache error:[%v]", xErr.Error())
	}

	r.mShaderCache = shaderCache

	xErr = r.mShaderCache.ConfigureVertexAttributes(r.mVAO, r.mPositionVBO,
		shader.ShaderTextured, shader.AttributePosition)
	if xErr != nil {
		return xErr
	}

	xErr = r.mShaderCache.ConfigureVertexAttributes(r.mVAO, r.mTexCoordVBO,
		shader.ShaderTextured, shader.AttributePassthroughTexturePosition)
	if xErr != nil {
		return xErr
	}

	r.mDstTexture = NewGlTexture()

	return nil
}
