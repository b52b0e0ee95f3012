package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path"
	"runtime"

	"github.com/chwjbn/shader-hub/gconfig"
	"github.com/chwjbn/shader-hub/glib"
	"github.com/chwjbn/shader-hub/glog"
	"github.com/chwjbn/shader-hub/graphics/render"
	"github.com/chwjbn/shader-hub/graphics/shader"
)

func init() {
	// the GL context is bound to the main thread
	runtime.LockOSThread()
}

func main() {

	glog.Info("app begin")

	runDemo()

	glog.Info("app end")
}

func runDemo() {

	xRenderMeta := gconfig.GetRenderMeta()

	xRenderer, xErr := render.NewQuadRenderer(&xRenderMeta)
	if xErr != nil {
		glog.Error(xErr.Error())
		return
	}

	defer xRenderer.Delete()

	xErr = xRenderer.ShaderCache().LogActiveUniforms(shader.ShaderTextured)
	if xErr != nil {
		glog.Error(xErr.Error())
		return
	}

	srcImg := buildTestImage(xRenderMeta.WindowWidth, xRenderMeta.WindowHeight)

	dstImg, xErr := xRenderer.RenderFrame(srcImg)
	if xErr != nil {
		glog.Error(xErr.Error())
		return
	}

	dstFilePath := path.Join(glib.AppBaseDir(), "out.png")

	xErr = savePng(dstFilePath, dstImg)
	if xErr != nil {
		glog.Error(xErr.Error())
		return
	}

	glog.InfoF("rendered frame saved to [%v]", dstFilePath)
}

func buildTestImage(width int, height int) *image.RGBA {

	srcImg := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			srcImg.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: 128,
				A: 255,
			})
		}
	}

	return srcImg
}

func savePng(filePath string, img *image.RGBA) error {

	dstFile, xErr := os.Create(filePath)
	if xErr != nil {
		return xErr
	}

	defer dstFile.Close()

	return png.Encode(dstFile, img)
}
