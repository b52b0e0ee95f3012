package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type getGlObjIv func(uint32, uint32, *int32)
type getGlObjInfoLog func(uint32, int32, *int32, *uint8)

// getGlError checks a shader or program object status flag and, on failure,
// returns the driver info log wrapped in an error.
func getGlError(glHandle uint32, statusParam uint32, getObjIvFn getGlObjIv, getObjInfoLogFn getGlObjInfoLog, failMsg string) error {

	var success int32
	getObjIvFn(glHandle, statusParam, &success)

	if success == gl.FALSE {

		var logLength int32
		getObjIvFn(glHandle, gl.INFO_LOG_LENGTH, &logLength)

		if logLength < 1 {
			logLength = 1
		}

		logStr := strings.Repeat("\x00", int(logLength))
		logPtr := gl.Str(logStr)
		getObjInfoLogFn(glHandle, logLength, nil, logPtr)

		return fmt.Errorf("%s: %s", failMsg, gl.GoStr(logPtr))
	}

	return nil
}
