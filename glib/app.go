package glib

import (
	"os"
	"path/filepath"
)

func AppBaseDir() string {

	sRet := ""

	xFilePath, xFilePathErr := filepath.Abs(os.Args[0])
	if xFilePathErr != nil {
		return sRet
	}

	sRet = filepath.Dir(xFilePath)

	return sRet
}
