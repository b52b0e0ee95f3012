package glib

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {

	tmpDir := t.TempDir()
	filePath := path.Join(tmpDir, "exists.txt")

	assert.False(t, FileExists(filePath))
	assert.False(t, FileExists(tmpDir))

	xErr := os.WriteFile(filePath, []byte("data"), 0644)
	require.NoError(t, xErr)

	assert.True(t, FileExists(filePath))
}

func TestFileReadAllText(t *testing.T) {

	tmpDir := t.TempDir()
	filePath := path.Join(tmpDir, "read.txt")

	assert.Equal(t, "", FileReadAllText(filePath))

	xErr := os.WriteFile(filePath, []byte("shader source\n"), 0644)
	require.NoError(t, xErr)

	assert.Equal(t, "shader source\n", FileReadAllText(filePath))
}
