//go:build unit

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_WriteAndReadFile(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "qr-code.png")
	testContent := []byte("\x89PNG\r\n\x1a\n")

	t.Run("WriteFile", func(t *testing.T) {
		err := adapter.WriteFile(testFile, testContent, 0644)
		require.NoError(t, err)

		info, err := os.Stat(testFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("ReadFile", func(t *testing.T) {
		content, err := adapter.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, testContent, content)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, adapter.WriteFile(testFile, []byte("second"), 0600))

		content, err := adapter.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), content)
	})

	t.Run("NoTemporaryFilesLeft", func(t *testing.T) {
		entries, err := os.ReadDir(tempDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "qr-code.png", entries[0].Name())
	})

	t.Run("FileExists", func(t *testing.T) {
		assert.True(t, adapter.FileExists(testFile))
		assert.False(t, adapter.FileExists(filepath.Join(tempDir, "nonexistent.txt")))
	})
}

func TestManagerAdapter_ReadFile_NonExistent(t *testing.T) {
	adapter := NewManagerAdapter()

	_, err := adapter.ReadFile("/nonexistent/file.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestManagerAdapter_WriteFile_InvalidPath(t *testing.T) {
	adapter := NewManagerAdapter()

	err := adapter.WriteFile("/nonexistent/directory/file.txt", []byte("test"), 0644)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}
