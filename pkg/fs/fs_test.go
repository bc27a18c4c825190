package fs

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileSystem(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b", "c"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b", "c", "d.txt"), []byte("d"), 0o644))

	lfs := NewLocalFileSystem()

	files, err := lfs.Walk(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b", "c", "d.txt"),
	}, files)

	isDir, err := lfs.IsDir(filepath.Join(root, "b"))
	require.NoError(t, err)
	assert.True(t, isDir)

	ok, err := lfs.Exists(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	r, err := lfs.Open(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))

	_, err = lfs.Walk(filepath.Join(root, "missing"))
	assert.Error(t, err)
}
