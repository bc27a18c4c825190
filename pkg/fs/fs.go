package fs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Opens a file for reading.
func (lfs *LocalFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Reports whether path names a directory.
func (lfs *LocalFileSystem) IsDir(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return stat.IsDir(), nil
}

// Returns every regular file below root in lexical order. Symlinks and
// other special files are skipped.
func (lfs *LocalFileSystem) Walk(root string) ([]string, error) {
	files := make([]string, 0)

	if err := filepath.WalkDir(root, func(path string, ds fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ds.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}

	return files, nil
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(file string) (bool, error) {
	_, err := os.Stat(file)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
